package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func (r *GormRepo) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.DB.WithContext(ctx).Order("normalized_name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormRepo) GetRole(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.DB.WithContext(ctx).
		Where("normalized_name = ?", NormalizeName(name)).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

// CreateRole persists a new role with a generated surrogate id. The
// existence check and the insert run in one transaction; the unique index
// on normalized_name catches concurrent creators that pass the check.
func (r *GormRepo) CreateRole(ctx context.Context, name string) (*models.Role, error) {
	role := models.Role{
		ID:             uuid.NewString(),
		Name:           name,
		NormalizedName: NormalizeName(name),
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Role{}).
			Where("normalized_name = ?", role.NormalizedName).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRoleExists
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrRoleExists
		}
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes a role unless any assignment still references it.
// Check and delete share one transaction so a concurrent grant cannot slip
// between them.
func (r *GormRepo) DeleteRole(ctx context.Context, name string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role models.Role
		err := tx.Where("normalized_name = ?", NormalizeName(name)).First(&role).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.UserRole{}).
			Where("role_id = ?", role.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRoleHasAssignments
		}

		return tx.Delete(&role).Error
	})
}

func (r *GormRepo) RoleHasAssignments(ctx context.Context, name string) (bool, error) {
	role, err := r.GetRole(ctx, name)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return false, nil
		}
		return false, err
	}

	var count int64
	err = r.DB.WithContext(ctx).Model(&models.UserRole{}).
		Where("role_id = ?", role.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureBaselineRole creates the role only if absent. Safe to call on every
// process start. The dest stays zero-valued so the lookup matches on the
// normalized name alone; the generated id applies only when creating.
func (r *GormRepo) EnsureBaselineRole(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.DB.WithContext(ctx).
		Where(models.Role{NormalizedName: NormalizeName(name)}).
		Attrs(models.Role{ID: uuid.NewString(), Name: name}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}
