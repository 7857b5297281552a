package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func (r *GormRepo) GetUserRoles(ctx context.Context, email string) ([]models.Role, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var roles []models.Role
	err = r.DB.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", user.ID).
		Order("roles.normalized_name ASC").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// AddUserRole grants a role to a user. Resolution of both sides, the
// duplicate check and the insert share one transaction; the composite
// unique index on (user_id, role_id) catches racing grants.
func (r *GormRepo) AddUserRole(ctx context.Context, email, roleName string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("normalized_email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var role models.Role
		if err := tx.Where("normalized_name = ?", NormalizeName(roleName)).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.UserRole{}).
			Where("user_id = ? AND role_id = ?", user.ID, role.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAssignmentExists
		}

		return tx.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error
	})
	if err != nil && isDuplicate(err) {
		return ErrAssignmentExists
	}
	return err
}

func (r *GormRepo) RemoveUserRole(ctx context.Context, email, roleName string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("normalized_email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var role models.Role
		if err := tx.Where("normalized_name = ?", NormalizeName(roleName)).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		res := tx.Where("user_id = ? AND role_id = ?", user.ID, role.ID).
			Delete(&models.UserRole{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAssignmentNotFound
		}
		return nil
	})
}
