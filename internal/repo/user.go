package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

// ListUsers feeds selection lists; only identity fields leave this layer.
func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Select("id", "email", "normalized_email", "email_confirmed").
		Order("normalized_email ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).
		Where("normalized_email = ?", NormalizeEmail(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUserIfNotExists is used by seeding only. Returns the stored record,
// whether it was just created or already present.
func (r *GormRepo) CreateUserIfNotExists(ctx context.Context, u *models.User) error {
	u.NormalizedEmail = NormalizeEmail(u.Email)
	return r.DB.WithContext(ctx).
		Where(models.User{NormalizedEmail: u.NormalizedEmail}).
		FirstOrCreate(u).Error
}
