// Package seed bootstraps the baseline RBAC state: the roles the system
// guarantees exist and the pre-provisioned administrator account. Run is
// called once at startup, after migration, and is safe to re-run on every
// process restart.
package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/pkg/hash"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
)

const (
	AdminRole    = "Admin"
	ManagerRole  = "Manager"
	CustomerRole = "Customer"

	DefaultAdminEmail    = "manager@home.com"
	DefaultAdminPassword = "P@ssw0rd!"
)

var BaselineRoles = []string{AdminRole, ManagerRole, CustomerRole}

type Options struct {
	AdminEmail    string
	AdminPassword string
}

// Run ensures baseline roles, the administrator account and its Admin
// grant all exist. Every step is query-then-insert-if-absent and the whole
// protocol runs in one transaction, so concurrent or repeated starts
// cannot duplicate anything.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	l := logging.FromContext(ctx).With("svc", "seed")

	if opts.AdminEmail == "" {
		opts.AdminEmail = DefaultAdminEmail
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = DefaultAdminPassword
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &repo.GormRepo{DB: tx}

		var adminRole *models.Role
		for _, name := range BaselineRoles {
			role, err := r.EnsureBaselineRole(ctx, name)
			if err != nil {
				return fmt.Errorf("ensure role %q: %w", name, err)
			}
			if name == AdminRole {
				adminRole = role
			}
		}

		admin, err := ensureAdminUser(ctx, r, opts)
		if err != nil {
			return err
		}

		if err := ensureAdminAssignment(tx, admin, adminRole); err != nil {
			return err
		}

		l.Info("seed_complete", "admin_email", admin.Email)
		return nil
	})
}

func ensureAdminUser(ctx context.Context, r *repo.GormRepo, opts Options) (*models.User, error) {
	existing, err := r.GetUserByEmail(ctx, opts.AdminEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repo.ErrUserNotFound) {
		return nil, fmt.Errorf("look up admin user: %w", err)
	}

	pwHash, err := hash.HashPassword(opts.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Email:          opts.AdminEmail,
		PasswordHash:   pwHash,
		EmailConfirmed: true,
	}
	if err := r.CreateUserIfNotExists(ctx, &admin); err != nil {
		return nil, fmt.Errorf("create admin user: %w", err)
	}
	return &admin, nil
}

func ensureAdminAssignment(tx *gorm.DB, admin *models.User, adminRole *models.Role) error {
	assignment := models.UserRole{UserID: admin.ID, RoleID: adminRole.ID}
	err := tx.Where(models.UserRole{UserID: admin.ID, RoleID: adminRole.ID}).
		FirstOrCreate(&assignment).Error
	if err != nil {
		return fmt.Errorf("ensure admin assignment: %w", err)
	}
	return nil
}
