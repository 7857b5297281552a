package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/status"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
)

type UserRoleService struct {
	Repo *repo.GormRepo
}

func (s *UserRoleService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserRoleService) GetUserRoles(ctx context.Context, email string) ([]models.Role, error) {
	return s.Repo.GetUserRoles(ctx, email)
}

func (s *UserRoleService) AddUserRole(ctx context.Context, email, roleName string) status.Status {
	l := logging.FromContext(ctx).With("svc", "userrole.add", "email", email, "role", roleName)

	if strings.TrimSpace(email) == "" || strings.TrimSpace(roleName) == "" {
		return status.Errorf("Email and role name are required.")
	}

	err := s.Repo.AddUserRole(ctx, email, roleName)
	switch {
	case err == nil:
		l.Info("add_user_role_success")
		return status.Successf("%s permissions successfully added to %s", roleName, email)
	case errors.Is(err, repo.ErrUserNotFound):
		l.Warn("add_user_role_failed", "reason", "user not found")
		return status.Warningf("User '%s' not found.", email)
	case errors.Is(err, repo.ErrRoleNotFound):
		l.Warn("add_user_role_failed", "reason", "role not found")
		return status.Warningf("Role '%s' not found.", roleName)
	case errors.Is(err, repo.ErrAssignmentExists):
		l.Warn("add_user_role_failed", "reason", "assignment already exists")
		return status.Errorf("Failed to add role to user. The role might already exist for this user.")
	default:
		l.Error("add_user_role_error", "error", err)
		return status.Errorf("Failed to add role '%s' to user '%s'.", roleName, email)
	}
}

func (s *UserRoleService) RemoveUserRole(ctx context.Context, email, roleName string) status.Status {
	l := logging.FromContext(ctx).With("svc", "userrole.remove", "email", email, "role", roleName)

	err := s.Repo.RemoveUserRole(ctx, email, roleName)
	switch {
	case err == nil:
		l.Info("remove_user_role_success")
		return status.Successf("%s permissions successfully removed from %s.", roleName, email)
	case errors.Is(err, repo.ErrUserNotFound):
		l.Warn("remove_user_role_failed", "reason", "user not found")
		return status.Warningf("User '%s' not found.", email)
	case errors.Is(err, repo.ErrRoleNotFound):
		l.Warn("remove_user_role_failed", "reason", "role not found")
		return status.Warningf("Role '%s' not found.", roleName)
	case errors.Is(err, repo.ErrAssignmentNotFound):
		l.Warn("remove_user_role_failed", "reason", "assignment not found")
		return status.Errorf("Failed to remove role from user.")
	default:
		l.Error("remove_user_role_error", "error", err)
		return status.Errorf("Failed to remove role '%s' from user '%s'.", roleName, email)
	}
}
