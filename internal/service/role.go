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

type RoleService struct {
	Repo *repo.GormRepo
}

func (s *RoleService) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.Repo.ListRoles(ctx)
}

func (s *RoleService) GetRole(ctx context.Context, name string) (*models.Role, error) {
	return s.Repo.GetRole(ctx, name)
}

func (s *RoleService) CreateRole(ctx context.Context, name string) status.Status {
	l := logging.FromContext(ctx).With("svc", "role.create", "role", name)

	if strings.TrimSpace(name) == "" {
		return status.Errorf("Role name is required.")
	}

	role, err := s.Repo.CreateRole(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrRoleExists) {
			l.Warn("create_role_conflict", "reason", "role already exists")
			return status.Errorf("Role '%s' already exists.", name)
		}
		l.Error("create_role_error", "error", err)
		return status.Errorf("Failed to create role '%s'.", name)
	}

	l.Info("create_role_success", "role_id", role.ID)
	return status.Successf("Role created successfully: %s", role.Name)
}

func (s *RoleService) DeleteRole(ctx context.Context, name string) status.Status {
	l := logging.FromContext(ctx).With("svc", "role.delete", "role", name)

	err := s.Repo.DeleteRole(ctx, name)
	switch {
	case err == nil:
		l.Info("delete_role_success")
		return status.Successf("Role '%s' deleted successfully.", name)
	case errors.Is(err, repo.ErrRoleNotFound):
		l.Warn("delete_role_failed", "reason", "role not found")
		return status.Warningf("Role '%s' not found.", name)
	case errors.Is(err, repo.ErrRoleHasAssignments):
		l.Warn("delete_role_failed", "reason", "role has associated users")
		return status.Errorf("Role '%s' cannot be deleted because it has associated users.", name)
	default:
		l.Error("delete_role_error", "error", err)
		return status.Errorf("Failed to delete role '%s'.", name)
	}
}
