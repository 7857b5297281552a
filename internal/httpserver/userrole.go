package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/internal/status"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
)

type UserRoleHTTP struct {
	Svc *service.UserRoleService
}

func (h *UserRoleHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "userrole.list_users")

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		l.Error("list_users_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list users")
	}

	return c.JSON(http.StatusOK, transport.NewUserViews(users))
}

func (h *UserRoleHTTP) GetUserRoles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "userrole.get_roles")

	email := c.Param("email")
	roles, err := h.Svc.GetUserRoles(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("get_user_roles_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("get_user_roles_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get user roles")
	}

	return c.JSON(http.StatusOK, transport.UserRolesView{
		Email: email,
		Roles: transport.NewRoleViews(roles),
	})
}

func (h *UserRoleHTTP) AddUserRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := withActor(c, logging.FromContext(ctx).With("handler", "userrole.add"))

	var req transport.AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_user_role_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("add_user_role_failed", "status", 400, "reason", "validation", "error", err)
		return c.JSON(http.StatusBadRequest, transport.NewStatusResponse(status.Errorf("%s", err)))
	}

	st := h.Svc.AddUserRole(ctx, c.Param("email"), req.RoleName)
	if st.OK() {
		return c.JSON(http.StatusCreated, transport.NewStatusResponse(st))
	}
	return c.JSON(statusCode(st), transport.NewStatusResponse(st))
}

func (h *UserRoleHTTP) RemoveUserRole(c echo.Context) error {
	ctx := c.Request().Context()

	st := h.Svc.RemoveUserRole(ctx, c.Param("email"), c.Param("role"))
	return c.JSON(statusCode(st), transport.NewStatusResponse(st))
}
