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

type RoleHTTP struct {
	Svc *service.RoleService
}

func (h *RoleHTTP) ListRoles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.list")

	roles, err := h.Svc.ListRoles(ctx)
	if err != nil {
		l.Error("list_roles_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list roles")
	}

	return c.JSON(http.StatusOK, transport.NewRoleViews(roles))
}

func (h *RoleHTTP) GetRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "role.get")

	role, err := h.Svc.GetRole(ctx, c.Param("name"))
	if err != nil {
		if errors.Is(err, repo.ErrRoleNotFound) {
			l.Warn("get_role_failed", "status", 404, "reason", "role not found")
			return echo.NewHTTPError(http.StatusNotFound, "role not found")
		}
		l.Error("get_role_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get role")
	}

	return c.JSON(http.StatusOK, transport.RoleView{Name: role.Name})
}

func (h *RoleHTTP) CreateRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := withActor(c, logging.FromContext(ctx).With("handler", "role.create"))

	var req transport.CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_role_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_role_failed", "status", 400, "reason", "validation", "error", err)
		return c.JSON(http.StatusBadRequest, transport.NewStatusResponse(status.Errorf("%s", err)))
	}

	st := h.Svc.CreateRole(ctx, req.Name)
	if st.OK() {
		return c.JSON(http.StatusCreated, transport.NewStatusResponse(st))
	}
	return c.JSON(statusCode(st), transport.NewStatusResponse(st))
}

func (h *RoleHTTP) DeleteRole(c echo.Context) error {
	ctx := c.Request().Context()

	st := h.Svc.DeleteRole(ctx, c.Param("name"))
	return c.JSON(statusCode(st), transport.NewStatusResponse(st))
}
