package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
	"github.com/Skotchmaster/catalog_admin/pkg/hash"
	"github.com/Skotchmaster/catalog_admin/pkg/logging"
	"github.com/Skotchmaster/catalog_admin/pkg/tokens"
)

const accessTokenTTL = 15 * time.Minute

// AuthHTTP is the in-repo stand-in for the external identity provider: it
// verifies a credential and issues an access token whose claims carry the
// caller's email and current role names. Everything downstream trusts only
// the token.
type AuthHTTP struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "validation", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown user")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "status", 401, "reason", "bad password")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	roles, err := h.Repo.GetUserRoles(ctx, user.Email)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	exp := time.Now().Add(accessTokenTTL)
	token, err := tokens.NewAccessToken(user.Email, names, h.JWTSecret, exp)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	l.Info("login_success", "email", user.Email)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		AccessToken: token,
		ExpiresAt:   exp.Unix(),
	})
}
