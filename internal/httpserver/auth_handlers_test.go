package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/catalog_admin/internal/seed"
	"github.com/Skotchmaster/catalog_admin/internal/transport"
	"github.com/Skotchmaster/catalog_admin/pkg/tokens"
)

func TestLogin_SeededAdmin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/auth/login", "", transport.LoginRequest{
		Email:    seed.DefaultAdminEmail,
		Password: seed.DefaultAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp transport.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)

	claims, err := tokens.AccessClaimsFromToken(resp.AccessToken, env.Secret)
	require.NoError(t, err)
	assert.Equal(t, seed.DefaultAdminEmail, claims.Email)
	assert.Equal(t, []string{seed.AdminRole}, claims.Roles)

	// the issued token opens the admin surface
	rec = env.doJSON(http.MethodGet, "/admin/roles", resp.AccessToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_Rejections(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/auth/login", "", transport.LoginRequest{
		Email:    seed.DefaultAdminEmail,
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(http.MethodPost, "/auth/login", "", transport.LoginRequest{
		Email:    "nobody@home.com",
		Password: "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(http.MethodPost, "/auth/login", "", transport.LoginRequest{
		Email:    "not-an-email",
		Password: "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
