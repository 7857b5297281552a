package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
	"github.com/Skotchmaster/catalog_admin/internal/seed"
	"github.com/Skotchmaster/catalog_admin/internal/service"
	"github.com/Skotchmaster/catalog_admin/pkg/tokens"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Secret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Product{},
		&models.ProductImage{},
	))
	require.NoError(t, seed.Run(context.Background(), db, seed.Options{}))

	secret := []byte("test-jwt-secret")
	r := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:     &AuthHTTP{Repo: r, JWTSecret: secret},
		ProductHandler:  &ProductHTTP{Svc: &service.CatalogService{Repo: r}},
		RoleHandler:     &RoleHTTP{Svc: &service.RoleService{Repo: r}},
		UserRoleHandler: &UserRoleHTTP{Svc: &service.UserRoleService{Repo: r}},
		JWTSecret:       secret,
	})

	return &testEnv{T: t, E: e, DB: db, Repo: r, Secret: secret}
}

func (env *testEnv) tokenFor(email string, roles ...string) string {
	env.T.Helper()
	token, err := tokens.NewAccessToken(email, roles, env.Secret, time.Now().Add(15*time.Minute))
	require.NoError(env.T, err)
	return token
}

func (env *testEnv) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doUpload(path, token, fileName, contentType string, data []byte) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", fileName)
	require.NoError(env.T, err)
	_, err = part.Write(data)
	require.NoError(env.T, err)
	require.NoError(env.T, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
