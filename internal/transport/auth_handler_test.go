package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gocart-be/internal/auth"
	"gocart-be/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)

	return &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@test.local",
		AdminPasswordHash: hash,
	}
}

func login(t *testing.T, cfg *config.Config, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, NewAuthHandler(cfg).Login(c)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg := testConfig(t)
		rec, err := login(t, cfg, `{"email":"admin@test.local","password":"admin-pass"}`)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		tokenStr := data["access_token"].(string)

		claims, err := auth.ParseToken(cfg.JWTSecret, tokenStr)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
		assert.Equal(t, "admin", claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := login(t, testConfig(t), `{"email":"admin@test.local","password":"nope"}`)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := login(t, testConfig(t), `{"email":"someone@test.local","password":"admin-pass"}`)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := login(t, testConfig(t), `{"email":"not-an-email"}`)
		assert.Error(t, err)
	})
}
