package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gocart-be/internal/apperr"
	"gocart-be/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func runAuth(t *testing.T, req *http.Request) (auth.Principal, bool) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		p   auth.Principal
		ok  bool
		mw  = Auth(testSecret)
		end = func(c echo.Context) error {
			p, ok = auth.PrincipalFrom(c.Request().Context())
			return nil
		}
	)
	require.NoError(t, mw(end)(c))
	return p, ok
}

func TestAuth(t *testing.T) {
	t.Run("BearerToken", func(t *testing.T) {
		token, err := auth.GenerateToken(testSecret, "user-1", "a@b.test", auth.RoleSeller)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		p, ok := runAuth(t, req)
		require.True(t, ok)
		assert.Equal(t, "user-1", p.UserID)
		assert.Equal(t, auth.RoleSeller, p.Role)
	})

	t.Run("CookieToken", func(t *testing.T) {
		token, err := auth.GenerateToken(testSecret, "user-2", "b@b.test", auth.RoleCustomer)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

		p, ok := runAuth(t, req)
		require.True(t, ok)
		assert.Equal(t, "user-2", p.UserID)
	})

	t.Run("MissingTokenPassesThrough", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, ok := runAuth(t, req)
		assert.False(t, ok)
	})

	t.Run("ForgedTokenPassesThroughUnauthenticated", func(t *testing.T) {
		token, err := auth.GenerateToken("other-secret", "user-1", "a@b.test", auth.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		_, ok := runAuth(t, req)
		assert.False(t, ok)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	newCtx := func(p *auth.Principal) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if p != nil {
			req = req.WithContext(auth.WithPrincipal(req.Context(), *p))
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("Allowed", func(t *testing.T) {
		c := newCtx(&auth.Principal{UserID: "u", Role: auth.RoleSeller})
		err := RequireRole(auth.RoleSeller, auth.RoleAdmin)(next)(c)
		assert.NoError(t, err)
	})

	t.Run("NoPrincipal", func(t *testing.T) {
		c := newCtx(nil)
		err := RequireRole(auth.RoleSeller)(next)(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("WrongRole", func(t *testing.T) {
		c := newCtx(&auth.Principal{UserID: "u", Role: auth.RoleCustomer})
		err := RequireRole(auth.RoleAdmin)(next)(c)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}

func TestRateLimit_StrictTierForAuthRoutes(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := RateLimit()

	hit := func(path string) error {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "198.51.100.7:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath(path)
		return mw(next)(c)
	}

	var limited bool
	for i := 0; i < burstStrict+1; i++ {
		if err := hit("/auth/token"); err != nil {
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
			limited = true
		}
	}
	assert.True(t, limited, "burst exhaustion should trip the strict tier")

	// The general tier keys separately and still has budget.
	assert.NoError(t, hit("/orders"))
}
