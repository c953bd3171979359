package transport

import (
	"net/http"

	"gocart-be/internal/auth"
	"gocart-be/internal/config"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies the platform admin's credentials and issues an admin
// token. Seller and shopper tokens come from the external identity
// provider; this service only consumes them.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Email != h.cfg.AdminEmail ||
		!auth.CheckPasswordHash(req.Password, h.cfg.AdminPasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := auth.GenerateToken(h.cfg.JWTSecret, "admin", req.Email, auth.RoleAdmin)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, map[string]string{"access_token": token})
}

// principal pulls the authenticated actor off the request context.
func principal(c echo.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFrom(c.Request().Context())
	if !ok {
		return auth.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
