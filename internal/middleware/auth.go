package middleware

import (
	"gocart-be/internal/apperr"
	"gocart-be/internal/auth"

	"github.com/labstack/echo/v4"
)

// Auth parses the bearer token and, when valid, attaches the principal
// to the request context. Requests without a usable token pass through
// unauthenticated; route guards decide what that means.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr := auth.ExtractAccessToken(c.Request())
			if tokenStr == "" {
				return next(c)
			}

			claims, err := auth.ParseToken(secret, tokenStr)
			if err != nil {
				return next(c)
			}

			ctx := auth.WithPrincipal(c.Request().Context(), auth.Principal{
				UserID: claims.UserID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole rejects requests whose principal is missing (401) or
// holds none of the allowed roles (403). Authorization lives inside the
// operations; this guard only keeps obvious strangers off the routes.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := auth.PrincipalFrom(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(401, "authentication required")
			}
			if !allowed[p.Role] {
				return apperr.Forbiddenf("role %s may not access this resource", p.Role)
			}
			return next(c)
		}
	}
}
