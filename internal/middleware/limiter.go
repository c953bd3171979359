package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"gocart-be/internal/auth"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Rate limit tiers
const (
	// Login and other credential endpoints
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// Everything else
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes idle entries so the map cannot grow without bound.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit buckets requests per principal, falling back to client IP
// for anonymous traffic, with a stricter tier for credential endpoints.
func RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limit, burst, tier := resolveRateTier(c)

			var identity string
			if p, ok := auth.PrincipalFrom(c.Request().Context()); ok {
				identity = "user:" + p.UserID
			} else {
				identity = "ip:" + c.RealIP()
			}

			key := fmt.Sprintf("%s:%s", identity, tier)

			limiter := getVisitor(key, limit, burst)
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					http.StatusText(http.StatusTooManyRequests))
			}

			return next(c)
		}
	}
}

func resolveRateTier(c echo.Context) (rate.Limit, int, string) {
	if strings.HasPrefix(c.Request().URL.Path, "/auth/") {
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
