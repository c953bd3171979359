package logger

import (
	"gocart-be/internal/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var requestCount metrics.Counter

// RequestIDMiddleware assigns each request an id, reusing the client's
// X-Request-ID header when present.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			reqID := req.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.New().String()
			}

			ctx := WithRequestID(req.Context(), reqID)
			c.Response().Header().Set("X-Request-ID", reqID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

// RequestLogMiddleware logs every request with its outcome and duration.
func RequestLogMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timer := metrics.StartTimer()
			requestCount.Inc()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			FromCtx(c.Request().Context()).Info("incoming request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("ip", c.RealIP()),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration_ms", timer.Duration()),
				zap.Uint64("served_total", requestCount.Load()),
			)

			return nil
		}
	}
}
