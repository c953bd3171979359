package transport

import (
	"net/http"

	"gocart-be/internal/auth"
	"gocart-be/internal/config"
	"gocart-be/internal/logger"
	"gocart-be/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth      *AuthHandler
	Store     *StoreHandler
	Product   *ProductHandler
	Coupon    *CouponHandler
	Order     *OrderHandler
	Dashboard *DashboardHandler
}

func NewRouter(cfg *config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(logger.RequestIDMiddleware())
	e.Use(logger.RequestLogMiddleware())
	e.Use(middleware.Auth(cfg.JWTSecret))
	e.Use(middleware.RateLimit())

	e.GET("/healthz", func(c echo.Context) error {
		return Success(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/token", h.Auth.Login)

	// Public shopper surface
	e.GET("/shop/:username", h.Store.Shop)

	// Authenticated (any role)
	authed := e.Group("", middleware.RequireRole(auth.RoleAdmin, auth.RoleSeller, auth.RoleCustomer))
	authed.POST("/stores", h.Store.Submit)
	authed.GET("/stores/me", h.Store.Me)
	authed.POST("/orders", h.Order.Place)
	authed.GET("/orders", h.Order.ListMine)
	authed.GET("/orders/:id", h.Order.Get)
	authed.POST("/orders/:id/paid", h.Order.MarkPaid)
	authed.POST("/uploads", h.Product.Upload)

	// Seller surface
	seller := e.Group("", middleware.RequireRole(auth.RoleSeller))
	seller.POST("/products", h.Product.Create)
	seller.GET("/products", h.Product.ListOwn)
	seller.PATCH("/products/:id", h.Product.Update)
	seller.DELETE("/products/:id", h.Product.Delete)
	seller.POST("/products/:id/stock", h.Product.ToggleStock)
	seller.POST("/coupons", h.Coupon.Add)
	seller.GET("/coupons", h.Coupon.List)
	seller.PUT("/coupons/:id", h.Coupon.Edit)
	seller.DELETE("/coupons/:id", h.Coupon.Delete)
	seller.GET("/store/orders", h.Order.ListForStore)
	seller.PATCH("/orders/:id/status", h.Order.SetStatus)

	// Admin surface
	admin := e.Group("/admin", middleware.RequireRole(auth.RoleAdmin))
	admin.GET("/stores", h.Store.List)
	admin.GET("/stores/pending", h.Store.ListPending)
	admin.POST("/stores/:id/decision", h.Store.Decide)
	admin.PATCH("/stores/:id/active", h.Store.SetActive)
	admin.DELETE("/stores/:id", h.Store.Delete)
	admin.GET("/dashboard", h.Dashboard.Summary)

	return e
}
