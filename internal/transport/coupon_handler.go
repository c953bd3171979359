package transport

import (
	"net/http"

	"gocart-be/internal/coupon"

	"github.com/labstack/echo/v4"
)

type CouponHandler struct {
	coupons coupon.Service
}

func NewCouponHandler(coupons coupon.Service) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

func (h *CouponHandler) Add(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var input coupon.Input
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid coupon payload")
	}

	created, err := h.coupons.Add(c.Request().Context(), p.UserID, input)
	if err != nil {
		return err
	}

	return Success(c, http.StatusCreated, created)
}

func (h *CouponHandler) Edit(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var input coupon.Input
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid coupon payload")
	}

	updated, err := h.coupons.Edit(c.Request().Context(), p.UserID, c.Param("id"), input)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, updated)
}

func (h *CouponHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.coupons.Delete(c.Request().Context(), p.UserID, c.Param("id")); err != nil {
		return err
	}

	return Success(c, http.StatusOK, nil)
}

func (h *CouponHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	coupons, err := h.coupons.List(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, coupons)
}
