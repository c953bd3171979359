package transport

import (
	"net/http"

	"gocart-be/internal/order"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Place(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var input order.PlaceInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order payload")
	}

	placed, err := h.orders.Place(c.Request().Context(), p.UserID, input)
	if err != nil {
		return err
	}

	return Success(c, http.StatusCreated, placed)
}

func (h *OrderHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	o, err := h.orders.Get(c.Request().Context(), p.UserID, p.IsAdmin(), c.Param("id"))
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, o)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListMine(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) ListForStore(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListForStore(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, orders)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Force  bool   `json:"force"`
}

func (h *OrderHandler) SetStatus(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.orders.SetStatus(c.Request().Context(), p.UserID, c.Param("id"),
		order.Status(req.Status), req.Force)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, nil)
}

func (h *OrderHandler) MarkPaid(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	err = h.orders.MarkPaid(c.Request().Context(), p.UserID, p.IsAdmin(), c.Param("id"))
	if err != nil {
		return err
	}
	return Success(c, http.StatusOK, nil)
}
