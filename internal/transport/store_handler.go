package transport

import (
	"net/http"

	"gocart-be/internal/product"
	"gocart-be/internal/store"

	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	stores   store.Service
	products product.Service
}

func NewStoreHandler(stores store.Service, products product.Service) *StoreHandler {
	return &StoreHandler{stores: stores, products: products}
}

// Submit creates the seller's store draft for admin review.
func (h *StoreHandler) Submit(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var input store.SubmitInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store payload")
	}

	st, err := h.stores.Submit(c.Request().Context(), p.UserID, input)
	if err != nil {
		return err
	}

	return Success(c, http.StatusCreated, st)
}

func (h *StoreHandler) Me(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	st, err := h.stores.GetByOwner(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, st)
}

type shopResponse struct {
	Store    *store.Store       `json:"store"`
	Products []*product.Product `json:"products"`
}

// Shop is the public storefront: active store plus its visible
// (in-stock) products only.
func (h *StoreHandler) Shop(c echo.Context) error {
	ctx := c.Request().Context()

	st, err := h.stores.GetPublic(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	products, err := h.products.ListVisible(ctx, st.ID)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, shopResponse{Store: st, Products: products})
}

func (h *StoreHandler) ListPending(c echo.Context) error {
	stores, err := h.stores.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return Success(c, http.StatusOK, stores)
}

func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.stores.List(c.Request().Context())
	if err != nil {
		return err
	}
	return Success(c, http.StatusOK, stores)
}

type decisionRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *StoreHandler) Decide(c echo.Context) error {
	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid decision payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.stores.Decide(c.Request().Context(), c.Param("id"), store.Status(req.Status))
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, nil)
}

type activeRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *StoreHandler) SetActive(c echo.Context) error {
	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid activation payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.stores.SetActive(c.Request().Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, nil)
}

func (h *StoreHandler) Delete(c echo.Context) error {
	if err := h.stores.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return Success(c, http.StatusOK, nil)
}
