package transport

import (
	"net/http"

	"gocart-be/internal/blob"
	"gocart-be/internal/product"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	products product.Service
	storage  *blob.Storage
}

func NewProductHandler(products product.Service, storage *blob.Storage) *ProductHandler {
	return &ProductHandler{products: products, storage: storage}
}

func (h *ProductHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var input product.CreateInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product payload")
	}

	created, err := h.products.Create(c.Request().Context(), p.UserID, input)
	if err != nil {
		return err
	}

	return Success(c, http.StatusCreated, created)
}

func (h *ProductHandler) ListOwn(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	products, err := h.products.ListOwn(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, products)
}

func (h *ProductHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var input product.UpdateInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product payload")
	}

	updated, err := h.products.Update(c.Request().Context(), p.UserID, c.Param("id"), input)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.Request().Context(), p.UserID, c.Param("id")); err != nil {
		return err
	}

	return Success(c, http.StatusOK, nil)
}

type toggleStockRequest struct {
	Expect *bool `json:"expect" validate:"required"`
}

// ToggleStock carries the caller's last-read value so the flip is a
// compare-and-swap; a 409 tells the client to reload and roll back its
// optimistic update.
func (h *ProductHandler) ToggleStock(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req toggleStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid toggle payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	inStock, err := h.products.ToggleStock(c.Request().Context(), p.UserID, c.Param("id"), *req.Expect)
	if err != nil {
		return err
	}

	return Success(c, http.StatusOK, map[string]bool{"in_stock": inStock})
}

// Upload pushes multipart image files to blob storage. Failures are
// reported per file; the caller creates the product with whichever
// uploads succeeded.
func (h *ProductHandler) Upload(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	var items []blob.UploadItem
	var failed []blob.UploadResult
	var open []interface{ Close() error }
	for _, file := range form.File["files"] {
		src, err := file.Open()
		if err != nil {
			// Unreadable parts still get a per-item result.
			failed = append(failed, blob.UploadResult{
				Key: file.Filename,
				Err: err.Error(),
			})
			continue
		}
		open = append(open, src)

		items = append(items, blob.UploadItem{
			Key:         p.UserID + "/" + uuid.NewString() + "-" + file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        src,
		})
	}
	defer func() {
		for _, src := range open {
			_ = src.Close()
		}
	}()

	results := append(h.storage.UploadAll(c.Request().Context(), items), failed...)
	return Success(c, http.StatusOK, results)
}
