package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gocart-be/internal/apperr"
	"gocart-be/internal/coupon"
	"gocart-be/internal/order"
	"gocart-be/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", apperr.Validationf("name is required"), http.StatusBadRequest},
		{"NotFound", store.ErrStoreNotFound, http.StatusNotFound},
		{"Conflict", order.ErrStatusRace, http.StatusConflict},
		{"Forbidden", apperr.Forbiddenf("not yours"), http.StatusForbidden},
		{"Expired", coupon.ErrCouponExpired, http.StatusGone},
		{"Upstream", apperr.Upstreamf("bucket down"), http.StatusBadGateway},
		{"Unknown", errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func handleErr(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(err, c)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorHandler(t *testing.T) {
	t.Run("DomainError", func(t *testing.T) {
		rec, body := handleErr(t, coupon.ErrCodeExists)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, body.Success)
		assert.Contains(t, body.Error, "coupon code already exists")
	})

	t.Run("EchoHTTPError", func(t *testing.T) {
		rec, body := handleErr(t, echo.NewHTTPError(http.StatusTooManyRequests, "Too Many Requests"))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "Too Many Requests", body.Error)
	})

	t.Run("InternalErrorsDoNotLeak", func(t *testing.T) {
		rec, body := handleErr(t, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, body.Error, "password")
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Error)
	})
}
