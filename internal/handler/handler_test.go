package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-order/internal/middleware"
	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request with a JSON body. Strings are sent verbatim.
func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches an authenticated payload to the request.
func asUser(req *http.Request, id uuid.UUID, role model.Role) *http.Request {
	ctx := middleware.WithPayload(req.Context(), &model.AuthPayload{ID: id, Role: role, Email: "user@example.com"})
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "Not found", err: model.ErrOrderNotFound, expectedStatus: http.StatusNotFound, expectedCode: model.ErrCodeNotFound},
		{name: "Conflict", err: model.ErrVendorExists, expectedStatus: http.StatusConflict, expectedCode: model.ErrCodeConflict},
		{name: "Credentials", err: model.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedCode: model.ErrCodeInvalidCredentials},
		{name: "Forbidden", err: model.ErrOfferNotOwned, expectedStatus: http.StatusForbidden, expectedCode: model.ErrCodeForbidden},
		{name: "Business rule", err: model.ErrMixedVendors, expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeMixedVendors},
		{name: "Wrapped domain error", err: fmt.Errorf("cart: %w", model.ErrInvalidQuantity), expectedStatus: http.StatusBadRequest, expectedCode: model.ErrCodeInvalidQuantity},
		{name: "Unexpected error", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedCode: model.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleError(w, tt.err, zerolog.Nop())

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
		})
	}
}

func TestHandleError_HidesInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	handleError(w, errors.New("pq: password authentication failed"), zerolog.Nop())

	assert.Equal(t, "internal server error", decodeError(t, w).Message)
}

func TestDecodeJSON_ValidationMessage(t *testing.T) {
	req := newRequest(t, http.MethodPost, "/customer/login", &model.LoginRequest{Email: "not-an-email", Password: "pw"})
	w := httptest.NewRecorder()

	var dst model.LoginRequest
	ok := decodeJSON(w, req, &dst, zerolog.Nop())

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, model.ErrCodeValidation, resp.Error)
	assert.Contains(t, resp.Message, "Email failed on email")
	assert.Contains(t, resp.Message, "Password failed on min=4")
}

func TestDecodeOptionalJSON(t *testing.T) {
	t.Run("Empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/vendor/service", nil)
		w := httptest.NewRecorder()

		var dst model.LocationRequest
		assert.True(t, decodeOptionalJSON(w, req, &dst, zerolog.Nop()))
		assert.Nil(t, dst.Lat)
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := newRequest(t, http.MethodPatch, "/vendor/service", "{")
		w := httptest.NewRecorder()

		var dst model.LocationRequest
		assert.False(t, decodeOptionalJSON(w, req, &dst, zerolog.Nop()))
		assert.Equal(t, model.ErrCodeInvalidJSON, decodeError(t, w).Error)
	})
}

func TestCaller_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/customer/profile", nil)
	w := httptest.NewRecorder()

	_, ok := caller(w, req, zerolog.Nop())

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
