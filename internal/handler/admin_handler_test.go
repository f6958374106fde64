package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_CreateVendor(t *testing.T) {
	logger := zerolog.Nop()

	valid := &model.CreateVendorRequest{
		Name:      "Spice Hub",
		OwnerName: "Asha",
		FoodTypes: []string{"veg"},
		Pincode:   "400001",
		Phone:     "9999999999",
		Email:     "spice@example.com",
		Password:  "secret",
	}

	tests := []struct {
		name           string
		requestBody    any
		mockReturn     *model.Vendor
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    valid,
			mockReturn:     &model.Vendor{ID: uuid.New(), Name: valid.Name, Email: valid.Email},
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Duplicate email",
			requestBody:    valid,
			mockError:      model.ErrVendorExists,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Missing required fields",
			requestBody:    &model.CreateVendorRequest{Name: "Spice Hub"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Service internal error",
			requestBody:    valid,
			mockError:      errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAdminService)
			handler := NewAdminHandler(mockService, logger)

			if tt.expectService {
				mockService.On("CreateVendor", mock.Anything, mock.AnythingOfType("*model.CreateVendorRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			w := httptest.NewRecorder()
			handler.CreateVendor(w, newRequest(t, http.MethodPost, "/admin/vendor", tt.requestBody))

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAdminHandler_GetVendorByID(t *testing.T) {
	logger := zerolog.Nop()
	vendorID := uuid.New()

	tests := []struct {
		name           string
		pathID         string
		mockReturn     *model.Vendor
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			pathID:         vendorID.String(),
			mockReturn:     &model.Vendor{ID: vendorID},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Vendor not found",
			pathID:         vendorID.String(),
			mockError:      model.ErrVendorNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Invalid UUID format",
			pathID:         "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAdminService)
			handler := NewAdminHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetVendorByID", mock.Anything, vendorID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin/vendor/"+tt.pathID, nil)
			req.SetPathValue("id", tt.pathID)
			w := httptest.NewRecorder()

			handler.GetVendorByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAdminHandler_Lists(t *testing.T) {
	mockService := new(MockAdminService)
	handler := NewAdminHandler(mockService, zerolog.Nop())

	mockService.On("GetVendors", mock.Anything).Return([]model.Vendor{{ID: uuid.New()}}, nil)
	mockService.On("GetTransactions", mock.Anything).Return(nil, model.ErrTransactionNotFound)
	mockService.On("GetDeliveryUsers", mock.Anything).Return([]model.DeliveryUser{{ID: uuid.New()}}, nil)

	w := httptest.NewRecorder()
	handler.GetVendors(w, httptest.NewRequest(http.MethodGet, "/admin/vendors", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.GetTransactions(w, httptest.NewRequest(http.MethodGet, "/admin/transactions", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	handler.GetDeliveryUsers(w, httptest.NewRequest(http.MethodGet, "/admin/delivery/users", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestAdminHandler_VerifyDeliveryUser(t *testing.T) {
	mockService := new(MockAdminService)
	handler := NewAdminHandler(mockService, zerolog.Nop())

	userID := uuid.New()
	mockService.On("VerifyDeliveryUser", mock.Anything, &model.VerifyDeliveryUserRequest{ID: userID, Status: true}).
		Return(&model.DeliveryUser{ID: userID, Verified: true}, nil)

	w := httptest.NewRecorder()
	handler.VerifyDeliveryUser(w, newRequest(t, http.MethodPut, "/admin/delivery/verify",
		map[string]any{"id": userID, "status": true}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
	mockService.AssertExpectations(t)
}
