package handler

import (
	"net/http"

	"food-order/internal/model"
	"food-order/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles the back-office routes.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// CreateVendor handles POST /admin/vendor requests.
func (h *AdminHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req model.CreateVendorRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	vendor, err := h.service.CreateVendor(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, vendor)
}

// GetVendors handles GET /admin/vendors requests.
func (h *AdminHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.GetVendors(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendors)
}

// GetVendorByID handles GET /admin/vendor/{id} requests.
func (h *AdminHandler) GetVendorByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	vendor, err := h.service.GetVendorByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}

// GetTransactions handles GET /admin/transactions requests.
func (h *AdminHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.service.GetTransactions(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, txns)
}

// GetTransactionByID handles GET /admin/transaction/{id} requests.
func (h *AdminHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	txn, err := h.service.GetTransactionByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, txn)
}

// VerifyDeliveryUser handles PUT /admin/delivery/verify requests.
func (h *AdminHandler) VerifyDeliveryUser(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyDeliveryUserRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.VerifyDeliveryUser(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetDeliveryUsers handles GET /admin/delivery/users requests.
func (h *AdminHandler) GetDeliveryUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetDeliveryUsers(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
