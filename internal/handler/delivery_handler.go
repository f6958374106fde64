package handler

import (
	"net/http"

	"food-order/internal/model"
	"food-order/internal/service"

	"github.com/rs/zerolog"
)

// DeliveryHandler handles the routes of delivery users.
type DeliveryHandler struct {
	service service.DeliveryService
	logger  zerolog.Logger
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(service service.DeliveryService, logger zerolog.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
		logger:  logger.With().Str("handler", "delivery").Logger(),
	}
}

// Signup handles POST /delivery/signup requests.
func (h *DeliveryHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.DeliverySignupRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /delivery/login requests.
func (h *DeliveryHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateStatus handles PUT /delivery/change-status requests.
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.LocationRequest
	if !decodeOptionalJSON(w, r, &req, h.logger) {
		return
	}

	profile, err := h.service.UpdateStatus(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GetProfile handles GET /delivery/profile requests.
func (h *DeliveryHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// EditProfile handles PATCH /delivery/profile requests.
func (h *DeliveryHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.EditProfileRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	profile, err := h.service.EditProfile(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
