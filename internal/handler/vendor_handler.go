package handler

import (
	"net/http"
	"strconv"
	"strings"

	"food-order/internal/model"
	"food-order/internal/service"

	"github.com/rs/zerolog"
)

// VendorHandler handles the routes of a logged in restaurant.
type VendorHandler struct {
	vendors service.VendorService
	orders  service.OrderService
	offers  service.OfferService
	logger  zerolog.Logger
}

// NewVendorHandler creates a new vendor handler.
func NewVendorHandler(vendors service.VendorService, orders service.OrderService, offers service.OfferService, logger zerolog.Logger) *VendorHandler {
	return &VendorHandler{
		vendors: vendors,
		orders:  orders,
		offers:  offers,
		logger:  logger.With().Str("handler", "vendor").Logger(),
	}
}

// Login handles POST /vendor/login requests.
func (h *VendorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	token, err := h.vendors.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// GetProfile handles GET /vendor/profile requests.
func (h *VendorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	vendor, err := h.vendors.GetProfile(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}

// UpdateProfile handles PATCH /vendor/profile requests.
func (h *VendorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.EditVendorRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	vendor, err := h.vendors.UpdateProfile(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}

// UpdateCoverImages handles PATCH /vendor/coverimage multipart uploads.
func (h *VendorHandler) UpdateCoverImages(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	files, err := readImages(r)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	vendor, err := h.vendors.UpdateCoverImages(r.Context(), user.ID, files)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}

// UpdateService handles PATCH /vendor/service requests. The body is optional.
func (h *VendorHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.LocationRequest
	if !decodeOptionalJSON(w, r, &req, h.logger) {
		return
	}

	vendor, err := h.vendors.UpdateService(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}

// AddFood handles POST /vendor/food multipart requests.
func (h *VendorHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	files, err := readImages(r)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	req, err := foodForm(r)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	if !validateRequest(w, req, h.logger) {
		return
	}

	vendor, err := h.vendors.AddFood(r.Context(), user.ID, req, files)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, vendor)
}

// foodForm reads the text fields of the AddFood form.
func foodForm(r *http.Request) (*model.CreateFoodRequest, error) {
	req := &model.CreateFoodRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		FoodType:    r.FormValue("foodType"),
	}

	if v := r.FormValue("readyTime"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, model.NewDomainError(model.ErrCodeValidation, "readyTime must be a whole number of minutes")
		}
		req.ReadyTime = n
	}

	if v := r.FormValue("price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, model.NewDomainError(model.ErrCodeValidation, "price must be a number")
		}
		req.Price = p
	}

	return req, nil
}

// GetFoods handles GET /vendor/foods requests.
func (h *VendorHandler) GetFoods(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	foods, err := h.vendors.GetFoods(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// GetCurrentOrders handles GET /vendor/orders requests.
func (h *VendorHandler) GetCurrentOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	orders, err := h.orders.GetVendorOrders(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetOrderDetails handles GET /vendor/order/{id} requests.
func (h *VendorHandler) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	order, err := h.orders.GetVendorOrder(r.Context(), user.ID, orderID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// ProcessOrder handles PUT /vendor/order/{id}/process requests.
func (h *VendorHandler) ProcessOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.ProcessOrderRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.orders.ProcessOrder(r.Context(), user.ID, orderID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetOffers handles GET /vendor/offers requests.
func (h *VendorHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	offers, err := h.offers.GetVendorOffers(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

// AddOffer handles POST /vendor/offer requests.
func (h *VendorHandler) AddOffer(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.OfferRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	offer, err := h.offers.AddOffer(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

// EditOffer handles PUT /vendor/offer/{id} requests.
func (h *VendorHandler) EditOffer(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}
	offerID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.OfferRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	offer, err := h.offers.EditOffer(r.Context(), user.ID, offerID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}
