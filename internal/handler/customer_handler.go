package handler

import (
	"net/http"
	"strconv"

	"food-order/internal/model"
	"food-order/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles account, cart, payment and order routes of customers.
type CustomerHandler struct {
	customers service.CustomerService
	cart      service.CartService
	offers    service.OfferService
	payments  service.PaymentService
	orders    service.OrderService
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(
	customers service.CustomerService,
	cart service.CartService,
	offers service.OfferService,
	payments service.PaymentService,
	orders service.OrderService,
	logger zerolog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		cart:      cart,
		offers:    offers,
		payments:  payments,
		orders:    orders,
		logger:    logger.With().Str("handler", "customer").Logger(),
	}
}

// Signup handles POST /customer/signup requests.
func (h *CustomerHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.customers.Signup(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /customer/login requests.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.customers.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Verify handles PATCH /customer/verify requests.
func (h *CustomerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.VerifyRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.customers.Verify(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// RequestOTP handles POST /customer/otp requests.
func (h *CustomerHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.customers.RequestOTP(r.Context(), user.ID); err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "OTP sent to your registered phone number"})
}

// GetProfile handles GET /customer/profile requests.
func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	customer, err := h.customers.GetProfile(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// EditProfile handles PATCH /customer/profile requests.
func (h *CustomerHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.EditProfileRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	customer, err := h.customers.EditProfile(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// AddToCart handles POST /customer/cart requests.
func (h *CustomerHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	cart, err := h.cart.AddToCart(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// GetCart handles GET /customer/cart requests.
func (h *CustomerHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	cart, err := h.cart.GetCart(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// DeleteCart handles DELETE /customer/cart requests.
func (h *CustomerHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	cart, err := h.cart.ClearCart(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// VerifyOffer handles GET /customer/offer/verify/{id} requests. The segment
// may be an offer ID or a promo code.
func (h *CustomerHandler) VerifyOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.offers.VerifyOffer(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.VerifyOfferResponse{Message: "Offer is valid", Offer: offer})
}

// CreatePayment handles POST /customer/create-payment requests.
func (h *CustomerHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.PaymentRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	txn, err := h.payments.CreatePayment(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}

// CreateOrder handles POST /customer/create-order requests.
func (h *CustomerHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	var req model.OrderRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetOrders handles GET /customer/orders requests.
func (h *CustomerHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}

	orders, err := h.orders.GetCustomerOrders(r.Context(), user.ID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByID handles GET /customer/order/{id} requests.
func (h *CustomerHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	order, err := h.orders.GetCustomerOrder(r.Context(), user.ID, orderID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetOrderQRCode handles GET /customer/order/{id}/qrcode requests.
func (h *CustomerHandler) GetOrderQRCode(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r, h.logger)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	png, err := h.orders.OrderQRCode(r.Context(), user.ID, orderID)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
