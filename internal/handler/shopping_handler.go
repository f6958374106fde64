package handler

import (
	"net/http"

	"food-order/internal/service"

	"github.com/rs/zerolog"
)

// ShoppingHandler handles the public catalogue routes.
type ShoppingHandler struct {
	service service.ShoppingService
	logger  zerolog.Logger
}

// NewShoppingHandler creates a new shopping handler.
func NewShoppingHandler(service service.ShoppingService, logger zerolog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		service: service,
		logger:  logger.With().Str("handler", "shopping").Logger(),
	}
}

// GetFoodAvailability handles GET /{pincode} requests.
func (h *ShoppingHandler) GetFoodAvailability(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.GetFoodAvailability(r.Context(), r.PathValue("pincode"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendors)
}

// GetTopRestaurants handles GET /top-restaurants/{pincode} requests.
func (h *ShoppingHandler) GetTopRestaurants(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.GetTopRestaurants(r.Context(), r.PathValue("pincode"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendors)
}

// GetFoodsIn30Min handles GET /foods-in-30-min/{pincode} requests.
func (h *ShoppingHandler) GetFoodsIn30Min(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.GetFoodsIn30Min(r.Context(), r.PathValue("pincode"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// SearchFoods handles GET /search/{pincode}?q= requests.
func (h *ShoppingHandler) SearchFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.SearchFoods(r.Context(), r.PathValue("pincode"), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// GetAvailableOffers handles GET /offers/{pincode} requests.
func (h *ShoppingHandler) GetAvailableOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.GetAvailableOffers(r.Context(), r.PathValue("pincode"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

// GetRestaurantByID handles GET /restaurant/{id} requests.
func (h *ShoppingHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	vendor, err := h.service.GetRestaurantByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, vendor)
}
