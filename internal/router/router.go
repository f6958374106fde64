package router

import (
	"net/http"

	"food-order/internal/auth"
	"food-order/internal/handler"
	"food-order/internal/middleware"
	"food-order/internal/model"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Admin    *handler.AdminHandler
	Vendor   *handler.VendorHandler
	Customer *handler.CustomerHandler
	Delivery *handler.DeliveryHandler
	Shopping *handler.ShoppingHandler
}

// Options carries the non-handler inputs of the router.
type Options struct {
	APIKey         string
	AllowedOrigins []string

	// ImagesDir is served under /images/ when set.
	ImagesDir string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.TokenManager, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if opts.ImagesDir != "" {
		mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(opts.ImagesDir))))
	}

	admin := middleware.APIKeyAuth(opts.APIKey, logger)
	vendor := middleware.Authenticate(tokens, model.RoleVendor, logger)
	customer := middleware.Authenticate(tokens, model.RoleCustomer, logger)
	delivery := middleware.Authenticate(tokens, model.RoleDelivery, logger)

	// Admin
	mux.Handle("POST /admin/vendor", admin(http.HandlerFunc(h.Admin.CreateVendor)))
	mux.Handle("GET /admin/vendors", admin(http.HandlerFunc(h.Admin.GetVendors)))
	mux.Handle("GET /admin/vendor/{id}", admin(http.HandlerFunc(h.Admin.GetVendorByID)))
	mux.Handle("GET /admin/transactions", admin(http.HandlerFunc(h.Admin.GetTransactions)))
	mux.Handle("GET /admin/transaction/{id}", admin(http.HandlerFunc(h.Admin.GetTransactionByID)))
	mux.Handle("PUT /admin/delivery/verify", admin(http.HandlerFunc(h.Admin.VerifyDeliveryUser)))
	mux.Handle("GET /admin/delivery/users", admin(http.HandlerFunc(h.Admin.GetDeliveryUsers)))

	// Vendor
	mux.HandleFunc("POST /vendor/login", h.Vendor.Login)
	mux.Handle("GET /vendor/profile", vendor(http.HandlerFunc(h.Vendor.GetProfile)))
	mux.Handle("PATCH /vendor/profile", vendor(http.HandlerFunc(h.Vendor.UpdateProfile)))
	mux.Handle("PATCH /vendor/coverimage", vendor(http.HandlerFunc(h.Vendor.UpdateCoverImages)))
	mux.Handle("PATCH /vendor/service", vendor(http.HandlerFunc(h.Vendor.UpdateService)))
	mux.Handle("POST /vendor/food", vendor(http.HandlerFunc(h.Vendor.AddFood)))
	mux.Handle("GET /vendor/foods", vendor(http.HandlerFunc(h.Vendor.GetFoods)))
	mux.Handle("GET /vendor/orders", vendor(http.HandlerFunc(h.Vendor.GetCurrentOrders)))
	mux.Handle("GET /vendor/order/{id}", vendor(http.HandlerFunc(h.Vendor.GetOrderDetails)))
	mux.Handle("PUT /vendor/order/{id}/process", vendor(http.HandlerFunc(h.Vendor.ProcessOrder)))
	mux.Handle("GET /vendor/offers", vendor(http.HandlerFunc(h.Vendor.GetOffers)))
	mux.Handle("POST /vendor/offer", vendor(http.HandlerFunc(h.Vendor.AddOffer)))
	mux.Handle("PUT /vendor/offer/{id}", vendor(http.HandlerFunc(h.Vendor.EditOffer)))

	// Customer
	mux.HandleFunc("POST /customer/signup", h.Customer.Signup)
	mux.HandleFunc("POST /customer/login", h.Customer.Login)
	mux.Handle("PATCH /customer/verify", customer(http.HandlerFunc(h.Customer.Verify)))
	mux.Handle("POST /customer/otp", customer(http.HandlerFunc(h.Customer.RequestOTP)))
	mux.Handle("GET /customer/profile", customer(http.HandlerFunc(h.Customer.GetProfile)))
	mux.Handle("PATCH /customer/profile", customer(http.HandlerFunc(h.Customer.EditProfile)))
	mux.Handle("POST /customer/cart", customer(http.HandlerFunc(h.Customer.AddToCart)))
	mux.Handle("GET /customer/cart", customer(http.HandlerFunc(h.Customer.GetCart)))
	mux.Handle("DELETE /customer/cart", customer(http.HandlerFunc(h.Customer.DeleteCart)))
	mux.Handle("GET /customer/offer/verify/{id}", customer(http.HandlerFunc(h.Customer.VerifyOffer)))
	mux.Handle("POST /customer/create-payment", customer(http.HandlerFunc(h.Customer.CreatePayment)))
	mux.Handle("POST /customer/create-order", customer(http.HandlerFunc(h.Customer.CreateOrder)))
	mux.Handle("GET /customer/orders", customer(http.HandlerFunc(h.Customer.GetOrders)))
	mux.Handle("GET /customer/order/{id}", customer(http.HandlerFunc(h.Customer.GetOrderByID)))
	mux.Handle("GET /customer/order/{id}/qrcode", customer(http.HandlerFunc(h.Customer.GetOrderQRCode)))

	// Delivery
	mux.HandleFunc("POST /delivery/signup", h.Delivery.Signup)
	mux.HandleFunc("POST /delivery/login", h.Delivery.Login)
	mux.Handle("PUT /delivery/change-status", delivery(http.HandlerFunc(h.Delivery.UpdateStatus)))
	mux.Handle("GET /delivery/profile", delivery(http.HandlerFunc(h.Delivery.GetProfile)))
	mux.Handle("PATCH /delivery/profile", delivery(http.HandlerFunc(h.Delivery.EditProfile)))

	// Shopping
	mux.HandleFunc("GET /{pincode}", h.Shopping.GetFoodAvailability)
	mux.HandleFunc("GET /top-restaurants/{pincode}", h.Shopping.GetTopRestaurants)
	mux.HandleFunc("GET /foods-in-30-min/{pincode}", h.Shopping.GetFoodsIn30Min)
	mux.HandleFunc("GET /search/{pincode}", h.Shopping.SearchFoods)
	mux.HandleFunc("GET /offers/{pincode}", h.Shopping.GetAvailableOffers)
	mux.HandleFunc("GET /restaurant/{id}", h.Shopping.GetRestaurantByID)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(opts.AllowedOrigins)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
