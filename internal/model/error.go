package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is returned by operations that have nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInvalidOTP         = "INVALID_OTP"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidOffer       = "INVALID_OFFER"
	ErrCodeInvalidTransaction = "INVALID_TRANSACTION"
	ErrCodeInvalidOrderStatus = "INVALID_ORDER_STATUS"
	ErrCodeMixedVendors       = "MIXED_VENDORS"
	ErrCodeMissingImages      = "MISSING_IMAGES"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business rule failure that maps onto an API error code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrVendorExists         = NewDomainError(ErrCodeConflict, "A vendor already exists with this email")
	ErrCustomerExists       = NewDomainError(ErrCodeConflict, "Customer with this email already exists")
	ErrDeliveryUserExists   = NewDomainError(ErrCodeConflict, "Delivery user with this email already exists")
	ErrInvalidCredentials   = NewDomainError(ErrCodeInvalidCredentials, "Login credentials are invalid")
	ErrInvalidOTP           = NewDomainError(ErrCodeInvalidOTP, "OTP is invalid or has expired")
	ErrVendorNotFound       = NewDomainError(ErrCodeNotFound, "Vendor data not available")
	ErrFoodNotFound         = NewDomainError(ErrCodeNotFound, "One or more foods not found")
	ErrCustomerNotFound     = NewDomainError(ErrCodeNotFound, "Profile not found")
	ErrDeliveryUserNotFound = NewDomainError(ErrCodeNotFound, "Delivery user not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrOfferNotFound        = NewDomainError(ErrCodeNotFound, "Offer not found")
	ErrTransactionNotFound  = NewDomainError(ErrCodeNotFound, "Transaction not available")
	ErrNoDataFound          = NewDomainError(ErrCodeNotFound, "Data not found")
	ErrOfferNotOwned        = NewDomainError(ErrCodeForbidden, "Offer does not belong to this vendor")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Unit must be between 1 and 1000")
	ErrInvalidOffer         = NewDomainError(ErrCodeInvalidOffer, "Offer is not valid")
	ErrInvalidTransaction   = NewDomainError(ErrCodeInvalidTransaction, "Transaction is not open for this customer")
	ErrInvalidOrderStatus   = NewDomainError(ErrCodeInvalidOrderStatus, "Unknown order status")
	ErrMixedVendors         = NewDomainError(ErrCodeMixedVendors, "All items of an order must come from one vendor")
	ErrEmptyOrder           = NewDomainError(ErrCodeValidation, "Order must contain at least one item")
	ErrMissingImages        = NewDomainError(ErrCodeMissingImages, "No images found in request")
)
