package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction statuses
const (
	TransactionOpen      = "OPEN"
	TransactionConfirmed = "CONFIRMED"
	TransactionFailed    = "FAILED"
)

// CashOnDelivery is the only payment response the marketplace produces.
const CashOnDelivery = "Payment is Cash on Delivery"

// Transaction records one payment attempt.
type Transaction struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customerId"`
	VendorID        *uuid.UUID `json:"vendorId,omitempty"`
	OrderID         *uuid.UUID `json:"orderId,omitempty"`
	OrderValue      float64    `json:"orderValue"`
	OfferUsed       *uuid.UUID `json:"offerUsed,omitempty"`
	Status          string     `json:"status"`
	PaymentMode     string     `json:"paymentMode"`
	PaymentResponse string     `json:"paymentResponse"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// PaymentRequest opens a transaction for the current cart value.
type PaymentRequest struct {
	Amount      float64    `json:"amount" validate:"gt=0"`
	PaymentMode string     `json:"paymentMode" validate:"required"`
	OfferID     *uuid.UUID `json:"offerId"`
}
