package model

import (
	"time"

	"github.com/google/uuid"
)

// Offer types
const (
	OfferTypeVendor  = "VENDOR"
	OfferTypeGeneric = "GENERIC"
)

// Promo types
const (
	PromoTypeUser = "USER"
	PromoTypeAll  = "ALL"
	PromoTypeBank = "BANK"
	PromoTypeCard = "CARD"
)

// Offer is a flat discount applied to a payment.
type Offer struct {
	ID            uuid.UUID   `json:"id"`
	OfferType     string      `json:"offerType"`
	Vendors       []uuid.UUID `json:"vendors"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	MinValue      float64     `json:"minValue"`
	OfferAmount   float64     `json:"offerAmount"`
	StartValidity *time.Time  `json:"startValidity,omitempty"`
	EndValidity   *time.Time  `json:"endValidity,omitempty"`
	PromoCode     string      `json:"promoCode"`
	PromoType     string      `json:"promoType"`
	Banks         []string    `json:"banks"`
	Bins          []int64     `json:"bins"`
	Pincode       string      `json:"pincode"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// ValidAt reports whether the offer can be applied at t.
func (o *Offer) ValidAt(t time.Time) bool {
	if !o.IsActive {
		return false
	}
	if o.StartValidity != nil && t.Before(*o.StartValidity) {
		return false
	}
	if o.EndValidity != nil && t.After(*o.EndValidity) {
		return false
	}
	return true
}

// AppliesToVendor reports whether a vendor may see or edit the offer.
func (o *Offer) AppliesToVendor(vendorID uuid.UUID) bool {
	if o.OfferType == OfferTypeGeneric {
		return true
	}
	for _, id := range o.Vendors {
		if id == vendorID {
			return true
		}
	}
	return false
}

// Discount returns the amount to subtract from an order of the given value.
func (o *Offer) Discount(amount float64) float64 {
	if amount < o.MinValue {
		return 0
	}
	return min(o.OfferAmount, amount)
}

// OfferRequest is used both to create and to edit an offer.
type OfferRequest struct {
	OfferType     string     `json:"offerType" validate:"required,oneof=VENDOR GENERIC"`
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	MinValue      float64    `json:"minValue" validate:"gte=0"`
	OfferAmount   float64    `json:"offerAmount" validate:"gt=0"`
	StartValidity *time.Time `json:"startValidity"`
	EndValidity   *time.Time `json:"endValidity"`
	PromoCode     string     `json:"promoCode" validate:"required"`
	PromoType     string     `json:"promoType" validate:"required,oneof=USER ALL BANK CARD"`
	Banks         []string   `json:"banks"`
	Bins          []int64    `json:"bins"`
	Pincode       string     `json:"pincode" validate:"required"`
	IsActive      bool       `json:"isActive"`
}

// VerifyOfferResponse is returned when a promo code checks out.
type VerifyOfferResponse struct {
	Message string `json:"message"`
	Offer   *Offer `json:"offer"`
}
