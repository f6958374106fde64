package model

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a restaurant listed on the marketplace.
type Vendor struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	OwnerName        string    `json:"ownerName"`
	FoodTypes        []string  `json:"foodTypes"`
	Pincode          string    `json:"pincode"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	ServiceAvailable bool      `json:"serviceAvailable"`
	CoverImages      []string  `json:"coverImages"`
	Rating           float64   `json:"rating"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	Foods            []Food    `json:"foods,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateVendorRequest is the admin payload for onboarding a vendor.
type CreateVendorRequest struct {
	Name      string   `json:"name" validate:"required"`
	OwnerName string   `json:"ownerName" validate:"required"`
	FoodTypes []string `json:"foodType"`
	Pincode   string   `json:"pincode" validate:"required"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=4,max=20"`
}

// EditVendorRequest updates the vendor's public profile.
type EditVendorRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	FoodTypes []string `json:"foodTypes"`
}

// LoginRequest is shared by every role.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

// TokenResponse is returned by the vendor login.
type TokenResponse struct {
	Token string `json:"token"`
}
