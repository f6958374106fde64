package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryUser is an agent who carries orders to customers.
type DeliveryUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Address      string    `json:"address"`
	Pincode      string    `json:"pincode"`
	Verified     bool      `json:"verified"`
	IsAvailable  bool      `json:"isAvailable"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DeliverySignupRequest creates a delivery user account.
type DeliverySignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=7,max=12"`
	Password  string `json:"password" validate:"required,min=4,max=20"`
	FirstName string `json:"firstName" validate:"required,min=3,max=16"`
	LastName  string `json:"lastName" validate:"required,min=3,max=16"`
	Address   string `json:"address" validate:"required,min=4,max=20"`
	Pincode   string `json:"pincode" validate:"required"`
}

// VerifyDeliveryUserRequest is the admin decision on a delivery user.
type VerifyDeliveryUserRequest struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Status bool      `json:"status"`
}

// LocationRequest carries optional coordinates sent with a status toggle.
type LocationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}
