package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer account. OTP fields never leave the server.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Address      string    `json:"address"`
	Verified     bool      `json:"verified"`
	OTP          int       `json:"-"`
	OTPExpiry    time.Time `json:"-"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignupRequest creates a customer account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=12"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

// VerifyRequest carries the OTP typed by the customer.
type VerifyRequest struct {
	OTP string `json:"otp" validate:"required,numeric"`
}

// EditProfileRequest is shared by customers and delivery users.
type EditProfileRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=16"`
	LastName  string `json:"lastName" validate:"required,min=3,max=16"`
	Address   string `json:"address" validate:"required,min=4,max=20"`
}

// AuthResponse is returned after signup, login and verification.
type AuthResponse struct {
	Signature string `json:"signature"`
	Verified  bool   `json:"verified"`
	Email     string `json:"email"`
}

// CartItem is one line of a customer's cart.
type CartItem struct {
	Food Food `json:"food"`
	Unit int  `json:"unit"`
}

// CartRequest changes the unit count of one food by a signed delta.
type CartRequest struct {
	FoodID uuid.UUID `json:"foodId" validate:"required"`
	Unit   int       `json:"unit" validate:"ne=0,min=-1000,max=1000"`
}
