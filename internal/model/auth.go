package model

import "github.com/google/uuid"

// Role scopes a token to one group of routes.
type Role string

const (
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
	RoleDelivery Role = "delivery"
)

// AuthPayload is what a signature carries about its holder.
type AuthPayload struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	Verified bool      `json:"verified"`
	Name     string    `json:"name,omitempty"`
}
