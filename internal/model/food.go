package model

import (
	"time"

	"github.com/google/uuid"
)

// Food is a menu item owned by exactly one vendor.
type Food struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FoodType    string    `json:"foodType"`
	ReadyTime   int       `json:"readyTime"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateFoodRequest carries the text fields of the multipart AddFood form.
type CreateFoodRequest struct {
	Name        string  `validate:"required"`
	Description string
	Category    string
	FoodType    string
	ReadyTime   int     `validate:"gte=0"`
	Price       float64 `validate:"gte=0"`
}
