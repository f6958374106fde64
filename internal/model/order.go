package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderWaiting        OrderStatus = "WAITING"
	OrderAccepted       OrderStatus = "ACCEPTED"
	OrderRejected       OrderStatus = "REJECTED"
	OrderUnderProcess   OrderStatus = "UNDER_PROCESS"
	OrderReady          OrderStatus = "READY"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderWaiting, OrderAccepted, OrderRejected, OrderUnderProcess,
		OrderReady, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// DefaultReadyTime is the preparation estimate, in minutes, of a new order.
const DefaultReadyTime = 45

// MaxUnit caps the units of one food in a cart line or an order line.
const MaxUnit = 1000

// Order represents a customer order placed with a single vendor.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	OrderNumber   string      `json:"orderId"`
	CustomerID    uuid.UUID   `json:"customerId"`
	VendorID      uuid.UUID   `json:"vendorId"`
	TransactionID *uuid.UUID  `json:"transactionId,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaidAmount    float64     `json:"paidAmount"`
	Status        OrderStatus `json:"orderStatus"`
	Remarks       string      `json:"remarks"`
	DeliveryID    *uuid.UUID  `json:"deliveryId,omitempty"`
	ReadyTime     int         `json:"readyTime"`
	OrderDate     time.Time   `json:"orderDate"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OrderItem is a line of an order with the food's name and price at the time
// the order was placed. Food is populated on reads.
type OrderItem struct {
	FoodID uuid.UUID `json:"foodId"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Unit   int       `json:"unit"`
	Food   *Food     `json:"food,omitempty"`
}

// OrderRequest places an order against an open transaction.
type OrderRequest struct {
	TxnID  uuid.UUID          `json:"txnId" validate:"required"`
	Amount float64            `json:"amount"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest represents a single item in an order request.
type OrderItemRequest struct {
	FoodID uuid.UUID `json:"foodId" validate:"required"`
	Unit   int       `json:"unit" validate:"gt=0,max=1000"`
}

// ProcessOrderRequest is sent by the vendor to move an order along.
type ProcessOrderRequest struct {
	Status  OrderStatus `json:"status" validate:"required"`
	Remarks string      `json:"remarks"`
	Time    int         `json:"time" validate:"gte=0"`
}
