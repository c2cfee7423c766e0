package structs

import (
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessed,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	return slices.Contains(orderStatuses, s)
}

// Order is a cash-on-delivery order submitted from the landing page.
// ProductID/VariantID are weak references; VariantImage and VariantName are
// snapshots taken at submission time.
type Order struct {
	ID           string      `json:"id"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Phone        string      `json:"phone"`
	State        string      `json:"state"`
	Municipality string      `json:"municipality"`
	Address      string      `json:"address"`
	ProductID    string      `json:"productId"`
	VariantID    string      `json:"variantId"`
	VariantImage string      `json:"variantImage"`
	VariantName  string      `json:"variantName"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// CreateOrderRequest carries the public submission. Status is deliberately
// absent: whatever the client sends, a new order starts out pending.
type CreateOrderRequest struct {
	FirstName    string `json:"firstName" validate:"required,notblank"`
	LastName     string `json:"lastName" validate:"required,notblank"`
	Phone        string `json:"phone" validate:"required,notblank,algphone"`
	State        string `json:"state" validate:"required,notblank"`
	Municipality string `json:"municipality" validate:"required,notblank"`
	Address      string `json:"address" validate:"required,notblank"`
	ProductID    string `json:"productId" validate:"required,notblank"`
	VariantID    string `json:"variantId" validate:"required,notblank"`
	VariantImage string `json:"variantImage"`
	VariantName  string `json:"variantName"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
