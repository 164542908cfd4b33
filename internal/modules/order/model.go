package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Order represents a buyer's checkout.
type Order struct {
	ID          uuid.UUID    `json:"id"`
	BuyerID     uuid.UUID    `json:"buyer_id"`
	OrderNumber string       `json:"order_number"`
	Status      OrderStatus  `json:"status"`
	Total       float64      `json:"total"`
	Address     string       `json:"address,omitempty"`
	Items       []*OrderItem `json:"items,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// OrderItem is a single line item. UnitPrice is a snapshot of the
// product price at checkout time, so later catalog edits do not change
// past revenue.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is a transient struct describing what a buyer wants.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	BuyerID string     `json:"buyer_id"`
	Items   []CartItem `json:"items"`
	Address string     `json:"address,omitempty"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
