package models

import (
	"fmt"
	"time"
)

// Order is the immutable record of a completed checkout.
// It is written once to the orders table and never updated.
type Order struct {
	OrderID   string    `json:"order_id" db:"order_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address" db:"address"`
	OrderTime time.Time `json:"order_time" db:"order_time"`
	Items     Cart      `json:"items" db:"items"`
	Total     float64   `json:"total" db:"total"`
}

// EmailSummary builds the plain-text confirmation sent to the buyer.
func (o *Order) EmailSummary() string {
	return fmt.Sprintf(
		"Order ID: %s\nName: %s\nTotal: ₹%.2f\n\nThank you for your order!",
		o.OrderID, o.Name, o.Total,
	)
}

// PushMessage builds the broadcast sent to the order notification topic.
func (o *Order) PushMessage() string {
	return fmt.Sprintf(
		"New Order Placed!\nOrder ID: %s\nCustomer: %s\nTotal: ₹%.2f",
		o.OrderID, o.Name, o.Total,
	)
}
