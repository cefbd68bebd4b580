package model

import "time"

// OrderStatus describes the payment lifecycle of an order. Orders start
// pending and move exactly once to completed or failed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// OrderItem captures a purchased note with its price at purchase time.
// Title is resolved for display and does not participate in totals.
type OrderItem struct {
	NoteID int64
	Price  float64
	Title  string
}

// Order is a purchase transaction for one or more notes. It is a financial
// record and is never deleted.
type Order struct {
	ID               int64
	UserID           int64
	Items            []OrderItem
	TotalAmount      float64
	Currency         string
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Status           OrderStatus
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// OrderView is an order with purchaser details resolved for the back office.
type OrderView struct {
	Order
	UserName  string
	UserEmail string
}

// PaymentIntent is what the checkout flow hands to the client so it can open
// the gateway widget.
type PaymentIntent struct {
	GatewayOrderID string
	Amount         float64
	Currency       string
	Key            string
}

// OrderStats aggregates order counters for the admin dashboard.
type OrderStats struct {
	Total     int64
	Completed int64
	Pending   int64
	Revenue   float64
}
