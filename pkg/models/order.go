package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusOnTheWay   OrderStatus = "On The Way"
	StatusDelivered  OrderStatus = "Delivered"
)

// ValidStatus reports whether status is a known order status. Transitions are
// deliberately unguarded: the admin may move an order to any status in any
// order.
func ValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusOnTheWay, StatusDelivered:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentBkash  PaymentMethod = "bKash"
	PaymentNagad  PaymentMethod = "Nagad"
	PaymentRocket PaymentMethod = "Rocket"
	PaymentUpay   PaymentMethod = "Upay"
	PaymentCOD    PaymentMethod = "COD"
)

func ValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentBkash, PaymentNagad, PaymentRocket, PaymentUpay, PaymentCOD:
		return true
	default:
		return false
	}
}

// Customer is the contact block captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is a placed order. UserID is empty for anonymous checkouts. The id
// and date are assigned by the caller before dispatch.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id,omitempty"`
	Customer      Customer      `json:"customer"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Status        OrderStatus   `json:"status"`
	Date          time.Time     `json:"date"`
}
