package entity

import "fmt"

// OrderType distinguishes a rental request from a purchase request.
type OrderType string

const (
	OrderTypeRent OrderType = "rent"
	OrderTypeBuy  OrderType = "buy"
)

// OrderStatus is the lifecycle state of an order. Status updates are applied
// unconditionally: there is no legal-transition check, so completed→pending
// is accepted.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCompleted OrderStatus = "completed"
)

// Order is a customer's request against a listing. TotalAmount is
// caller-supplied and is not recomputed from the car's price.
type Order struct {
	ID             string      `json:"id,omitempty"`
	OrderType      OrderType   `json:"order_type"`
	CarID          string      `json:"car_id"`
	CustomerEmail  string      `json:"customer_email"`
	OwnerEmail     string      `json:"owner_email"`
	Status         OrderStatus `json:"status"`
	StartDate      string      `json:"start_date,omitempty"`      // rentals
	EndDate        string      `json:"end_date,omitempty"`        // rentals
	PickupLocation string      `json:"pickup_location,omitempty"` // rentals
	TotalAmount    float64     `json:"total_amount"`
}

// ApplyDefaults fills fields a request is allowed to omit.
func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}

// Validate checks the structural invariants of an order record.
func (o *Order) Validate() error {
	switch o.OrderType {
	case OrderTypeRent, OrderTypeBuy:
	default:
		return fmt.Errorf("invalid order_type %q", o.OrderType)
	}

	switch o.Status {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusCompleted:
	default:
		return fmt.Errorf("invalid status %q", o.Status)
	}

	if o.CarID == "" {
		return fmt.Errorf("car_id is required")
	}
	if o.CustomerEmail == "" || o.OwnerEmail == "" {
		return fmt.Errorf("customer_email and owner_email are required")
	}

	return nil
}
