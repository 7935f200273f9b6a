package entity

import "fmt"

// TransactionType is the direction of a payment record.
type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

// Transaction is an immutable payment record against an order. The referenced
// order is not verified to exist; the record is persisted as submitted.
type Transaction struct {
	ID            string          `json:"id,omitempty"`
	OrderID       string          `json:"order_id"`
	CustomerEmail string          `json:"customer_email"`
	OwnerEmail    string          `json:"owner_email"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description,omitempty"`
}

// ApplyDefaults fills fields a request is allowed to omit.
func (t *Transaction) ApplyDefaults() {
	if t.Currency == "" {
		t.Currency = "USD"
	}
	if t.Type == "" {
		t.Type = TransactionDebit
	}
}

// Validate checks the structural invariants of a transaction record.
func (t *Transaction) Validate() error {
	switch t.Type {
	case TransactionDebit, TransactionCredit:
	default:
		return fmt.Errorf("invalid type %q", t.Type)
	}

	if t.OrderID == "" {
		return fmt.Errorf("order_id is required")
	}
	if t.CustomerEmail == "" || t.OwnerEmail == "" {
		return fmt.Errorf("customer_email and owner_email are required")
	}

	return nil
}
