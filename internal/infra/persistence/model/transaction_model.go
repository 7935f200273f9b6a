package model

import (
	"carmarket/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionModel is the bson document for the 'transaction' collection.
type TransactionModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	OrderID       string             `bson:"order_id"`
	CustomerEmail string             `bson:"customer_email"`
	OwnerEmail    string             `bson:"owner_email"`
	Amount        float64            `bson:"amount"`
	Currency      string             `bson:"currency"`
	Type          string             `bson:"type"`
	Description   string             `bson:"description,omitempty"`
}

// CollectionName is the store collection holding transaction documents.
func (TransactionModel) CollectionName() string { return "transaction" }

// FromTransactionDomain maps a domain transaction to its store document.
func FromTransactionDomain(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		OrderID:       t.OrderID,
		CustomerEmail: t.CustomerEmail,
		OwnerEmail:    t.OwnerEmail,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Type:          string(t.Type),
		Description:   t.Description,
	}
}

// ToDomain maps the store document back to the domain entity.
func (m *TransactionModel) ToDomain() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID.Hex(),
		OrderID:       m.OrderID,
		CustomerEmail: m.CustomerEmail,
		OwnerEmail:    m.OwnerEmail,
		Amount:        m.Amount,
		Currency:      m.Currency,
		Type:          entity.TransactionType(m.Type),
		Description:   m.Description,
	}
}
