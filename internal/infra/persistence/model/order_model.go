package model

import (
	"carmarket/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderModel is the bson document for the 'order' collection.
type OrderModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	OrderType      string             `bson:"order_type"`
	CarID          string             `bson:"car_id"`
	CustomerEmail  string             `bson:"customer_email"`
	OwnerEmail     string             `bson:"owner_email"`
	Status         string             `bson:"status"`
	StartDate      string             `bson:"start_date,omitempty"`
	EndDate        string             `bson:"end_date,omitempty"`
	PickupLocation string             `bson:"pickup_location,omitempty"`
	TotalAmount    float64            `bson:"total_amount"`
}

// CollectionName is the store collection holding order documents.
func (OrderModel) CollectionName() string { return "order" }

// FromOrderDomain maps a domain order to its store document.
func FromOrderDomain(o *entity.Order) *OrderModel {
	return &OrderModel{
		OrderType:      string(o.OrderType),
		CarID:          o.CarID,
		CustomerEmail:  o.CustomerEmail,
		OwnerEmail:     o.OwnerEmail,
		Status:         string(o.Status),
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		PickupLocation: o.PickupLocation,
		TotalAmount:    o.TotalAmount,
	}
}

// ToDomain maps the store document back to the domain entity.
func (m *OrderModel) ToDomain() *entity.Order {
	return &entity.Order{
		ID:             m.ID.Hex(),
		OrderType:      entity.OrderType(m.OrderType),
		CarID:          m.CarID,
		CustomerEmail:  m.CustomerEmail,
		OwnerEmail:     m.OwnerEmail,
		Status:         entity.OrderStatus(m.Status),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		PickupLocation: m.PickupLocation,
		TotalAmount:    m.TotalAmount,
	}
}
