package model

import (
	"carmarket/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationModel is the bson document for the 'notification' collection.
type NotificationModel struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Title   string             `bson:"title"`
	Message string             `bson:"message"`
	Read    bool               `bson:"read"`
}

// CollectionName is the store collection holding notification documents.
func (NotificationModel) CollectionName() string { return "notification" }

// FromNotificationDomain maps a domain notification to its store document.
func FromNotificationDomain(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		Email:   n.Email,
		Title:   n.Title,
		Message: n.Message,
		Read:    n.Read,
	}
}

// ToDomain maps the store document back to the domain entity.
func (m *NotificationModel) ToDomain() *entity.Notification {
	return &entity.Notification{
		ID:      m.ID.Hex(),
		Email:   m.Email,
		Title:   m.Title,
		Message: m.Message,
		Read:    m.Read,
	}
}
