package model

import (
	"carmarket/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardModel is the bson document for the 'reward' collection, keyed by
// customer email (one document per email).
type RewardModel struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Email  string             `bson:"email"`
	Points int                `bson:"points"`
	Tier   string             `bson:"tier"`
}

// CollectionName is the store collection holding reward documents.
func (RewardModel) CollectionName() string { return "reward" }

// ToDomain maps the store document back to the domain entity.
func (m *RewardModel) ToDomain() *entity.Reward {
	return &entity.Reward{
		ID:     m.ID.Hex(),
		Email:  m.Email,
		Points: m.Points,
		Tier:   entity.Tier(m.Tier),
	}
}
