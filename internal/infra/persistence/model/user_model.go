// Package model contains the store-specific document structs for the
// MongoDB persistence layer, with mappers to and from the domain entities.
package model

import (
	"carmarket/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is the bson document for the 'user' collection.
type UserModel struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Role               string             `bson:"role"`
	FullName           string             `bson:"full_name"`
	Email              string             `bson:"email"`
	Phone              string             `bson:"phone,omitempty"`
	Location           string             `bson:"location,omitempty"`
	AvatarURL          string             `bson:"avatar_url,omitempty"`
	DriverLicense      string             `bson:"driver_license,omitempty"`
	CompanyName        string             `bson:"company_name,omitempty"`
	VerificationStatus string             `bson:"verification_status"`
}

// CollectionName is the store collection holding user documents.
func (UserModel) CollectionName() string { return "user" }

// FromUserDomain maps a domain user to its store document. The document
// identifier is left unset; the store generates it on insert.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		Role:               string(u.Role),
		FullName:           u.FullName,
		Email:              u.Email,
		Phone:              u.Phone,
		Location:           u.Location,
		AvatarURL:          u.AvatarURL,
		DriverLicense:      u.DriverLicense,
		CompanyName:        u.CompanyName,
		VerificationStatus: string(u.VerificationStatus),
	}
}

// ToDomain maps the store document back to the domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:                 m.ID.Hex(),
		Role:               entity.Role(m.Role),
		FullName:           m.FullName,
		Email:              m.Email,
		Phone:              m.Phone,
		Location:           m.Location,
		AvatarURL:          m.AvatarURL,
		DriverLicense:      m.DriverLicense,
		CompanyName:        m.CompanyName,
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
	}
}
