package model

import (
	"carmarket/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarModel is the bson document for the 'car' collection.
//
// Price fields stay pointers so that an unpriced listing stores no field at
// all; range filters on the price keys must not match such documents.
type CarModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	OwnerEmail   string             `bson:"owner_email"`
	Title        string             `bson:"title"`
	Brand        string             `bson:"brand"`
	Model        string             `bson:"model"`
	Year         int                `bson:"year"`
	Images       []string           `bson:"images"`
	Location     string             `bson:"location"`
	CarType      string             `bson:"car_type"`
	Transmission string             `bson:"transmission"`
	Fuel         string             `bson:"fuel"`
	Mileage      *int               `bson:"mileage,omitempty"`
	Color        string             `bson:"color,omitempty"`
	ForRent      bool               `bson:"for_rent"`
	ForSale      bool               `bson:"for_sale"`
	PricePerDay  *float64           `bson:"price_per_day,omitempty"`
	SalePrice    *float64           `bson:"sale_price,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Available    bool               `bson:"available"`
}

// CollectionName is the store collection holding car documents.
func (CarModel) CollectionName() string { return "car" }

// FromCarDomain maps a domain listing to its store document.
func FromCarDomain(c *entity.Car) *CarModel {
	return &CarModel{
		OwnerEmail:   c.OwnerEmail,
		Title:        c.Title,
		Brand:        c.Brand,
		Model:        c.Model,
		Year:         c.Year,
		Images:       c.Images,
		Location:     c.Location,
		CarType:      string(c.CarType),
		Transmission: string(c.Transmission),
		Fuel:         string(c.Fuel),
		Mileage:      c.Mileage,
		Color:        c.Color,
		ForRent:      c.ForRent,
		ForSale:      c.ForSale,
		PricePerDay:  c.PricePerDay,
		SalePrice:    c.SalePrice,
		Description:  c.Description,
		Available:    c.Available,
	}
}

// ToDomain maps the store document back to the domain entity.
func (m *CarModel) ToDomain() *entity.Car {
	return &entity.Car{
		ID:           m.ID.Hex(),
		OwnerEmail:   m.OwnerEmail,
		Title:        m.Title,
		Brand:        m.Brand,
		Model:        m.Model,
		Year:         m.Year,
		Images:       m.Images,
		Location:     m.Location,
		CarType:      entity.CarType(m.CarType),
		Transmission: entity.Transmission(m.Transmission),
		Fuel:         entity.Fuel(m.Fuel),
		Mileage:      m.Mileage,
		Color:        m.Color,
		ForRent:      m.ForRent,
		ForSale:      m.ForSale,
		PricePerDay:  m.PricePerDay,
		SalePrice:    m.SalePrice,
		Description:  m.Description,
		Available:    m.Available,
	}
}
