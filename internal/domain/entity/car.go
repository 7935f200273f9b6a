package entity

import "fmt"

// CarType is the body style of a listed car.
type CarType string

const (
	CarTypeSedan       CarType = "sedan"
	CarTypeSUV         CarType = "suv"
	CarTypeTruck       CarType = "truck"
	CarTypeCoupe       CarType = "coupe"
	CarTypeHatchback   CarType = "hatchback"
	CarTypeVan         CarType = "van"
	CarTypeConvertible CarType = "convertible"
	CarTypeElectric    CarType = "electric"
	CarTypeHybrid      CarType = "hybrid"
	CarTypeOther       CarType = "other"
)

// Transmission is the gearbox type of a listed car.
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// Fuel is the fuel type of a listed car.
type Fuel string

const (
	FuelPetrol   Fuel = "petrol"
	FuelDiesel   Fuel = "diesel"
	FuelElectric Fuel = "electric"
	FuelHybrid   Fuel = "hybrid"
	FuelOther    Fuel = "other"
)

// Car is a marketplace listing. A car may be offered for rent, for sale, or
// both; a listing offering neither is invalid.
//
// PricePerDay and SalePrice are pointers so that "not priced" survives the
// round trip to the store: price range filters must not match listings that
// never set the relevant price field.
type Car struct {
	ID           string       `json:"id,omitempty"`
	OwnerEmail   string       `json:"owner_email"`
	Title        string       `json:"title"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Images       []string     `json:"images"`
	Location     string       `json:"location"`
	CarType      CarType      `json:"car_type"`
	Transmission Transmission `json:"transmission"`
	Fuel         Fuel         `json:"fuel"`
	Mileage      *int         `json:"mileage,omitempty"`
	Color        string       `json:"color,omitempty"`
	ForRent      bool         `json:"for_rent"`
	ForSale      bool         `json:"for_sale"`
	PricePerDay  *float64     `json:"price_per_day,omitempty"`
	SalePrice    *float64     `json:"sale_price,omitempty"`
	Description  string       `json:"description,omitempty"`
	Available    bool         `json:"available"`
}

// ApplyDefaults fills fields a request is allowed to omit. The boolean
// listing flags default at the transport edge, where omitted and false are
// still distinguishable.
func (c *Car) ApplyDefaults() {
	if c.CarType == "" {
		c.CarType = CarTypeSedan
	}
	if c.Transmission == "" {
		c.Transmission = TransmissionAutomatic
	}
	if c.Fuel == "" {
		c.Fuel = FuelPetrol
	}
	if c.Images == nil {
		c.Images = []string{}
	}
}

// Validate checks the structural invariants of a listing. The listing
// invariant: a car must be offered for rent, for sale, or both.
func (c *Car) Validate() error {
	if !c.ForRent && !c.ForSale {
		return fmt.Errorf("car must be for sale or for rent")
	}

	switch c.CarType {
	case CarTypeSedan, CarTypeSUV, CarTypeTruck, CarTypeCoupe, CarTypeHatchback,
		CarTypeVan, CarTypeConvertible, CarTypeElectric, CarTypeHybrid, CarTypeOther:
	default:
		return fmt.Errorf("invalid car_type %q", c.CarType)
	}

	switch c.Transmission {
	case TransmissionAutomatic, TransmissionManual:
	default:
		return fmt.Errorf("invalid transmission %q", c.Transmission)
	}

	switch c.Fuel {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelOther:
	default:
		return fmt.Errorf("invalid fuel %q", c.Fuel)
	}

	if c.OwnerEmail == "" {
		return fmt.Errorf("owner_email is required")
	}
	if c.Title == "" || c.Brand == "" || c.Model == "" {
		return fmt.Errorf("title, brand and model are required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}

	return nil
}
