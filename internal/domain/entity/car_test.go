package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCar() *Car {
	return &Car{
		OwnerEmail: "owner@example.com",
		Title:      "Family sedan",
		Brand:      "Toyota",
		Model:      "Corolla",
		Year:       2021,
		Location:   "Berlin",
		ForRent:    true,
	}
}

func TestCar_ApplyDefaults(t *testing.T) {
	car := validCar()
	car.ApplyDefaults()

	assert.Equal(t, CarTypeSedan, car.CarType)
	assert.Equal(t, TransmissionAutomatic, car.Transmission)
	assert.Equal(t, FuelPetrol, car.Fuel)
	assert.NotNil(t, car.Images)
	assert.Empty(t, car.Images)
}

func TestCar_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	car := validCar()
	car.CarType = CarTypeSUV
	car.Transmission = TransmissionManual
	car.Fuel = FuelDiesel
	car.Images = []string{"a.jpg"}
	car.ApplyDefaults()

	assert.Equal(t, CarTypeSUV, car.CarType)
	assert.Equal(t, TransmissionManual, car.Transmission)
	assert.Equal(t, FuelDiesel, car.Fuel)
	assert.Equal(t, []string{"a.jpg"}, car.Images)
}

func TestCar_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Car)
		wantErr string
	}{
		{
			name:   "valid for rent",
			mutate: func(c *Car) {},
		},
		{
			name: "valid for sale only",
			mutate: func(c *Car) {
				c.ForRent = false
				c.ForSale = true
			},
		},
		{
			name: "neither for rent nor for sale",
			mutate: func(c *Car) {
				c.ForRent = false
				c.ForSale = false
			},
			wantErr: "for sale or for rent",
		},
		{
			name:    "bad car type",
			mutate:  func(c *Car) { c.CarType = "spaceship" },
			wantErr: "invalid car_type",
		},
		{
			name:    "bad transmission",
			mutate:  func(c *Car) { c.Transmission = "cvt-ish" },
			wantErr: "invalid transmission",
		},
		{
			name:    "bad fuel",
			mutate:  func(c *Car) { c.Fuel = "steam" },
			wantErr: "invalid fuel",
		},
		{
			name:    "missing owner email",
			mutate:  func(c *Car) { c.OwnerEmail = "" },
			wantErr: "owner_email is required",
		},
		{
			name:    "missing title",
			mutate:  func(c *Car) { c.Title = "" },
			wantErr: "title, brand and model are required",
		},
		{
			name:    "missing location",
			mutate:  func(c *Car) { c.Location = "" },
			wantErr: "location is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := validCar()
			car.ApplyDefaults()
			tt.mutate(car)

			err := car.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransaction_ApplyDefaults(t *testing.T) {
	txn := &Transaction{OrderID: "o1", CustomerEmail: "c@example.com", OwnerEmail: "o@example.com"}
	txn.ApplyDefaults()

	assert.Equal(t, "USD", txn.Currency)
	assert.Equal(t, TransactionDebit, txn.Type)
	assert.NoError(t, txn.Validate())
}

func TestOrder_DefaultsAndValidate(t *testing.T) {
	order := &Order{
		OrderType:     OrderTypeRent,
		CarID:         "car1",
		CustomerEmail: "c@example.com",
		OwnerEmail:    "o@example.com",
	}
	order.ApplyDefaults()

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.NoError(t, order.Validate())

	order.OrderType = "lease"
	assert.Error(t, order.Validate())
}
