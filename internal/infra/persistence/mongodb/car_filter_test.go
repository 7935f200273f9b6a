package mongodb

import (
	"testing"

	"carmarket/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildCarFilter_Empty(t *testing.T) {
	flt := buildCarFilter(repository.CarFilter{})

	assert.Empty(t, flt)
}

func TestBuildCarFilter_QueryMatchesTitleBrandModel(t *testing.T) {
	flt := buildCarFilter(repository.CarFilter{Query: "corolla"})

	or, ok := flt["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	fields := make([]string, 0, 3)
	for _, clause := range or {
		m := clause.(bson.M)
		require.Len(t, m, 1)
		for field, v := range m {
			fields = append(fields, field)
			rx := v.(primitive.Regex)
			assert.Equal(t, "corolla", rx.Pattern)
			assert.Equal(t, "i", rx.Options)
		}
	}
	assert.ElementsMatch(t, []string{"title", "brand", "model"}, fields)
}

func TestBuildCarFilter_QueryIsEscaped(t *testing.T) {
	flt := buildCarFilter(repository.CarFilter{Query: "c.r+"})

	or := flt["$or"].(bson.A)
	rx := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `c\.r\+`, rx.Pattern)
}

func TestBuildCarFilter_LocationAndType(t *testing.T) {
	flt := buildCarFilter(repository.CarFilter{Location: "Berlin", CarType: "suv"})

	rx, ok := flt["location"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "Berlin", rx.Pattern)
	assert.Equal(t, "suv", flt["car_type"])
}

func TestBuildCarFilter_RentModePriceRange(t *testing.T) {
	minP, maxP := 10.0, 50.0
	flt := buildCarFilter(repository.CarFilter{
		MinPrice: &minP,
		MaxPrice: &maxP,
		Mode:     repository.ModeRent,
	})

	rng, ok := flt["price_per_day"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 10.0, rng["$gte"])
	assert.Equal(t, 50.0, rng["$lte"])
	assert.Equal(t, true, flt["for_rent"])
	assert.NotContains(t, flt, "sale_price")
	assert.NotContains(t, flt, "for_sale")
}

func TestBuildCarFilter_SaleModePriceRange(t *testing.T) {
	minP := 5000.0
	flt := buildCarFilter(repository.CarFilter{
		MinPrice: &minP,
		Mode:     repository.ModeSale,
	})

	rng, ok := flt["sale_price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 5000.0, rng["$gte"])
	assert.NotContains(t, rng, "$lte")
	assert.Equal(t, true, flt["for_sale"])
	assert.NotContains(t, flt, "price_per_day")
}

func TestBuildCarFilter_NoModeDefaultsToDailyPriceWithoutFlag(t *testing.T) {
	maxP := 99.0
	flt := buildCarFilter(repository.CarFilter{MaxPrice: &maxP})

	assert.Contains(t, flt, "price_per_day")
	assert.NotContains(t, flt, "for_rent")
	assert.NotContains(t, flt, "for_sale")
}
