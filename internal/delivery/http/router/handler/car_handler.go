package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CarHandler holds dependencies for listing-related handlers.
type CarHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCarHandler is the constructor for CarHandler, injected by Fx.
func NewCarHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CarHandler {
	return &CarHandler{
		uc:     uc,
		logger: logger,
	}
}

// createCarRequest keeps the listing flags as pointers so an omitted flag is
// distinguishable from an explicit false. Defaults: for rent, not for sale,
// available.
type createCarRequest struct {
	OwnerEmail   string   `json:"owner_email" validate:"required,email"`
	Title        string   `json:"title" validate:"required"`
	Brand        string   `json:"brand" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int      `json:"year"`
	Images       []string `json:"images"`
	Location     string   `json:"location" validate:"required"`
	CarType      string   `json:"car_type"`
	Transmission string   `json:"transmission"`
	Fuel         string   `json:"fuel"`
	Mileage      *int     `json:"mileage"`
	Color        string   `json:"color"`
	ForRent      *bool    `json:"for_rent"`
	ForSale      *bool    `json:"for_sale"`
	PricePerDay  *float64 `json:"price_per_day"`
	SalePrice    *float64 `json:"sale_price"`
	Description  string   `json:"description"`
	Available    *bool    `json:"available"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}

// CreateCar handles the listing publication request.
func (h *CarHandler) CreateCar(c echo.Context) error {
	var req createCarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	car := &entity.Car{
		OwnerEmail:   req.OwnerEmail,
		Title:        req.Title,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Images:       req.Images,
		Location:     req.Location,
		CarType:      entity.CarType(req.CarType),
		Transmission: entity.Transmission(req.Transmission),
		Fuel:         entity.Fuel(req.Fuel),
		Mileage:      req.Mileage,
		Color:        req.Color,
		ForRent:      boolOr(req.ForRent, true),
		ForSale:      boolOr(req.ForSale, false),
		PricePerDay:  req.PricePerDay,
		SalePrice:    req.SalePrice,
		Description:  req.Description,
		Available:    boolOr(req.Available, true),
	}

	created, err := h.uc.CreateCar(c.Request().Context(), car)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Car listed successfully")
}

// SearchCars handles the listing search request.
func (h *CarHandler) SearchCars(c echo.Context) error {
	filter := repository.CarFilter{
		Query:    c.QueryParam("q"),
		Location: c.QueryParam("location"),
		CarType:  entity.CarType(c.QueryParam("car_type")),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "min_price must be a number")
		}
		filter.MinPrice = &v
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "max_price must be a number")
		}
		filter.MaxPrice = &v
	}

	switch mode := c.QueryParam("mode"); mode {
	case "", string(repository.ModeRent), string(repository.ModeSale):
		filter.Mode = repository.ListingMode(mode)
	default:
		return response.BadRequest(c, "INVALID_INPUT", "mode must be rent or sale")
	}

	cars, err := h.uc.SearchCars(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cars, "Cars retrieved successfully")
}

// GetCar handles the single listing request.
func (h *CarHandler) GetCar(c echo.Context) error {
	car, err := h.uc.GetCar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, car, "Car retrieved successfully")
}
