// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type customerOnboardRequest struct {
	Email         string `json:"email" validate:"required,email"`
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
	AvatarURL     string `json:"avatar_url"`
	DriverLicense string `json:"driver_license"`
}

type ownerOnboardRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	AvatarURL   string `json:"avatar_url"`
	CompanyName string `json:"company_name"`
}

// accountResponse reports whether the call created the account ("created"),
// found it in place ("ok") or overwrote it ("updated"), alongside the stored
// profile.
type accountResponse struct {
	Status string       `json:"status"`
	User   *entity.User `json:"user"`
}

// Login handles the email login request. Unknown emails get a placeholder
// customer profile.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, created, err := h.uc.Login(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	if created {
		return response.Success(c, http.StatusCreated, accountResponse{Status: "created", User: user}, "Account created")
	}

	return response.Success(c, http.StatusOK, accountResponse{Status: "ok", User: user}, "Login successful")
}

// OnboardCustomer handles the customer profile submission.
func (h *AuthHandler) OnboardCustomer(c echo.Context) error {
	var req customerOnboardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, created, err := h.uc.OnboardCustomer(c.Request().Context(), usecase.CustomerOnboarding{
		Email:         req.Email,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Location:      req.Location,
		AvatarURL:     req.AvatarURL,
		DriverLicense: req.DriverLicense,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return onboardResponse(c, user, created, "Customer onboarded successfully")
}

// OnboardOwner handles the owner profile submission.
func (h *AuthHandler) OnboardOwner(c echo.Context) error {
	var req ownerOnboardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, created, err := h.uc.OnboardOwner(c.Request().Context(), usecase.OwnerOnboarding{
		Email:       req.Email,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Location:    req.Location,
		AvatarURL:   req.AvatarURL,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return onboardResponse(c, user, created, "Owner onboarded successfully")
}

// onboardResponse answers 201/created for a fresh account and 200/updated
// for an overwritten one.
func onboardResponse(c echo.Context, user *entity.User, created bool, message string) error {
	if created {
		return response.Success(c, http.StatusCreated, accountResponse{Status: "created", User: user}, message)
	}

	return response.Success(c, http.StatusOK, accountResponse{Status: "updated", User: user}, message)
}
