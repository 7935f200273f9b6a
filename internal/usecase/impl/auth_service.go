// Package impl contains the concrete implementations of the usecase
// interfaces.
package impl

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"
)

// placeholderName is stored for accounts created implicitly at first login,
// before the user has onboarded.
const placeholderName = "New User"

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repository.UserRepository) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
	}
}

// Login resolves the account for an email. An unknown email gets a
// placeholder customer profile; the returned flag reports that creation.
func (s *authService) Login(ctx context.Context, email string) (*entity.User, bool, error) {
	if email == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	user = &entity.User{
		Role:     entity.RoleCustomer,
		FullName: placeholderName,
		Email:    email,
	}
	user.ApplyDefaults()

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// OnboardCustomer replaces the profile for the email with the submitted
// customer data.
func (s *authService) OnboardCustomer(ctx context.Context, input usecase.CustomerOnboarding) (*entity.User, bool, error) {
	user := &entity.User{
		Role:          entity.RoleCustomer,
		FullName:      input.FullName,
		Email:         input.Email,
		Phone:         input.Phone,
		Location:      input.Location,
		AvatarURL:     input.AvatarURL,
		DriverLicense: input.DriverLicense,
	}

	return s.onboard(ctx, user)
}

// OnboardOwner replaces the profile for the email with the submitted owner
// data.
func (s *authService) OnboardOwner(ctx context.Context, input usecase.OwnerOnboarding) (*entity.User, bool, error) {
	user := &entity.User{
		Role:        entity.RoleOwner,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Location:    input.Location,
		AvatarURL:   input.AvatarURL,
		CompanyName: input.CompanyName,
	}

	return s.onboard(ctx, user)
}

// onboard stores the profile as a wholesale overwrite: every field of the
// existing record is replaced, and onboarding again resets the verification
// review to pending. The returned flag reports whether the account was
// created rather than updated.
func (s *authService) onboard(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	user.ApplyDefaults()
	if err := user.Validate(); err != nil {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, err
		}

		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, false, err
		}

		return user, true, nil
	}

	user.ID = existing.ID
	if err := s.userRepo.Replace(ctx, user); err != nil {
		return nil, false, err
	}

	return user, false, nil
}
