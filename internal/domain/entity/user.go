// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "fmt"

// Role classifies an account as a renting/buying customer or a listing owner.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// VerificationStatus tracks the outcome of the onboarding review.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// User is the core identity in the system. Email is the natural key: every
// lookup, onboarding overwrite, and reward ledger entry is keyed by it.
type User struct {
	ID                 string             `json:"id,omitempty"`
	Role               Role               `json:"role"`
	FullName           string             `json:"full_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone,omitempty"`
	Location           string             `json:"location,omitempty"`
	AvatarURL          string             `json:"avatar_url,omitempty"`
	DriverLicense      string             `json:"driver_license,omitempty"` // customers
	CompanyName        string             `json:"company_name,omitempty"`   // owners
	VerificationStatus VerificationStatus `json:"verification_status"`
}

// ApplyDefaults fills fields a request is allowed to omit.
func (u *User) ApplyDefaults() {
	if u.VerificationStatus == "" {
		u.VerificationStatus = VerificationPending
	}
}

// Validate checks the structural invariants of a user record.
func (u *User) Validate() error {
	switch u.Role {
	case RoleCustomer, RoleOwner:
	default:
		return fmt.Errorf("invalid role %q", u.Role)
	}

	switch u.VerificationStatus {
	case VerificationPending, VerificationVerified, VerificationRejected:
	default:
		return fmt.Errorf("invalid verification_status %q", u.VerificationStatus)
	}

	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.FullName == "" {
		return fmt.Errorf("full_name is required")
	}

	return nil
}
