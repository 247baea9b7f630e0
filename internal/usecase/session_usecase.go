// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	BusinessName    string `json:"businessName"`
	FarmSize        string `json:"farmSize"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordStrength is the meter shown while typing a new password.
type PasswordStrength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// SessionUsecase defines the interface for account and session operations.
type SessionUsecase interface {
	// Register creates the account and logs it in.
	Register(ctx context.Context, input *RegisterInput) (*entity.Session, error)

	// Login checks the credentials and stores the current user.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Logout removes the current user.
	Logout(ctx context.Context) error

	// Current returns the active session or domainerrors.ErrNotLoggedIn.
	Current(ctx context.Context) (*entity.Session, error)

	PasswordStrength(password string) PasswordStrength
}
