package usecase

import (
	"context"

	"agrox/internal/domain/entity"
	"agrox/internal/domain/wizard"
)

// WizardView is what a client renders for one wizard state.
type WizardView struct {
	State   wizard.State   `json:"state"`
	Step    string         `json:"stepName"`
	Preview wizard.Preview `json:"preview"`
	Errors  []string       `json:"errors"`
}

// WizardUsecase drives the listing wizard over a client-held wizard.State.
type WizardUsecase interface {
	// Begin starts a wizard, pre-populated when a listing was marked for edit.
	// The edit mark is consumed.
	Begin(ctx context.Context, sess *entity.Session) (*WizardView, error)

	Validate(ctx context.Context, state wizard.State, step wizard.Step) ([]string, error)
	Next(ctx context.Context, state wizard.State) (*WizardView, error)
	Prev(ctx context.Context, state wizard.State) (*WizardView, error)
	Preview(ctx context.Context, state wizard.State) (*WizardView, error)

	// Submit stores the listing. Failed validation returns a
	// domainerrors.ErrValidationFailed carrying the ordered messages.
	Submit(ctx context.Context, sess *entity.Session, state wizard.State) (*entity.Listing, error)
}
