package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// FacilityInput is the storage facility form.
type FacilityInput struct {
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Price       float64  `json:"price" validate:"gt=0"`
	Location    string   `json:"location" validate:"required"`
	Capacity    *float64 `json:"capacity" validate:"omitnil,gt=0"`
	Temperature string   `json:"temperature"`
	Description string   `json:"description"`
}

// ServiceInput is the logistics service form.
type ServiceInput struct {
	Title       string   `json:"title" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Price       float64  `json:"price" validate:"gt=0"`
	Capacity    *float64 `json:"capacity" validate:"omitnil,gt=0"`
	From        string   `json:"from" validate:"required"`
	To          string   `json:"to" validate:"required"`
	Description string   `json:"description"`
}

// FacilityUsecase manages storage facilities. Writes require the storage role
// and ownership.
type FacilityUsecase interface {
	List(ctx context.Context) ([]*entity.Facility, error)
	ListMine(ctx context.Context, sess *entity.Session) ([]*entity.Facility, error)
	Get(ctx context.Context, id string) (*entity.Facility, error)
	Create(ctx context.Context, sess *entity.Session, input *FacilityInput) (*entity.Facility, error)
	Update(ctx context.Context, sess *entity.Session, id string, input *FacilityInput) (*entity.Facility, error)
	Delete(ctx context.Context, sess *entity.Session, id string) error
}

// ServiceUsecase manages logistics services. Writes require the logistics
// role and ownership.
type ServiceUsecase interface {
	List(ctx context.Context) ([]*entity.Service, error)
	ListMine(ctx context.Context, sess *entity.Session) ([]*entity.Service, error)
	Get(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, sess *entity.Session, input *ServiceInput) (*entity.Service, error)
	Update(ctx context.Context, sess *entity.Session, id string, input *ServiceInput) (*entity.Service, error)
	Delete(ctx context.Context, sess *entity.Session, id string) error
}
