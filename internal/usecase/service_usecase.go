package usecase

import (
	"context"
	"errors"
	"strings"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrServiceNameRequired = errors.New("service name is required")
	ErrInvalidServicePrice = errors.New("invalid service price")
)

type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	Notes       string
}

type ServicePatch struct {
	Name        *string
	Description *string
	Price       *float64
	Notes       *string
}

// IServiceUseCase exposes the services catalog. A service price may be
// zero (courtesy work) but never negative.
type IServiceUseCase interface {
	List(ctx context.Context) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	Update(ctx context.Context, id string, patch ServicePatch) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo interfaces.ICatalogRepository[entities.Service]
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.ICatalogRepository[entities.Service]) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	s := entities.Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Notes:       in.Notes,
	}
	if err := validateService(s); err != nil {
		return entities.Service{}, err
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, patch ServicePatch) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if existing.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	if patch.Name != nil {
		existing.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}
	if err := validateService(existing); err != nil {
		return entities.Service{}, err
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrServiceNotFound
	}
	return nil
}

func validateService(s entities.Service) error {
	if s.Name == "" {
		return ErrServiceNameRequired
	}
	if s.Price < 0 {
		return ErrInvalidServicePrice
	}
	return nil
}
