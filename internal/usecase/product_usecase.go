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
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductUnitRequired = errors.New("product unit is required")
	ErrInvalidProductPrice = errors.New("invalid product price")
)

type ProductInput struct {
	Name  string
	Unit  string
	Price float64
	Notes string
}

type ProductPatch struct {
	Name  *string
	Unit  *string
	Price *float64
	Notes *string
}

// IProductUseCase exposes the products catalog. Unlike services, a
// product price must be strictly positive.
type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.ICatalogRepository[entities.Product]
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.ICatalogRepository[entities.Product]) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	p := entities.Product{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(in.Name),
		Unit:  strings.TrimSpace(in.Unit),
		Price: in.Price,
		Notes: in.Notes,
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if patch.Name != nil {
		existing.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Unit != nil {
		existing.Unit = strings.TrimSpace(*patch.Unit)
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}
	if err := validateProduct(existing); err != nil {
		return entities.Product{}, err
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}

func validateProduct(p entities.Product) error {
	if p.Name == "" {
		return ErrProductNameRequired
	}
	if p.Unit == "" {
		return ErrProductUnitRequired
	}
	if p.Price <= 0 {
		return ErrInvalidProductPrice
	}
	return nil
}
