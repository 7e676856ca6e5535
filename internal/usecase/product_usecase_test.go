package usecase

import (
	"context"
	"errors"
	"testing"

	"oneflow/internal/adapter/persistence/repository"
	"oneflow/internal/domain/entities"
)

func newProductUC() *ProductUseCase {
	return NewProductUseCase(repository.NewMemoryCatalogRepository[entities.Product]())
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		_, err := newProductUC().Create(ctx, ProductInput{Unit: "un", Price: 10})
		if !errors.Is(err, ErrProductNameRequired) {
			t.Fatalf("expected ErrProductNameRequired, got %v", err)
		}
	})

	t.Run("unit required", func(t *testing.T) {
		_, err := newProductUC().Create(ctx, ProductInput{Name: "Cable", Price: 10})
		if !errors.Is(err, ErrProductUnitRequired) {
			t.Fatalf("expected ErrProductUnitRequired, got %v", err)
		}
	})

	t.Run("price must be positive", func(t *testing.T) {
		_, err := newProductUC().Create(ctx, ProductInput{Name: "Cable", Unit: "m"})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		created, err := newProductUC().Create(ctx, ProductInput{Name: "Cable", Unit: "m", Price: 3.5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Unit != "m" {
			t.Fatalf("unexpected record: %+v", created)
		}
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("patch cannot zero the price", func(t *testing.T) {
		uc := newProductUC()
		created, err := uc.Create(ctx, ProductInput{Name: "Cable", Unit: "m", Price: 3.5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		price := 0.0
		_, err = uc.Update(ctx, created.ID, ProductPatch{Price: &price})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := newProductUC().Update(ctx, "ghost", ProductPatch{Name: strPtr("x")})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
