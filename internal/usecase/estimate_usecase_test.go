package usecase

import (
	"context"
	"errors"
	"testing"

	"oneflow/internal/adapter/persistence/repository"
	"oneflow/internal/domain/entities"
	mock_interfaces "oneflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimateFixture struct {
	uc        *EstimateUseCase
	customers *repository.MemoryCatalogRepository[entities.Customer]
	services  *repository.MemoryCatalogRepository[entities.Service]
	products  *repository.MemoryCatalogRepository[entities.Product]
}

func newEstimateFixture() estimateFixture {
	customers := repository.NewMemoryCatalogRepository[entities.Customer]()
	services := repository.NewMemoryCatalogRepository[entities.Service]()
	products := repository.NewMemoryCatalogRepository[entities.Product]()
	uc := NewEstimateUseCase(repository.NewMemoryEstimateRepository(), customers, services, products)
	return estimateFixture{uc: uc, customers: customers, services: services, products: products}
}

func (f estimateFixture) seedCustomer(t *testing.T, c entities.Customer) {
	t.Helper()
	if _, err := f.customers.Create(context.Background(), c); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
}

func validDraft() EstimateDraft {
	return EstimateDraft{
		Date:       "2026-08-30",
		CustomerID: "cust-1",
		Items: []entities.LineItem{
			{Type: entities.LineItemTypeService, Name: "Install", Quantity: 2, UnitPrice: 100},
		},
	}
}

func TestEstimateUseCase_CreateValidation(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*EstimateDraft)
		wantErr error
	}{
		{name: "date required", mutate: func(d *EstimateDraft) { d.Date = "  " }, wantErr: ErrEstimateDateRequired},
		{name: "date format", mutate: func(d *EstimateDraft) { d.Date = "30/08/2026" }, wantErr: ErrInvalidEstimateDate},
		{name: "customer required", mutate: func(d *EstimateDraft) { d.CustomerID = "" }, wantErr: ErrEstimateCustomerRequired},
		{name: "items required", mutate: func(d *EstimateDraft) { d.Items = nil }, wantErr: ErrEstimateItemsRequired},
		{name: "item type", mutate: func(d *EstimateDraft) { d.Items[0].Type = "labor" }, wantErr: ErrInvalidLineItemType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newEstimateFixture()
			draft := validDraft()
			tc.mutate(&draft)

			_, err := f.uc.Create(ctx, draft)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			// A rejected draft must leave nothing behind.
			all, err := f.uc.List(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(all) != 0 {
				t.Fatalf("expected empty store, got %d estimates", len(all))
			}
		})
	}
}

func TestEstimateUseCase_CreateSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("fills snapshot from the customer record", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme", Email: "owner@acme.com", Phone: "555", Address: "Main St 1"})

		created, err := f.uc.Create(ctx, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Status != entities.EstimateStatusPending {
			t.Fatalf("unexpected estimate: %+v", created)
		}
		if created.CustomerName != "Acme" || created.CustomerEmail != "owner@acme.com" || created.CustomerPhone != "555" || created.CustomerAddress != "Main St 1" {
			t.Fatalf("snapshot not filled: %+v", created)
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Fatalf("expected timestamps")
		}
	})

	t.Run("draft snapshot fields win over the record", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme", Email: "owner@acme.com"})

		draft := validDraft()
		draft.CustomerName = "Acme Holdings"

		created, err := f.uc.Create(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CustomerName != "Acme Holdings" {
			t.Fatalf("expected draft name to win, got %q", created.CustomerName)
		}
		if created.CustomerEmail != "owner@acme.com" {
			t.Fatalf("expected email filled from record, got %q", created.CustomerEmail)
		}
	})

	t.Run("unknown customer without snapshot is rejected", func(t *testing.T) {
		f := newEstimateFixture()

		_, err := f.uc.Create(ctx, validDraft())
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("dangling customer id with a carried snapshot stays valid", func(t *testing.T) {
		f := newEstimateFixture()

		draft := validDraft()
		draft.CustomerName = "Former Client"

		created, err := f.uc.Create(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CustomerName != "Former Client" {
			t.Fatalf("unexpected snapshot: %+v", created)
		}
	})
}

func TestEstimateUseCase_ItemHydration(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh line copies name and price from the catalog", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme"})
		if _, err := f.services.Create(ctx, entities.Service{ID: "svc-1", Name: "Install", Price: 120}); err != nil {
			t.Fatalf("seed service: %v", err)
		}
		if _, err := f.products.Create(ctx, entities.Product{ID: "prd-1", Name: "Cable", Unit: "m", Price: 3.5}); err != nil {
			t.Fatalf("seed product: %v", err)
		}

		draft := validDraft()
		draft.Items = []entities.LineItem{
			{Type: entities.LineItemTypeService, RefID: "svc-1"},
			{Type: entities.LineItemTypeProduct, RefID: "prd-1", Quantity: 10},
		}

		created, err := f.uc.Create(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		svc := created.Items[0]
		if svc.Name != "Install" || svc.UnitPrice != 120 || svc.Quantity != 1 {
			t.Fatalf("unexpected service line: %+v", svc)
		}
		prd := created.Items[1]
		if prd.Name != "Cable" || prd.UnitPrice != 3.5 || prd.Quantity != 10 {
			t.Fatalf("unexpected product line: %+v", prd)
		}
		if created.Total() != 155 {
			t.Fatalf("expected total 155, got %v", created.Total())
		}
	})

	t.Run("edited line is kept as submitted", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme"})
		if _, err := f.services.Create(ctx, entities.Service{ID: "svc-1", Name: "Install", Price: 120}); err != nil {
			t.Fatalf("seed service: %v", err)
		}

		draft := validDraft()
		draft.Items = []entities.LineItem{
			{Type: entities.LineItemTypeService, RefID: "svc-1", Name: "Install (discounted)", Quantity: 1, UnitPrice: 90},
		}

		created, err := f.uc.Create(ctx, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Items[0].Name != "Install (discounted)" || created.Items[0].UnitPrice != 90 {
			t.Fatalf("line was rewritten: %+v", created.Items[0])
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps id, status and created at", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme"})

		created, err := f.uc.Create(ctx, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.Approve(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		draft := validDraft()
		draft.Notes = "revised"
		updated, err := f.uc.Update(ctx, created.ID, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != created.ID {
			t.Fatalf("id changed: %s -> %s", created.ID, updated.ID)
		}
		if updated.Status != entities.EstimateStatusApproved {
			t.Fatalf("editing must not reset approval, got %s", updated.Status)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Fatalf("created at changed")
		}
		if updated.Notes != "revised" {
			t.Fatalf("unexpected notes: %q", updated.Notes)
		}
	})

	t.Run("snapshot survives customer deletion", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme", Email: "owner@acme.com"})

		created, err := f.uc.Create(ctx, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.customers.Delete(ctx, "cust-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Resubmitting the stored document must still save: the snapshot
		// carries the customer data the catalog no longer has.
		draft := validDraft()
		draft.CustomerName = created.CustomerName
		draft.CustomerEmail = created.CustomerEmail

		updated, err := f.uc.Update(ctx, created.ID, draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CustomerName != "Acme" || updated.CustomerEmail != "owner@acme.com" {
			t.Fatalf("snapshot lost: %+v", updated)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme"})

		_, err := f.uc.Update(ctx, "ghost", validDraft())
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		f := newEstimateFixture()
		_, err := f.uc.Approve(ctx, "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newEstimateFixture()
		_, err := f.uc.Approve(ctx, "ghost")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("approve is idempotent", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme"})

		created, err := f.uc.Create(ctx, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first, err := f.uc.Approve(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.uc.Approve(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Status != entities.EstimateStatusApproved || second.Status != entities.EstimateStatusApproved {
			t.Fatalf("expected Approved twice, got %s / %s", first.Status, second.Status)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "est-1", entities.EstimateStatusApproved).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.Approve(ctx, "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete removes the document", func(t *testing.T) {
		f := newEstimateFixture()
		f.seedCustomer(t, entities.Customer{ID: "cust-1", Name: "Acme"})

		created, err := f.uc.Create(ctx, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.uc.Delete(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.GetByID(ctx, created.ID); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(false, errors.New("db"))

		if err := uc.Delete(ctx, "est-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
