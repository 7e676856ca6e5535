package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound         = errors.New("estimate not found")
	ErrInvalidEstimateID        = errors.New("invalid estimate id")
	ErrEstimateDateRequired     = errors.New("estimate date is required")
	ErrInvalidEstimateDate      = errors.New("invalid estimate date")
	ErrEstimateCustomerRequired = errors.New("estimate customer is required")
	ErrEstimateItemsRequired    = errors.New("estimate needs at least one item")
	ErrInvalidLineItemType      = errors.New("invalid line item type")
)

// estimateDateLayout matches the console's day-granular date input.
const estimateDateLayout = "2006-01-02"

// EstimateDraft is the full document a save submits. Create and Update
// take the same shape: the editor always resubmits the whole draft.
type EstimateDraft struct {
	EstimateNumber  string
	Date            string
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Notes           string
	Items           []entities.LineItem
}

// IEstimateUseCase exposes the estimate document operations.
//
// Saving hydrates two kinds of denormalized copies:
//   - the customer snapshot, taken from the customers catalog when the
//     draft does not already carry one;
//   - line-item name/price, taken from the referenced Service/Product
//     when the line was just added and carries neither.
type IEstimateUseCase interface {
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Create(ctx context.Context, draft EstimateDraft) (entities.Estimate, error)
	Update(ctx context.Context, id string, draft EstimateDraft) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo         interfaces.IEstimateRepository
	customerRepo interfaces.ICatalogRepository[entities.Customer]
	serviceRepo  interfaces.ICatalogRepository[entities.Service]
	productRepo  interfaces.ICatalogRepository[entities.Product]
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	customerRepo interfaces.ICatalogRepository[entities.Customer],
	serviceRepo interfaces.ICatalogRepository[entities.Service],
	productRepo interfaces.ICatalogRepository[entities.Product],
) *EstimateUseCase {
	return &EstimateUseCase{
		repo:         repo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		productRepo:  productRepo,
	}
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) Create(ctx context.Context, draft EstimateDraft) (entities.Estimate, error) {
	if err := validateDraft(draft); err != nil {
		return entities.Estimate{}, err
	}

	e, err := u.hydrateDraft(ctx, draft)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.Status = entities.EstimateStatusPending
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) Update(ctx context.Context, id string, draft EstimateDraft) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if err := validateDraft(draft); err != nil {
		return entities.Estimate{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if existing.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	e, err := u.hydrateDraft(ctx, draft)
	if err != nil {
		return entities.Estimate{}, err
	}

	// Editing never changes the approval state; that goes through
	// Approve only.
	e.ID = existing.ID
	e.Status = existing.Status
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateNotFound
	}
	return nil
}

// Approve moves the estimate to Approved. The transition is one-way and
// idempotent: approving an approved estimate re-sets the same value.
func (u *EstimateUseCase) Approve(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.EstimateStatusApproved)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func validateDraft(draft EstimateDraft) error {
	date := strings.TrimSpace(draft.Date)
	if date == "" {
		return ErrEstimateDateRequired
	}
	if _, err := time.Parse(estimateDateLayout, date); err != nil {
		return ErrInvalidEstimateDate
	}
	if strings.TrimSpace(draft.CustomerID) == "" {
		return ErrEstimateCustomerRequired
	}
	if len(draft.Items) == 0 {
		return ErrEstimateItemsRequired
	}
	for _, it := range draft.Items {
		switch it.Type {
		case entities.LineItemTypeService, entities.LineItemTypeProduct:
		default:
			return ErrInvalidLineItemType
		}
	}
	return nil
}

// hydrateDraft turns a validated draft into the persisted document,
// filling in the denormalized copies.
func (u *EstimateUseCase) hydrateDraft(ctx context.Context, draft EstimateDraft) (entities.Estimate, error) {
	e := entities.Estimate{
		EstimateNumber:  strings.TrimSpace(draft.EstimateNumber),
		Date:            strings.TrimSpace(draft.Date),
		CustomerID:      strings.TrimSpace(draft.CustomerID),
		CustomerName:    strings.TrimSpace(draft.CustomerName),
		CustomerEmail:   strings.TrimSpace(draft.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(draft.CustomerPhone),
		CustomerAddress: strings.TrimSpace(draft.CustomerAddress),
		Notes:           draft.Notes,
	}

	// Snapshot fields supplied by the draft win; anything missing is
	// copied from the customer record while it still exists. A dangling
	// CustomerID with a carried snapshot stays valid: the snapshot
	// outlives the catalog record.
	cust, err := u.customerRepo.GetByID(ctx, e.CustomerID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if cust.ID != "" {
		if e.CustomerName == "" {
			e.CustomerName = cust.Name
		}
		if e.CustomerEmail == "" {
			e.CustomerEmail = cust.Email
		}
		if e.CustomerPhone == "" {
			e.CustomerPhone = cust.Phone
		}
		if e.CustomerAddress == "" {
			e.CustomerAddress = cust.Address
		}
	} else if e.CustomerName == "" {
		return entities.Estimate{}, ErrCustomerNotFound
	}

	e.Items = make([]entities.LineItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		hydrated, err := u.hydrateItem(ctx, it)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.Items = append(e.Items, hydrated)
	}
	return e, nil
}

// hydrateItem applies the add-time copy: a freshly added line carries
// only a reference, so name and unit price come from the catalog. Lines
// that already carry their own values are kept as edited.
func (u *EstimateUseCase) hydrateItem(ctx context.Context, it entities.LineItem) (entities.LineItem, error) {
	if it.Quantity <= 0 {
		it.Quantity = 1
	}
	if it.UnitPrice < 0 {
		it.UnitPrice = 0
	}
	if it.Name != "" || it.RefID == "" {
		return it, nil
	}

	switch it.Type {
	case entities.LineItemTypeService:
		s, err := u.serviceRepo.GetByID(ctx, it.RefID)
		if err != nil {
			return entities.LineItem{}, err
		}
		if s.ID != "" {
			it.Name = s.Name
			if it.UnitPrice == 0 {
				it.UnitPrice = s.Price
			}
		}
	case entities.LineItemTypeProduct:
		p, err := u.productRepo.GetByID(ctx, it.RefID)
		if err != nil {
			return entities.LineItem{}, err
		}
		if p.ID != "" {
			it.Name = p.Name
			if it.UnitPrice == 0 {
				it.UnitPrice = p.Price
			}
		}
	}
	return it, nil
}
