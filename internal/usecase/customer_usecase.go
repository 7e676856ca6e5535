package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
)

// emailPattern is deliberately loose: one @ with a dot after it, the
// same check the console forms apply.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// CustomerInput is a full record payload for create.
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// CustomerPatch is a merge patch for update: nil fields keep the stored
// value.
type CustomerPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Notes   *string
}

// ICustomerUseCase exposes the customers catalog.
//
// Validation lives here, not in the repository: the store itself never
// rejects a record.
type ICustomerUseCase interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICatalogRepository[entities.Customer]
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICatalogRepository[entities.Customer]) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	c := entities.Customer{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
		Notes:   in.Notes,
	}
	if err := validateCustomer(c); err != nil {
		return entities.Customer{}, err
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	if patch.Name != nil {
		existing.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		existing.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Email != nil {
		existing.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Address != nil {
		existing.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}
	if err := validateCustomer(existing); err != nil {
		return entities.Customer{}, err
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrCustomerNotFound
	}
	return nil
}

func validateCustomer(c entities.Customer) error {
	if c.Name == "" {
		return ErrCustomerNameRequired
	}
	// E-mail is optional; validate shape only when present.
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return ErrInvalidCustomerEmail
	}
	return nil
}
