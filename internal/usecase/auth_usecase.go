package usecase

import (
	"context"
	"errors"
	"strings"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"
)

var (
	ErrMissingCredentials      = errors.New("missing credentials")
	ErrMissingSignUpFields     = errors.New("missing sign-up fields")
	ErrInvalidSignUpEmail      = errors.New("invalid sign-up email")
	ErrPasswordMismatch        = errors.New("passwords do not match")
	ErrPasswordTooShort        = errors.New("password too short")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
)

// Password and code rules copied from the console's auth forms.
const (
	minPasswordLength      = 6
	confirmationCodeLength = 5
)

// IAuthUseCase validates the auth form fields and delegates the actual
// identity work to the provider.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	SignUp(ctx context.Context, companyName, email, password, confirmPassword string) error
	ConfirmEmail(ctx context.Context, email, code string) error
	CurrentSession(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	provider interfaces.IAuthProvider
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IAuthProvider) *AuthUseCase {
	return &AuthUseCase{provider: provider}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrMissingCredentials
	}
	return u.provider.Login(ctx, email, password)
}

func (u *AuthUseCase) SignUp(ctx context.Context, companyName, email, password, confirmPassword string) error {
	companyName = strings.TrimSpace(companyName)
	email = strings.TrimSpace(email)
	if companyName == "" || email == "" || password == "" || confirmPassword == "" {
		return ErrMissingSignUpFields
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidSignUpEmail
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return u.provider.SignUp(ctx, companyName, email, password)
}

func (u *AuthUseCase) ConfirmEmail(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || len(code) != confirmationCodeLength {
		return ErrInvalidConfirmationCode
	}
	return u.provider.ConfirmEmail(ctx, email, code)
}

func (u *AuthUseCase) CurrentSession(ctx context.Context, token string) (entities.Session, error) {
	return u.provider.CurrentSession(ctx, token)
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	return u.provider.Logout(ctx, token)
}
