package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LocalAuthProvider is the single-tenant demo identity boundary: any
// credentials log in, and the fabricated identity is carried entirely
// inside a signed HS256 token so a later request (or process) can
// rebuild the session from the token alone.
//
// Swapping in a real identity service means replacing this type behind
// IAuthProvider; nothing else changes.
type LocalAuthProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

var _ interfaces.IAuthProvider = (*LocalAuthProvider)(nil)

func NewLocalAuthProvider(secret, issuer string, ttl time.Duration) *LocalAuthProvider {
	return &LocalAuthProvider{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// sessionClaims carries the full user snapshot so CurrentSession never
// needs a user store.
type sessionClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
}

func (p *LocalAuthProvider) Login(_ context.Context, email, _ string) (entities.Session, error) {
	user := entities.User{
		ID:       uuid.NewString(),
		Name:     "Demo User",
		Email:    email,
		TenantID: "tenant-demo-1",
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    p.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:     user.Name,
		Email:    user.Email,
		TenantID: user.TenantID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return entities.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return entities.Session{User: user, Token: signed}, nil
}

func (p *LocalAuthProvider) SignUp(_ context.Context, companyName, email, _ string) error {
	// Demo mode: accept the sign-up and pretend a confirmation e-mail
	// went out. The confirmation step below closes the loop.
	log.Printf("[auth] sign-up accepted company=%q email=%s (confirmation pending)", companyName, email)
	return nil
}

func (p *LocalAuthProvider) ConfirmEmail(_ context.Context, email, _ string) error {
	// Demo mode: any well-formed code confirms the address.
	log.Printf("[auth] e-mail confirmed email=%s", email)
	return nil
}

// CurrentSession rebuilds the session from a stored token. A malformed,
// forged, or expired token is "no session", never an error.
func (p *LocalAuthProvider) CurrentSession(_ context.Context, token string) (entities.Session, error) {
	if token == "" {
		return entities.Session{}, nil
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return entities.Session{}, nil
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.Issuer != p.issuer {
		return entities.Session{}, nil
	}

	return entities.Session{
		User: entities.User{
			ID:       claims.Subject,
			Name:     claims.Name,
			Email:    claims.Email,
			TenantID: claims.TenantID,
		},
		Token: token,
	}, nil
}

func (p *LocalAuthProvider) Logout(_ context.Context, _ string) error {
	// Tokens are stateless; the client discards its copy.
	return nil
}
