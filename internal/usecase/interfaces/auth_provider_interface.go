package interfaces

import (
	"context"

	"oneflow/internal/domain/entities"
)

// IAuthProvider abstracts the identity boundary so the console never
// depends on how sessions are sourced.
//
// The local implementation fabricates identities (single-tenant demo
// mode); a real identity service can be swapped in without touching
// handlers or use cases.
//
// CurrentSession must treat a malformed or expired token as "no
// session" (zero Session, nil error), never as a failure.
type IAuthProvider interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	SignUp(ctx context.Context, companyName, email, password string) error
	ConfirmEmail(ctx context.Context, email, code string) error
	CurrentSession(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
}
