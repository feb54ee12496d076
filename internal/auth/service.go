package auth

import (
	"context"
	"errors"
)

type Service interface {
	// Login verifies credentials and issues a bearer session.
	Login(ctx context.Context, username, password string) (Session, Operator, error)
	// Logout revokes a session. Unknown tokens are not an error.
	Logout(ctx context.Context, token string) error
	// Resolve returns the operator behind a live session token.
	Resolve(ctx context.Context, token string) (Operator, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrSessionNotFound    = errors.New("session_not_found")
	ErrSessionExpired     = errors.New("session_expired")
)
