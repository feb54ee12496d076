package domain

import (
	"context"
	"errors"
)

// Message is one outbound SMS intent.
type Message struct {
	PhoneNo string
	Body    string
}

// Dispatcher hands a message to a delivery channel. Dispatch is best-effort;
// callers must never roll back confirmed work when it fails.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}

var (
	ErrEmptyPhone = errors.New("empty_phone")
	ErrEmptyBody  = errors.New("empty_body")
)
