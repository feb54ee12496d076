package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// State is the gate's verdict for one shop install.
type State string

const (
	StateTrial     State = "trial"
	StateExpired   State = "expired"
	StateActivated State = "activated"
)

// Status is the evaluated gate result.
type Status struct {
	State         State  `json:"state"`
	DaysRemaining int    `json:"daysRemaining"`
	Fingerprint   string `json:"fingerprint"`
}

// Usable reports whether the install may keep taking payments.
func (s Status) Usable() bool {
	return s.State == StateTrial || s.State == StateActivated
}

type Service interface {
	// Status evaluates the gate. Evaluation errors fail closed to Expired.
	Status(ctx context.Context, ownerID snowflake.ID) (Status, error)
	// Activate records a valid activation code, unlocking the install.
	Activate(ctx context.Context, ownerID snowflake.ID, code string) (Status, error)
}

var (
	ErrInvalidOwner = errors.New("invalid_owner")
	ErrInvalidCode  = errors.New("invalid_activation_code")
)
