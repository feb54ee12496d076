package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// Load returns the owner's settings, falling back to Defaults when
	// nothing is stored or the stored blob is unreadable.
	Load(ctx context.Context, ownerID snowflake.ID) (Settings, error)
	// Save validates and replaces the owner's settings blob.
	Save(ctx context.Context, ownerID snowflake.ID, settings Settings) error
}

var (
	ErrInvalidOwner     = errors.New("invalid_owner")
	ErrInvalidPrintSize = errors.New("invalid_print_size")
	ErrInvalidRule      = errors.New("invalid_service_charge_rule")
)
