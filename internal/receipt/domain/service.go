package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// Render returns the printable HTML receipt for a payment, laid out per
	// the shop's configured print size. Rendering never mutates the payment;
	// reprints are always safe.
	Render(ctx context.Context, ownerID, paymentID snowflake.ID) (string, error)
}

var ErrRenderFailed = errors.New("render_failed")
