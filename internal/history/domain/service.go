package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Report is a filtered view over the payment history with per-day groups and
// per-month rollups derived from the same filtered set.
type Report struct {
	Days   []DayGroup   `json:"days"`
	Months []MonthTotal `json:"months"`
}

type Service interface {
	// Report filters the owner's payment history and aggregates it.
	Report(ctx context.Context, ownerID snowflake.ID, spec FilterSpec) (Report, error)
}
