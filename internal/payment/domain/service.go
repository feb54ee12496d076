package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// CreateDraftRequest assembles a previewable, unpersisted payment.
type CreateDraftRequest struct {
	OwnerID    snowflake.ID
	Utility    Utility
	Bill       Bill
	PaidAmount *float64
}

// DeleteCriteria selects payments for permanent removal. Exactly one of All,
// the date range, or Month must be set.
type DeleteCriteria struct {
	All   bool
	Start *time.Time
	End   *time.Time
	Month string // "YYYY-MM"
}

type Service interface {
	// CreateDraft resolves identifiers and the service charge for a bill and
	// returns the fully formed draft. Nothing is persisted.
	CreateDraft(ctx context.Context, req CreateDraftRequest) (Payment, error)
	// Confirm persists a draft, assigning the durable ID, and returns the
	// final record. The confirmed transaction number is authoritative; it may
	// advance past the draft's when a concurrent confirm got there first.
	Confirm(ctx context.Context, ownerID snowflake.ID, draft Payment) (Payment, error)
	// MarkPaid performs the single Pending->Paid transition.
	MarkPaid(ctx context.Context, ownerID, paymentID snowflake.ID, referenceNo string) (Payment, error)
	// Delete permanently removes matching payments, returning the count.
	Delete(ctx context.Context, ownerID snowflake.ID, criteria DeleteCriteria) (int64, error)
	List(ctx context.Context, ownerID snowflake.ID) ([]Payment, error)
	Get(ctx context.Context, ownerID, paymentID snowflake.ID) (Payment, error)
	// LookupCustomer returns the most recent payment for a phone number,
	// optionally scoped to one utility, used to prefill repeat-customer
	// details. Nil when the customer is new.
	LookupCustomer(ctx context.Context, ownerID snowflake.ID, phoneNo string, utility Utility) (*Payment, error)
}

var (
	ErrInvalidOwner       = errors.New("invalid_owner")
	ErrInvalidUtility     = errors.New("invalid_utility")
	ErrInvalidBill        = errors.New("invalid_bill")
	ErrInvalidDraft       = errors.New("invalid_draft")
	ErrInsufficientTender = errors.New("insufficient_tender")
	ErrPaymentNotFound    = errors.New("payment_not_found")
	ErrAlreadyPaid        = errors.New("already_paid")
	ErrMissingReference   = errors.New("missing_reference")
	ErrInvalidCriteria    = errors.New("invalid_criteria")
)
