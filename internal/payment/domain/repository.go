package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// ListByOwner returns the owner's payments most-recent-first.
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]Payment, error)
	FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*Payment, error)
	// FindLatestByPhone returns the newest payment for a phone number,
	// optionally narrowed to one utility. Nil when nothing matches.
	FindLatestByPhone(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, phoneNo string, utility Utility) (*Payment, error)
	// HighestTransactionNo returns the transaction number with the largest
	// numeric suffix for the owner, or "" when the owner has none. Must agree
	// with scanning every record and taking the max.
	HighestTransactionNo(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) (string, error)
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	// MarkPaid flips a Pending payment to Paid, returning false when the
	// payment is missing or already Paid.
	MarkPaid(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID, referenceNo string) (bool, error)
	DeleteByCriteria(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, criteria DeleteCriteria) (int64, error)
}
