package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billpoint/internal/identifier"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide returns the gorm-backed payment repository.
func Provide() paymentdomain.Repository {
	return &repository{}
}

func (r *repository) ListByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) ([]paymentdomain.Payment, error) {
	var payments []paymentdomain.Payment
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID) (*paymentdomain.Payment, error) {
	var payment paymentdomain.Payment
	err := db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Take(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) FindLatestByPhone(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, phoneNo string, utility paymentdomain.Utility) (*paymentdomain.Payment, error) {
	query := db.WithContext(ctx).Where("owner_id = ? AND phone_no = ?", ownerID, phoneNo)
	if utility != "" {
		query = query.Where("utility = ?", utility)
	}
	var payment paymentdomain.Payment
	err := query.
		Order("date DESC").
		Take(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// HighestTransactionNo orders by length before text so NHTR10000 sorts above
// NHTR9999; with the fixed prefix and zero padding this is exactly the
// numeric maximum.
func (r *repository) HighestTransactionNo(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) (string, error) {
	var txn string
	err := db.WithContext(ctx).Raw(
		`SELECT transaction_no
		 FROM payments
		 WHERE owner_id = ? AND transaction_no LIKE ?
		 ORDER BY LENGTH(transaction_no) DESC, transaction_no DESC
		 LIMIT 1`,
		ownerID,
		identifier.TransactionNoPrefix+"%",
	).Scan(&txn).Error
	if err != nil {
		return "", err
	}
	return txn, nil
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, payment *paymentdomain.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *repository) MarkPaid(ctx context.Context, db *gorm.DB, ownerID, id snowflake.ID, referenceNo string) (bool, error) {
	result := db.WithContext(ctx).
		Model(&paymentdomain.Payment{}).
		Where("owner_id = ? AND id = ? AND status = ?", ownerID, id, paymentdomain.StatusPending).
		Updates(map[string]any{
			"status":       paymentdomain.StatusPaid,
			"reference_no": referenceNo,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) DeleteByCriteria(ctx context.Context, db *gorm.DB, ownerID snowflake.ID, criteria paymentdomain.DeleteCriteria) (int64, error) {
	query := db.WithContext(ctx).Where("owner_id = ?", ownerID)

	switch {
	case criteria.All:
	case criteria.Start != nil && criteria.End != nil:
		query = query.Where("date >= ? AND date <= ?", *criteria.Start, *criteria.End)
	case criteria.Month != "":
		start, err := time.ParseInLocation("2006-01", criteria.Month, time.Local)
		if err != nil {
			return 0, paymentdomain.ErrInvalidCriteria
		}
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	default:
		return 0, paymentdomain.ErrInvalidCriteria
	}

	result := query.Delete(&paymentdomain.Payment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
