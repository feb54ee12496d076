package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// A second pooled connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&paymentdomain.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func insertPayment(t *testing.T, db *gorm.DB, id int64, txnNo string, date time.Time, mutate func(*paymentdomain.Payment)) {
	t.Helper()
	p := paymentdomain.Payment{
		ID:            snowflake.ID(id),
		OwnerID:       42,
		UserID:        "NH001",
		TransactionNo: txnNo,
		Utility:       paymentdomain.UtilityCEB,
		AccountNo:     "1234567890",
		AccountName:   "John Doe",
		PhoneNo:       "+94771234567",
		Amount:        1000,
		ServiceCharge: 30,
		Status:        paymentdomain.StatusPending,
		Date:          date,
	}
	if mutate != nil {
		mutate(&p)
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("insert %s: %v", txnNo, err)
	}
}

func TestHighestTransactionNoPrefersNumericMax(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	highest, err := repo.HighestTransactionNo(ctx, db, 42)
	if err != nil {
		t.Fatalf("HighestTransactionNo: %v", err)
	}
	if highest != "" {
		t.Fatalf("expected empty for fresh owner, got %q", highest)
	}

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	// NHTR10000 is lexicographically smaller than NHTR9999 but numerically
	// larger; length-first ordering must pick it.
	insertPayment(t, db, 1, "NHTR9999", base, nil)
	insertPayment(t, db, 2, "NHTR10000", base.Add(time.Minute), nil)
	insertPayment(t, db, 3, "NHTR0007", base.Add(2*time.Minute), nil)

	highest, err = repo.HighestTransactionNo(ctx, db, 42)
	if err != nil {
		t.Fatalf("HighestTransactionNo: %v", err)
	}
	if highest != "NHTR10000" {
		t.Fatalf("expected NHTR10000, got %q", highest)
	}
}

func TestHighestTransactionNoScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	insertPayment(t, db, 1, "NHTR0005", base, nil)
	insertPayment(t, db, 2, "NHTR0099", base, func(p *paymentdomain.Payment) {
		p.OwnerID = 77
	})

	highest, err := repo.HighestTransactionNo(ctx, db, 42)
	if err != nil {
		t.Fatalf("HighestTransactionNo: %v", err)
	}
	if highest != "NHTR0005" {
		t.Fatalf("expected NHTR0005, got %q", highest)
	}
}

func TestFindLatestByPhoneUtilityScope(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	insertPayment(t, db, 1, "NHTR0001", base, func(p *paymentdomain.Payment) {
		p.Utility = paymentdomain.UtilityLECO
		p.AccountNo = "9999999999"
	})
	insertPayment(t, db, 2, "NHTR0002", base.Add(time.Hour), nil)

	hit, err := repo.FindLatestByPhone(ctx, db, 42, "+94771234567", "")
	if err != nil {
		t.Fatalf("FindLatestByPhone: %v", err)
	}
	if hit == nil || hit.TransactionNo != "NHTR0002" {
		t.Fatalf("expected latest NHTR0002, got %+v", hit)
	}

	hit, err = repo.FindLatestByPhone(ctx, db, 42, "+94771234567", paymentdomain.UtilityLECO)
	if err != nil {
		t.Fatalf("FindLatestByPhone: %v", err)
	}
	if hit == nil || hit.AccountNo != "9999999999" {
		t.Fatalf("expected LECO record, got %+v", hit)
	}

	hit, err = repo.FindLatestByPhone(ctx, db, 42, "+94770000000", "")
	if err != nil || hit != nil {
		t.Fatalf("expected no match, got %+v %v", hit, err)
	}
}

func TestMarkPaidOnlyFlipsPending(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	insertPayment(t, db, 1, "NHTR0001", base, nil)

	updated, err := repo.MarkPaid(ctx, db, 42, 1, "REF-100")
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if !updated {
		t.Fatal("expected first MarkPaid to update")
	}

	updated, err = repo.MarkPaid(ctx, db, 42, 1, "REF-200")
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if updated {
		t.Fatal("expected second MarkPaid to be a no-op")
	}

	hit, err := repo.FindByID(ctx, db, 42, 1)
	if err != nil || hit == nil {
		t.Fatalf("FindByID: %+v %v", hit, err)
	}
	if hit.Status != paymentdomain.StatusPaid || hit.ReferenceNo == nil || *hit.ReferenceNo != "REF-100" {
		t.Fatalf("unexpected record after mark paid: %+v", hit)
	}
}

func TestDeleteByCriteriaMonth(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	ctx := context.Background()

	for i, date := range []time.Time{
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local),
		time.Date(2026, 3, 31, 23, 0, 0, 0, time.Local),
		time.Date(2026, 4, 1, 0, 30, 0, 0, time.Local),
	} {
		insertPayment(t, db, int64(i+1), fmt.Sprintf("NHTR000%d", i+1), date, nil)
	}

	deleted, err := repo.DeleteByCriteria(ctx, db, 42, paymentdomain.DeleteCriteria{Month: "2026-03"})
	if err != nil {
		t.Fatalf("DeleteByCriteria: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	remaining, err := repo.ListByOwner(ctx, db, 42)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(remaining) != 1 || remaining[0].TransactionNo != "NHTR0003" {
		t.Fatalf("unexpected survivors: %+v", remaining)
	}

	if _, err := repo.DeleteByCriteria(ctx, db, 42, paymentdomain.DeleteCriteria{Month: "March"}); err != paymentdomain.ErrInvalidCriteria {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
}
