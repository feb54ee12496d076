package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestAuthorizeAllowsAdmin(t *testing.T) {
	db := setupAuthzTestDB(t)
	insertOperator(t, db, 1, 10, "admin")

	enforcer, err := NewEnforcer(db)
	if err != nil {
		t.Fatalf("new enforcer: %v", err)
	}
	svc := &ServiceImpl{
		db:       db,
		log:      zap.NewNop(),
		enforcer: enforcer,
	}

	if err := svc.Authorize(context.Background(), "operator:10", "1", ObjectSettings, ActionSettingsWrite); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if err := svc.Authorize(context.Background(), "operator:10", "1", ObjectHistory, ActionHistoryClear); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestAuthorizeDeniesOperatorCapability(t *testing.T) {
	db := setupAuthzTestDB(t)
	insertOperator(t, db, 1, 11, "operator")

	enforcer, err := NewEnforcer(db)
	if err != nil {
		t.Fatalf("new enforcer: %v", err)
	}
	svc := &ServiceImpl{
		db:       db,
		log:      zap.NewNop(),
		enforcer: enforcer,
	}

	if err := svc.Authorize(context.Background(), "operator:11", "1", ObjectPayment, ActionPaymentCreate); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	err = svc.Authorize(context.Background(), "operator:11", "1", ObjectSettings, ActionSettingsWrite)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	err = svc.Authorize(context.Background(), "operator:11", "1", ObjectHistory, ActionHistoryClear)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAuthorizeDeniesCrossOwner(t *testing.T) {
	db := setupAuthzTestDB(t)
	insertOperator(t, db, 1, 12, "admin")

	enforcer, err := NewEnforcer(db)
	if err != nil {
		t.Fatalf("new enforcer: %v", err)
	}
	svc := &ServiceImpl{
		db:       db,
		log:      zap.NewNop(),
		enforcer: enforcer,
	}

	err = svc.Authorize(context.Background(), "operator:12", "2", ObjectPayment, ActionPaymentView)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAuthorizeSystem(t *testing.T) {
	db := setupAuthzTestDB(t)

	enforcer, err := NewEnforcer(db)
	if err != nil {
		t.Fatalf("new enforcer: %v", err)
	}
	svc := &ServiceImpl{
		db:       db,
		log:      zap.NewNop(),
		enforcer: enforcer,
	}

	if err := svc.Authorize(context.Background(), "system", "3", ObjectHistory, ActionHistoryClear); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestAuthorizeRejectsMalformedActor(t *testing.T) {
	db := setupAuthzTestDB(t)

	enforcer, err := NewEnforcer(db)
	if err != nil {
		t.Fatalf("new enforcer: %v", err)
	}
	svc := &ServiceImpl{
		db:       db,
		log:      zap.NewNop(),
		enforcer: enforcer,
	}

	for _, actor := range []string{"", "operator:", "operator:abc", "user:10"} {
		err := svc.Authorize(context.Background(), actor, "1", ObjectPayment, ActionPaymentView)
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("actor %q: expected ErrInvalidActor, got %v", actor, err)
		}
	}
}

func setupAuthzTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS operators (
			id INTEGER PRIMARY KEY,
			owner_id BIGINT NOT NULL,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL
		)`,
	).Error; err != nil {
		t.Fatalf("create operators: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS casbin_rule (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ptype VARCHAR(100) NOT NULL,
			v0 VARCHAR(100),
			v1 VARCHAR(100),
			v2 VARCHAR(100),
			v3 VARCHAR(100),
			v4 VARCHAR(100),
			v5 VARCHAR(100)
		)`,
	).Error; err != nil {
		t.Fatalf("create casbin_rule: %v", err)
	}
	if err := db.Exec(`DELETE FROM operators`).Error; err != nil {
		t.Fatalf("reset operators: %v", err)
	}
	return db
}

func insertOperator(t *testing.T, db *gorm.DB, ownerID, operatorID int64, role string) {
	t.Helper()
	if err := db.Exec(
		`INSERT INTO operators (id, owner_id, username, password_hash, role)
		 VALUES (?, ?, ?, ?, ?)`,
		operatorID,
		ownerID,
		"op",
		"x",
		role,
	).Error; err != nil {
		t.Fatalf("insert operator: %v", err)
	}
}
