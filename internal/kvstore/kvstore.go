package kvstore

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is an opaque per-owner key/value blob store. It backs the settings
// blob and the activation gate's durable timestamps.
type Store interface {
	Get(ctx context.Context, ownerID snowflake.ID, key string) (string, bool, error)
	Set(ctx context.Context, ownerID snowflake.ID, key, value string) error
	Delete(ctx context.Context, ownerID snowflake.ID, key string) error
}

var ErrInvalidKey = errors.New("invalid_key")

// Entry is one stored blob.
type Entry struct {
	OwnerID   snowflake.ID `gorm:"column:owner_id;primaryKey"`
	Key       string       `gorm:"column:key;primaryKey"`
	Value     string       `gorm:"column:value;not null"`
	UpdatedAt time.Time    `gorm:"column:updated_at"`
}

func (Entry) TableName() string { return "kv_entries" }

type gormStore struct {
	db *gorm.DB
}

// NewStore returns the gorm-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, ownerID snowflake.ID, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}
	var entry Entry
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND key = ?", ownerID, key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, ownerID snowflake.ID, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}
	entry := Entry{
		OwnerID:   ownerID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *gormStore) Delete(ctx context.Context, ownerID snowflake.ID, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return s.db.WithContext(ctx).
		Where("owner_id = ? AND key = ?", ownerID, key).
		Delete(&Entry{}).Error
}

var Module = fx.Module("kvstore",
	fx.Provide(NewStore),
)
