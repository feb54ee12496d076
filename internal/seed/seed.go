package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billpoint/internal/auth"
	"gorm.io/gorm"
)

// DefaultOwnerID scopes single-shop installs. Multi-shop deployments create
// additional owners out of band.
const DefaultOwnerID snowflake.ID = 1

const defaultAdminUsername = "admin"

// EnsureDefaultAdmin seeds the admin operator for a fresh install. Existing
// accounts are never touched, so a changed password survives restarts.
func EnsureDefaultAdmin(db *gorm.DB, node *snowflake.Node, password string) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if password == "" {
		password = "admin"
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var operator auth.Operator
		err := tx.WithContext(ctx).
			Where("owner_id = ? AND username = ?", DefaultOwnerID, defaultAdminUsername).
			First(&operator).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := auth.EncodePassword(password)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		operator = auth.Operator{
			ID:           node.Generate(),
			OwnerID:      DefaultOwnerID,
			Username:     defaultAdminUsername,
			PasswordHash: hashed,
			Role:         auth.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.WithContext(ctx).Create(&operator).Error
	})
}
