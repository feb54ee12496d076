package auth

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role names map onto the authorization capability matrix.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Operator is a shop staff account that can sign in.
type Operator struct {
	ID           snowflake.ID `gorm:"column:id;primaryKey"`
	OwnerID      snowflake.ID `gorm:"column:owner_id;index"`
	Username     string       `gorm:"column:username;not null"`
	PasswordHash string       `gorm:"column:password_hash;not null"`
	Role         string       `gorm:"column:role;not null"`
	CreatedAt    time.Time    `gorm:"column:created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at"`
}

func (Operator) TableName() string { return "operators" }

// Session is a bearer token issued at login.
type Session struct {
	Token      string       `gorm:"column:token;primaryKey"`
	OperatorID snowflake.ID `gorm:"column:operator_id;not null"`
	OwnerID    snowflake.ID `gorm:"column:owner_id;not null"`
	ExpiresAt  time.Time    `gorm:"column:expires_at;not null"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
}

func (Session) TableName() string { return "sessions" }
