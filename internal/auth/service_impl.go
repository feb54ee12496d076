package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/smallbiznis/billpoint/internal/clock"
	"github.com/smallbiznis/billpoint/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Config config.Config
	Clock  clock.Clock
}

type service struct {
	db    *gorm.DB
	log   *zap.Logger
	ttl   time.Duration
	clock clock.Clock
}

func NewService(p Params) Service {
	ttlHours := p.Config.Session.TTLHours
	if ttlHours <= 0 {
		ttlHours = 12
	}
	return &service{
		db:    p.DB,
		log:   p.Log.Named("auth.service"),
		ttl:   time.Duration(ttlHours) * time.Hour,
		clock: p.Clock,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (Session, Operator, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, Operator{}, ErrInvalidCredentials
	}

	var operator Operator
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&operator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, Operator{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, Operator{}, err
	}
	if !VerifyPassword(password, operator.PasswordHash) {
		s.log.Info("login rejected", zap.String("username", username))
		return Session{}, Operator{}, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return Session{}, Operator{}, err
	}
	session := Session{
		Token:      token,
		OperatorID: operator.ID,
		OwnerID:    operator.OwnerID,
		ExpiresAt:  s.clock.Now().Add(s.ttl),
		CreatedAt:  s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return Session{}, Operator{}, err
	}
	return session, operator, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&Session{}).Error
}

func (s *service) Resolve(ctx context.Context, token string) (Operator, error) {
	if strings.TrimSpace(token) == "" {
		return Operator{}, ErrSessionNotFound
	}

	var session Session
	err := s.db.WithContext(ctx).
		Where("token = ?", token).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Operator{}, ErrSessionNotFound
	}
	if err != nil {
		return Operator{}, err
	}
	if !session.ExpiresAt.After(s.clock.Now()) {
		_ = s.db.WithContext(ctx).Where("token = ?", token).Delete(&Session{}).Error
		return Operator{}, ErrSessionExpired
	}

	var operator Operator
	err = s.db.WithContext(ctx).
		Where("id = ?", session.OperatorID).
		Take(&operator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Operator{}, ErrSessionNotFound
	}
	if err != nil {
		return Operator{}, err
	}
	return operator, nil
}

func newSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
