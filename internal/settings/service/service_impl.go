package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billpoint/internal/cache"
	"github.com/smallbiznis/billpoint/internal/charge"
	"github.com/smallbiznis/billpoint/internal/kvstore"
	settingsdomain "github.com/smallbiznis/billpoint/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	settingsKey = "settings"
	cacheTTL    = 30 * time.Second
)

type Params struct {
	fx.In

	Log *zap.Logger
	KV  kvstore.Store
}

type Service struct {
	log   *zap.Logger
	kv    kvstore.Store
	cache *cache.TTLCache[snowflake.ID, settingsdomain.Settings]
}

func NewService(p Params) settingsdomain.Service {
	return &Service{
		log:   p.Log.Named("settings.service"),
		kv:    p.KV,
		cache: cache.NewTTLCache[snowflake.ID, settingsdomain.Settings](),
	}
}

func (s *Service) Load(ctx context.Context, ownerID snowflake.ID) (settingsdomain.Settings, error) {
	if ownerID == 0 {
		return settingsdomain.Settings{}, settingsdomain.ErrInvalidOwner
	}
	if cached, ok := s.cache.Get(ownerID); ok {
		return cached, nil
	}

	blob, found, err := s.kv.Get(ctx, ownerID, settingsKey)
	if err != nil {
		return settingsdomain.Settings{}, err
	}
	if !found {
		return settingsdomain.Defaults(), nil
	}

	loaded := settingsdomain.Decode([]byte(blob))
	s.cache.Set(ownerID, loaded, cacheTTL)
	return loaded, nil
}

func (s *Service) Save(ctx context.Context, ownerID snowflake.ID, settings settingsdomain.Settings) error {
	if ownerID == 0 {
		return settingsdomain.ErrInvalidOwner
	}
	if settings.PrintSize != settingsdomain.PrintSizeA5 && settings.PrintSize != settingsdomain.PrintSize80mm {
		return settingsdomain.ErrInvalidPrintSize
	}
	for _, rule := range settings.ServiceCharges {
		if rule.Type != charge.RuleTypeFixed && rule.Type != charge.RuleTypePercentage {
			return settingsdomain.ErrInvalidRule
		}
		if rule.Min < 0 || rule.Value < 0 {
			return settingsdomain.ErrInvalidRule
		}
		if rule.Max != nil && *rule.Max < rule.Min {
			return settingsdomain.ErrInvalidRule
		}
	}

	blob, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, ownerID, settingsKey, string(blob)); err != nil {
		return err
	}
	s.cache.Delete(ownerID)
	s.log.Info("settings saved", zap.String("owner_id", ownerID.String()))
	return nil
}
