package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	activationdomain "github.com/smallbiznis/billpoint/internal/activation/domain"
	"github.com/smallbiznis/billpoint/internal/activation/fingerprint"
	"github.com/smallbiznis/billpoint/internal/clock"
	"github.com/smallbiznis/billpoint/internal/config"
	"github.com/smallbiznis/billpoint/internal/kvstore"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	trialStartKey = "activation.trial_start"
	codeKey       = "activation.code"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	Config      config.Config
	Clock       clock.Clock
	KV          kvstore.Store
	Fingerprint fingerprint.Provider
}

type Service struct {
	log         *zap.Logger
	trialDays   int
	codeSuffix  string
	clock       clock.Clock
	kv          kvstore.Store
	fingerprint fingerprint.Provider
}

func NewService(p Params) activationdomain.Service {
	trialDays := p.Config.Activation.TrialDays
	if trialDays <= 0 {
		trialDays = 20
	}
	return &Service{
		log:         p.Log.Named("activation.service"),
		trialDays:   trialDays,
		codeSuffix:  p.Config.Activation.CodeSuffix,
		clock:       p.Clock,
		kv:          p.KV,
		fingerprint: p.Fingerprint,
	}
}

// Status fails closed: any storage or fingerprint error reads as Expired so
// a tampered install never stays unlocked.
func (s *Service) Status(ctx context.Context, ownerID snowflake.ID) (activationdomain.Status, error) {
	if ownerID == 0 {
		return activationdomain.Status{State: activationdomain.StateExpired}, activationdomain.ErrInvalidOwner
	}

	fp, err := s.fingerprint.Fingerprint()
	if err != nil {
		s.log.Warn("fingerprint unavailable", zap.Error(err))
		return activationdomain.Status{State: activationdomain.StateExpired}, nil
	}
	status := activationdomain.Status{State: activationdomain.StateExpired, Fingerprint: fp}

	code, found, err := s.kv.Get(ctx, ownerID, codeKey)
	if err != nil {
		s.log.Warn("activation code read failed", zap.Error(err))
		return status, nil
	}
	if found && s.codeMatches(code, fp) {
		status.State = activationdomain.StateActivated
		return status, nil
	}

	start, err := s.trialStart(ctx, ownerID)
	if err != nil {
		s.log.Warn("trial start read failed", zap.Error(err))
		return status, nil
	}

	elapsedDays := int(s.clock.Now().Sub(start).Hours() / 24)
	remaining := s.trialDays - elapsedDays
	if remaining > 0 {
		status.State = activationdomain.StateTrial
		status.DaysRemaining = remaining
	}
	return status, nil
}

func (s *Service) Activate(ctx context.Context, ownerID snowflake.ID, code string) (activationdomain.Status, error) {
	if ownerID == 0 {
		return activationdomain.Status{State: activationdomain.StateExpired}, activationdomain.ErrInvalidOwner
	}

	fp, err := s.fingerprint.Fingerprint()
	if err != nil {
		return activationdomain.Status{State: activationdomain.StateExpired}, err
	}
	if !s.codeMatches(code, fp) {
		return activationdomain.Status{State: activationdomain.StateExpired, Fingerprint: fp}, activationdomain.ErrInvalidCode
	}
	if err := s.kv.Set(ctx, ownerID, codeKey, strings.TrimSpace(code)); err != nil {
		return activationdomain.Status{State: activationdomain.StateExpired, Fingerprint: fp}, err
	}

	s.log.Info("install activated", zap.String("owner_id", ownerID.String()))
	return activationdomain.Status{
		State:       activationdomain.StateActivated,
		Fingerprint: fp,
	}, nil
}

func (s *Service) codeMatches(code, fp string) bool {
	return strings.EqualFold(strings.TrimSpace(code), fp+s.codeSuffix)
}

// trialStart reads the persisted trial anchor, stamping it on first use so
// the countdown starts at first launch, not install time.
func (s *Service) trialStart(ctx context.Context, ownerID snowflake.ID) (time.Time, error) {
	value, found, err := s.kv.Get(ctx, ownerID, trialStartKey)
	if err != nil {
		return time.Time{}, err
	}
	if found {
		start, err := time.Parse(time.RFC3339, value)
		if err == nil {
			return start, nil
		}
		// A corrupt anchor restarts nothing; treat it as an expired trial.
		return time.Time{}, err
	}

	start := s.clock.Now().UTC()
	if err := s.kv.Set(ctx, ownerID, trialStartKey, start.Format(time.RFC3339)); err != nil {
		return time.Time{}, err
	}
	return start, nil
}
