package sms

import (
	"context"
	"strings"

	notifydomain "github.com/smallbiznis/billpoint/internal/notify/domain"
	"go.uber.org/zap"
)

// LoggingDispatcher records the outbound intent without sending anything.
// It is the default channel; a gateway-backed dispatcher can replace it via
// the fx graph.
type LoggingDispatcher struct {
	log *zap.Logger
}

func NewLoggingDispatcher(log *zap.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{log: log.Named("notify.sms")}
}

func (d *LoggingDispatcher) Dispatch(ctx context.Context, msg notifydomain.Message) error {
	if strings.TrimSpace(msg.PhoneNo) == "" {
		return notifydomain.ErrEmptyPhone
	}
	if strings.TrimSpace(msg.Body) == "" {
		return notifydomain.ErrEmptyBody
	}
	d.log.Info("sms intent",
		zap.String("phone_no", msg.PhoneNo),
		zap.String("intent_url", IntentURL(msg.PhoneNo, msg.Body)),
	)
	return nil
}
