package notify

import (
	notifydomain "github.com/smallbiznis/billpoint/internal/notify/domain"
	"github.com/smallbiznis/billpoint/internal/notify/sms"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("notify",
	fx.Provide(func(log *zap.Logger) notifydomain.Dispatcher {
		return sms.NewLoggingDispatcher(log)
	}),
)
