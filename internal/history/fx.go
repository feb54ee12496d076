package history

import (
	"github.com/smallbiznis/billpoint/internal/history/service"
	"go.uber.org/fx"
)

var Module = fx.Module("history.service",
	fx.Provide(service.NewService),
)
