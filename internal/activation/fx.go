package activation

import (
	"github.com/smallbiznis/billpoint/internal/activation/fingerprint"
	"github.com/smallbiznis/billpoint/internal/activation/service"
	"go.uber.org/fx"
)

var Module = fx.Module("activation.service",
	fx.Provide(fingerprint.NewHostProvider),
	fx.Provide(service.NewService),
)
