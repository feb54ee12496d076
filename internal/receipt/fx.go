package receipt

import (
	"github.com/smallbiznis/billpoint/internal/receipt/render"
	"github.com/smallbiznis/billpoint/internal/receipt/service"
	"go.uber.org/fx"
)

var Module = fx.Module("receipt.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(service.NewService),
)
