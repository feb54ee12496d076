package payment

import (
	"github.com/smallbiznis/billpoint/internal/payment/repository"
	"github.com/smallbiznis/billpoint/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
