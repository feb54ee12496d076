package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	historydomain "github.com/smallbiznis/billpoint/internal/history/domain"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	PaymentSvc paymentdomain.Service
}

type Service struct {
	log        *zap.Logger
	paymentSvc paymentdomain.Service
}

func NewService(p Params) historydomain.Service {
	return &Service{
		log:        p.Log.Named("history.service"),
		paymentSvc: p.PaymentSvc,
	}
}

func (s *Service) Report(ctx context.Context, ownerID snowflake.ID, spec historydomain.FilterSpec) (historydomain.Report, error) {
	payments, err := s.paymentSvc.List(ctx, ownerID)
	if err != nil {
		return historydomain.Report{}, err
	}
	filtered := historydomain.Filter(payments, spec)
	return historydomain.Report{
		Days:   historydomain.GroupByDay(filtered),
		Months: historydomain.MonthlyTotals(filtered),
	}, nil
}
