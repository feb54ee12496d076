package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	receiptdomain "github.com/smallbiznis/billpoint/internal/receipt/domain"
	"github.com/smallbiznis/billpoint/internal/receipt/render"
	settingsdomain "github.com/smallbiznis/billpoint/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	PaymentSvc  paymentdomain.Service
	SettingsSvc settingsdomain.Service
	Renderer    render.Renderer
}

type Service struct {
	log         *zap.Logger
	paymentSvc  paymentdomain.Service
	settingsSvc settingsdomain.Service
	renderer    render.Renderer
}

func NewService(p Params) receiptdomain.Service {
	return &Service{
		log:         p.Log.Named("receipt.service"),
		paymentSvc:  p.PaymentSvc,
		settingsSvc: p.SettingsSvc,
		renderer:    p.Renderer,
	}
}

func (s *Service) Render(ctx context.Context, ownerID, paymentID snowflake.ID) (string, error) {
	payment, err := s.paymentSvc.Get(ctx, ownerID, paymentID)
	if err != nil {
		return "", err
	}
	cfg, err := s.settingsSvc.Load(ctx, ownerID)
	if err != nil {
		return "", err
	}

	html, err := s.renderer.RenderHTML(buildRenderInput(payment, cfg))
	if err != nil {
		s.log.Error("receipt render failed",
			zap.String("transaction_no", payment.TransactionNo),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", receiptdomain.ErrRenderFailed, err)
	}
	return html, nil
}

func buildRenderInput(payment paymentdomain.Payment, cfg settingsdomain.Settings) render.RenderInput {
	view := render.PaymentView{
		TransactionNo: payment.TransactionNo,
		UserID:        payment.UserID,
		Utility:       string(payment.Utility),
		AccountNo:     payment.AccountNo,
		AccountName:   payment.AccountName,
		PhoneNo:       payment.PhoneNo,
		Amount:        payment.Amount,
		ServiceCharge: payment.ServiceCharge,
		TotalDue:      payment.TotalDue(),
		PaidAmount:    payment.PaidAmount,
		Balance:       payment.Balance(),
		Status:        string(payment.Status),
		Date:          payment.Date,
	}
	if payment.ReferenceNo != nil {
		view.ReferenceNo = *payment.ReferenceNo
	}
	return render.RenderInput{
		Shop: render.ShopView{
			LogoURL:  cfg.ShopDetails.Logo,
			ShopName: cfg.ShopDetails.ShopName,
			Address:  cfg.ShopDetails.Address,
			PhoneNo:  cfg.ShopDetails.PhoneNo,
			Email:    cfg.ShopDetails.Email,
		},
		Payment: view,
		Size:    string(cfg.PrintSize),
	}
}
