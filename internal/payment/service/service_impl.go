package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/billpoint/internal/charge"
	"github.com/smallbiznis/billpoint/internal/clock"
	"github.com/smallbiznis/billpoint/internal/identifier"
	notifydomain "github.com/smallbiznis/billpoint/internal/notify/domain"
	"github.com/smallbiznis/billpoint/internal/notify/sms"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	settingsdomain "github.com/smallbiznis/billpoint/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        paymentdomain.Repository
	SettingsSvc settingsdomain.Service
	Dispatcher  notifydomain.Dispatcher
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        paymentdomain.Repository
	settingsSvc settingsdomain.Service
	dispatcher  notifydomain.Dispatcher
}

func NewService(p Params) paymentdomain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("payment.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		settingsSvc: p.SettingsSvc,
		dispatcher:  p.Dispatcher,
	}
}

func (s *Service) CreateDraft(ctx context.Context, req paymentdomain.CreateDraftRequest) (paymentdomain.Payment, error) {
	if req.OwnerID == 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidOwner
	}
	utility, err := paymentdomain.ParseUtility(string(req.Utility))
	if err != nil {
		return paymentdomain.Payment{}, err
	}
	if errs := req.Bill.Validate(utility); len(errs) > 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidBill
	}

	cfg, err := s.settingsSvc.Load(ctx, req.OwnerID)
	if err != nil {
		return paymentdomain.Payment{}, err
	}

	existing, err := s.repo.ListByOwner(ctx, s.db, req.OwnerID)
	if err != nil {
		return paymentdomain.Payment{}, err
	}

	phoneNo := strings.TrimSpace(req.Bill.PhoneNo)
	userID := userIDByPhone(existing, phoneNo)
	if userID == "" {
		userID = identifier.NextCustomerID(userIDs(existing))
	}
	transactionNo := identifier.NextTransactionNo(transactionNos(existing))
	serviceCharge := charge.Calculate(req.Bill.Amount, cfg.ServiceCharges)

	draft := paymentdomain.Payment{
		OwnerID:       req.OwnerID,
		UserID:        userID,
		TransactionNo: transactionNo,
		Utility:       utility,
		AccountNo:     strings.TrimSpace(req.Bill.AccountNo),
		AccountName:   strings.TrimSpace(req.Bill.AccountName),
		PhoneNo:       phoneNo,
		Amount:        req.Bill.Amount,
		ServiceCharge: serviceCharge,
		Status:        paymentdomain.StatusPending,
		Date:          s.clock.Now(),
	}

	if cfg.ShowBalanceCalculator && req.PaidAmount != nil {
		if *req.PaidAmount < draft.TotalDue() {
			return paymentdomain.Payment{}, paymentdomain.ErrInsufficientTender
		}
		draft.PaidAmount = req.PaidAmount
	}

	return draft, nil
}

func (s *Service) Confirm(ctx context.Context, ownerID snowflake.ID, draft paymentdomain.Payment) (paymentdomain.Payment, error) {
	if ownerID == 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidOwner
	}
	if draft.OwnerID != ownerID || draft.Status != paymentdomain.StatusPending || draft.ReferenceNo != nil {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidDraft
	}
	utility, err := paymentdomain.ParseUtility(string(draft.Utility))
	if err != nil {
		return paymentdomain.Payment{}, err
	}
	bill := paymentdomain.Bill{
		AccountNo:   draft.AccountNo,
		Amount:      draft.Amount,
		AccountName: draft.AccountName,
		PhoneNo:     draft.PhoneNo,
	}
	if errs := bill.Validate(utility); len(errs) > 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidBill
	}
	// The draft round-trips through the client between CreateDraft and here,
	// so the tender check has to be repeated on what was posted back.
	if draft.PaidAmount != nil && *draft.PaidAmount < draft.TotalDue() {
		return paymentdomain.Payment{}, paymentdomain.ErrInsufficientTender
	}
	draftSeq, ok := identifier.Suffix(draft.TransactionNo, identifier.TransactionNoPrefix)
	if !ok || draftSeq <= 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidDraft
	}

	final := draft
	final.ID = s.genID.Generate()

	// The draft's number was allocated from a read-time snapshot. Re-read the
	// highest persisted number inside the transaction and advance past it so
	// two concurrent confirms can never commit the same number for an owner.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		highest, err := s.repo.HighestTransactionNo(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		if highestSeq, ok := identifier.Suffix(highest, identifier.TransactionNoPrefix); ok && highestSeq >= draftSeq {
			final.TransactionNo = identifier.Format(
				identifier.TransactionNoPrefix,
				identifier.TransactionNoWidth,
				highestSeq+1,
			)
		}
		return s.repo.Insert(ctx, tx, &final)
	})
	if err != nil {
		s.log.Error("payment confirm failed",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err),
		)
		return paymentdomain.Payment{}, err
	}

	s.notifyConfirmed(ctx, final)
	return final, nil
}

// notifyConfirmed sends the confirmation SMS intent when the shop has it
// enabled. Failures are logged and swallowed; the payment is already durable.
func (s *Service) notifyConfirmed(ctx context.Context, payment paymentdomain.Payment) {
	cfg, err := s.settingsSvc.Load(ctx, payment.OwnerID)
	if err != nil || !cfg.SendSMSOnConfirm {
		return
	}
	body := sms.FormatConfirmation(sms.ConfirmationInput{
		AccountName:   payment.AccountName,
		Amount:        payment.Amount,
		Utility:       string(payment.Utility),
		TransactionNo: payment.TransactionNo,
		ShopName:      cfg.ShopDetails.ShopName,
	})
	if err := s.dispatcher.Dispatch(ctx, notifydomain.Message{PhoneNo: payment.PhoneNo, Body: body}); err != nil {
		s.log.Warn("sms dispatch failed",
			zap.String("transaction_no", payment.TransactionNo),
			zap.Error(err),
		)
	}
}

func (s *Service) MarkPaid(ctx context.Context, ownerID, paymentID snowflake.ID, referenceNo string) (paymentdomain.Payment, error) {
	if ownerID == 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidOwner
	}
	referenceNo = strings.TrimSpace(referenceNo)
	if referenceNo == "" {
		return paymentdomain.Payment{}, paymentdomain.ErrMissingReference
	}

	updated, err := s.repo.MarkPaid(ctx, s.db, ownerID, paymentID, referenceNo)
	if err != nil {
		return paymentdomain.Payment{}, err
	}
	if !updated {
		existing, err := s.repo.FindByID(ctx, s.db, ownerID, paymentID)
		if err != nil {
			return paymentdomain.Payment{}, err
		}
		if existing == nil {
			return paymentdomain.Payment{}, paymentdomain.ErrPaymentNotFound
		}
		return paymentdomain.Payment{}, paymentdomain.ErrAlreadyPaid
	}

	final, err := s.repo.FindByID(ctx, s.db, ownerID, paymentID)
	if err != nil {
		return paymentdomain.Payment{}, err
	}
	if final == nil {
		return paymentdomain.Payment{}, paymentdomain.ErrPaymentNotFound
	}
	return *final, nil
}

func (s *Service) Delete(ctx context.Context, ownerID snowflake.ID, criteria paymentdomain.DeleteCriteria) (int64, error) {
	if ownerID == 0 {
		return 0, paymentdomain.ErrInvalidOwner
	}
	if (criteria.Start == nil) != (criteria.End == nil) {
		return 0, paymentdomain.ErrInvalidCriteria
	}
	deleted, err := s.repo.DeleteByCriteria(ctx, s.db, ownerID, criteria)
	if err != nil {
		return 0, err
	}
	s.log.Info("payments deleted",
		zap.String("owner_id", ownerID.String()),
		zap.Int64("count", deleted),
	)
	return deleted, nil
}

func (s *Service) List(ctx context.Context, ownerID snowflake.ID) ([]paymentdomain.Payment, error) {
	if ownerID == 0 {
		return nil, paymentdomain.ErrInvalidOwner
	}
	return s.repo.ListByOwner(ctx, s.db, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, paymentID snowflake.ID) (paymentdomain.Payment, error) {
	if ownerID == 0 {
		return paymentdomain.Payment{}, paymentdomain.ErrInvalidOwner
	}
	payment, err := s.repo.FindByID(ctx, s.db, ownerID, paymentID)
	if err != nil {
		return paymentdomain.Payment{}, err
	}
	if payment == nil {
		return paymentdomain.Payment{}, paymentdomain.ErrPaymentNotFound
	}
	return *payment, nil
}

func (s *Service) LookupCustomer(ctx context.Context, ownerID snowflake.ID, phoneNo string, utility paymentdomain.Utility) (*paymentdomain.Payment, error) {
	if ownerID == 0 {
		return nil, paymentdomain.ErrInvalidOwner
	}
	if utility != "" {
		if _, err := paymentdomain.ParseUtility(string(utility)); err != nil {
			return nil, err
		}
	}
	phoneNo = strings.TrimSpace(phoneNo)
	if phoneNo == "" {
		return nil, nil
	}
	return s.repo.FindLatestByPhone(ctx, s.db, ownerID, phoneNo, utility)
}

func userIDByPhone(payments []paymentdomain.Payment, phoneNo string) string {
	for _, p := range payments {
		if p.PhoneNo == phoneNo {
			return p.UserID
		}
	}
	return ""
}

func userIDs(payments []paymentdomain.Payment) []string {
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.UserID)
	}
	return ids
}

func transactionNos(payments []paymentdomain.Payment) []string {
	nos := make([]string, 0, len(payments))
	for _, p := range payments {
		nos = append(nos, p.TransactionNo)
	}
	return nos
}
