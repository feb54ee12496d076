package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/authorization"
	"github.com/smallbiznis/billpoint/internal/events"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
)

type createDraftRequest struct {
	Utility     string   `json:"utility"`
	AccountNo   string   `json:"accountNo"`
	Amount      float64  `json:"amount"`
	AccountName string   `json:"accountName"`
	PhoneNo     string   `json:"phoneNo"`
	PaidAmount  *float64 `json:"paidAmount"`
}

func (s *Server) CreatePaymentDraft(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectPayment, authorization.ActionPaymentCreate)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req createDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	utility, err := paymentdomain.ParseUtility(req.Utility)
	if err != nil {
		AbortWithError(c, newValidationError("utility", "invalid_utility", "utility must be LECO, CEB or Water"))
		return
	}

	bill := paymentdomain.Bill{
		AccountNo:   strings.TrimSpace(req.AccountNo),
		Amount:      req.Amount,
		AccountName: strings.TrimSpace(req.AccountName),
		PhoneNo:     strings.TrimSpace(req.PhoneNo),
	}
	if fieldErrs := bill.Validate(utility); len(fieldErrs) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	draft, err := s.paymentSvc.CreateDraft(c.Request.Context(), paymentdomain.CreateDraftRequest{
		OwnerID:    ownerID,
		Utility:    utility,
		Bill:       bill,
		PaidAmount: req.PaidAmount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": draft})
}

type confirmPaymentRequest struct {
	Draft paymentdomain.Payment `json:"draft"`
}

func (s *Server) ConfirmPayment(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectPayment, authorization.ActionPaymentConfirm)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.Draft.OwnerID = ownerID

	payment, err := s.paymentSvc.Confirm(c.Request.Context(), ownerID, req.Draft)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := payment.ID.String()
		payload := events.PaymentPayload{
			PaymentID:     payment.ID.String(),
			TransactionNo: payment.TransactionNo,
			Utility:       string(payment.Utility),
			Amount:        payment.Amount,
			ServiceCharge: payment.ServiceCharge,
		}
		_ = s.auditSvc.AuditLog(c.Request.Context(), &ownerID, "", nil, events.EventPaymentConfirmed, "payment", &targetID, payload.ToMap())
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func (s *Server) ListPayments(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectPayment, authorization.ActionPaymentView)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	payments, err := s.paymentSvc.List(c.Request.Context(), ownerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func (s *Server) GetPayment(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectPayment, authorization.ActionPaymentView)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	paymentID, err := parsePaymentID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	payment, err := s.paymentSvc.Get(c.Request.Context(), ownerID, paymentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

type markPaidRequest struct {
	ReferenceNo string `json:"referenceNo"`
}

func (s *Server) MarkPaymentPaid(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectPayment, authorization.ActionPaymentMarkPaid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	paymentID, err := parsePaymentID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req markPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	payment, err := s.paymentSvc.MarkPaid(c.Request.Context(), ownerID, paymentID, strings.TrimSpace(req.ReferenceNo))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := payment.ID.String()
		_ = s.auditSvc.AuditLog(c.Request.Context(), &ownerID, "", nil, events.EventPaymentMarkPaid, "payment", &targetID, map[string]any{
			"transaction_no": payment.TransactionNo,
			"reference_no":   strings.TrimSpace(req.ReferenceNo),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func (s *Server) DeletePayments(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectHistory, authorization.ActionHistoryClear)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var query struct {
		All   bool   `form:"all"`
		Start string `form:"start"`
		End   string `form:"end"`
		Month string `form:"month"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	criteria := paymentdomain.DeleteCriteria{All: query.All, Month: strings.TrimSpace(query.Month)}
	if query.Start != "" || query.End != "" {
		start, err := time.ParseInLocation("2006-01-02", query.Start, time.Local)
		if err != nil {
			AbortWithError(c, newValidationError("start", "invalid_start", "start must be YYYY-MM-DD"))
			return
		}
		end, err := time.ParseInLocation("2006-01-02", query.End, time.Local)
		if err != nil {
			AbortWithError(c, newValidationError("end", "invalid_end", "end must be YYYY-MM-DD"))
			return
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		criteria.Start = &start
		criteria.End = &end
	}

	deleted, err := s.paymentSvc.Delete(c.Request.Context(), ownerID, criteria)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		_ = s.auditSvc.AuditLog(c.Request.Context(), &ownerID, "", nil, events.EventHistoryCleared, "payment", nil, map[string]any{
			"deleted": deleted,
			"all":     criteria.All,
			"month":   criteria.Month,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": deleted}})
}

func (s *Server) LookupCustomer(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectPayment, authorization.ActionPaymentView)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	phoneNo := strings.TrimSpace(c.Query("phoneNo"))
	if phoneNo == "" {
		AbortWithError(c, newValidationError("phoneNo", "required", "phoneNo is required"))
		return
	}

	payment, err := s.paymentSvc.LookupCustomer(c.Request.Context(), ownerID, phoneNo, paymentdomain.Utility(strings.TrimSpace(c.Query("utility"))))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func parsePaymentID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError("id", "invalid_id", "payment id must be numeric")
	}
	return id, nil
}
