package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/authorization"
	historydomain "github.com/smallbiznis/billpoint/internal/history/domain"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
)

// TodayDashboard returns today's payments with per-utility pending counts,
// the landing view for an operator starting a shift.
func (s *Server) TodayDashboard(c *gin.Context) {
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

	today := s.clock.Now().Local().Format("2006-01-02")
	todays := historydomain.Filter(payments, historydomain.FilterSpec{ExactDate: today})

	pendingByUtility := map[string]int{}
	var totalAmount, totalServiceCharge float64
	for _, p := range todays {
		totalAmount += p.Amount
		totalServiceCharge += p.ServiceCharge
		if p.Status == paymentdomain.StatusPending {
			pendingByUtility[string(p.Utility)]++
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"date":               today,
		"payments":           todays,
		"totalAmount":        totalAmount,
		"totalServiceCharge": totalServiceCharge,
		"pendingByUtility":   pendingByUtility,
	}})
}
