package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/authorization"
)

// RenderReceipt returns the printable receipt for a payment. Rendering is
// read-only; reprints never change the payment.
func (s *Server) RenderReceipt(c *gin.Context) {
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

	html, err := s.receiptSvc.Render(c.Request.Context(), ownerID, paymentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
