package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billpoint/internal/authorization"
	historydomain "github.com/smallbiznis/billpoint/internal/history/domain"
)

func historyFilterFromQuery(c *gin.Context) historydomain.FilterSpec {
	return historydomain.FilterSpec{
		UtilityType: strings.TrimSpace(c.Query("utilityType")),
		ExactDate:   strings.TrimSpace(c.Query("exactDate")),
		Month:       strings.TrimSpace(c.Query("month")),
		SearchText:  strings.TrimSpace(c.Query("searchText")),
	}
}

func (s *Server) HistoryReport(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectHistory, authorization.ActionHistoryView)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	report, err := s.historySvc.Report(c.Request.Context(), ownerID, historyFilterFromQuery(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ExportHistoryCSV streams the filtered history as a flat CSV, one payment
// per row.
func (s *Server) ExportHistoryCSV(c *gin.Context) {
	ownerID, err := s.authorizeOwnerAction(c, authorization.ObjectHistory, authorization.ActionHistoryView)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	report, err := s.historySvc.Report(c.Request.Context(), ownerID, historyFilterFromQuery(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="payment-history.csv"`)
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	header := []string{
		"date", "transactionNo", "userId", "utility", "accountNo",
		"accountName", "phoneNo", "amount", "serviceCharge", "status", "referenceNo",
	}
	if err := writer.Write(header); err != nil {
		return
	}
	for _, day := range report.Days {
		for _, p := range day.Payments {
			referenceNo := ""
			if p.ReferenceNo != nil {
				referenceNo = *p.ReferenceNo
			}
			record := []string{
				p.Date.Local().Format("2006-01-02 15:04"),
				p.TransactionNo,
				p.UserID,
				string(p.Utility),
				p.AccountNo,
				p.AccountName,
				p.PhoneNo,
				fmt.Sprintf("%.2f", p.Amount),
				fmt.Sprintf("%.2f", p.ServiceCharge),
				string(p.Status),
				referenceNo,
			}
			if err := writer.Write(record); err != nil {
				return
			}
		}
	}
	writer.Flush()
}
