package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	activationdomain "github.com/smallbiznis/billpoint/internal/activation/domain"
	"github.com/smallbiznis/billpoint/internal/auth"
	"github.com/smallbiznis/billpoint/internal/authorization"
	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
	settingsdomain "github.com/smallbiznis/billpoint/internal/settings/domain"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not_found")
	ErrServiceUnavailable = errors.New("service_unavailable")
	ErrTooManyRequests    = errors.New("too_many_requests")
)

// apiError is a client error with a stable machine-readable code.
type apiError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Code + ": " + e.Message }

func newValidationError(field, code, message string) error {
	return &apiError{Field: field, Code: code, Message: message}
}

func invalidRequestError() error {
	return &apiError{Code: "invalid_request", Message: "request body could not be parsed"}
}

// AbortWithError translates service errors into HTTP responses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func AbortWithError(c *gin.Context, err error) {
	var validation *apiError
	if errors.As(err, &validation) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation})
		return
	}

	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrSessionExpired):
		status = http.StatusUnauthorized
		code = "unauthorized"
	case errors.Is(err, ErrForbidden),
		errors.Is(err, authorization.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
	case errors.Is(err, ErrNotFound),
		errors.Is(err, paymentdomain.ErrPaymentNotFound):
		status = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, ErrTooManyRequests):
		status = http.StatusTooManyRequests
		code = "too_many_requests"
	case errors.Is(err, ErrServiceUnavailable):
		status = http.StatusServiceUnavailable
		code = "service_unavailable"
	case errors.Is(err, paymentdomain.ErrAlreadyPaid):
		status = http.StatusConflict
		code = err.Error()
	case errors.Is(err, paymentdomain.ErrInvalidUtility),
		errors.Is(err, paymentdomain.ErrInvalidBill),
		errors.Is(err, paymentdomain.ErrInvalidDraft),
		errors.Is(err, paymentdomain.ErrInsufficientTender),
		errors.Is(err, paymentdomain.ErrMissingReference),
		errors.Is(err, paymentdomain.ErrInvalidCriteria),
		errors.Is(err, settingsdomain.ErrInvalidPrintSize),
		errors.Is(err, settingsdomain.ErrInvalidRule),
		errors.Is(err, activationdomain.ErrInvalidCode):
		status = http.StatusBadRequest
		code = err.Error()
	}

	message := code
	if status != http.StatusInternalServerError {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}
