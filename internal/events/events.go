package events

// Audit action names recorded for operator activity.
const (
	EventPaymentConfirmed = "payment.confirmed"
	EventPaymentMarkPaid  = "payment.mark_paid"
	EventHistoryCleared   = "history.cleared"
	EventSettingsSaved    = "settings.saved"
	EventOperatorLogin    = "operator.login"
)

// PaymentPayload captures the minimal data recorded for a payment event.
type PaymentPayload struct {
	PaymentID     string  `json:"payment_id"`
	TransactionNo string  `json:"transaction_no"`
	Utility       string  `json:"utility"`
	Amount        float64 `json:"amount"`
	ServiceCharge float64 `json:"service_charge"`
}

// ToMap converts a payload into an audit-friendly map.
func (p PaymentPayload) ToMap() map[string]any {
	return map[string]any{
		"payment_id":     p.PaymentID,
		"transaction_no": p.TransactionNo,
		"utility":        p.Utility,
		"amount":         p.Amount,
		"service_charge": p.ServiceCharge,
	}
}
