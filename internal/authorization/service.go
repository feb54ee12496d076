package authorization

import "context"

// Objects and actions form the capability matrix enforced per owner. The
// actor is either "operator:<id>" or "system".
const (
	ObjectPayment  = "payment"
	ObjectHistory  = "history"
	ObjectSettings = "settings"
	ObjectAudit    = "audit"

	ActionPaymentCreate   = "payment.create"
	ActionPaymentConfirm  = "payment.confirm"
	ActionPaymentMarkPaid = "payment.mark_paid"
	ActionPaymentView     = "payment.view"
	ActionHistoryView     = "history.view"
	ActionHistoryClear    = "history.clear"
	ActionSettingsRead    = "settings.read"
	ActionSettingsWrite   = "settings.write"
	ActionAuditView       = "audit.view"
)

type Service interface {
	Authorize(ctx context.Context, actor string, ownerID string, object string, action string) error
}
