package sms

import (
	"fmt"
	"net/url"
)

// ConfirmationInput carries the fields interpolated into the payment
// confirmation text.
type ConfirmationInput struct {
	AccountName   string
	Amount        float64
	Utility       string
	TransactionNo string
	ShopName      string
}

// FormatConfirmation renders the confirmation SMS body. The wording is part
// of the customer-facing contract; change it deliberately.
func FormatConfirmation(in ConfirmationInput) string {
	return fmt.Sprintf(
		"Dear %s, Thank you for your payment of LKR %.2f for your %s bill. Your Transaction No is %s. - %s",
		in.AccountName, in.Amount, in.Utility, in.TransactionNo, in.ShopName,
	)
}

// IntentURL builds the sms: URL a client device opens to send the message.
func IntentURL(phoneNo, body string) string {
	return "sms:" + phoneNo + "?body=" + url.QueryEscape(body)
}
