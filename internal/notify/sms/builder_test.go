package sms

import "testing"

func TestFormatConfirmation(t *testing.T) {
	got := FormatConfirmation(ConfirmationInput{
		AccountName:   "John Doe",
		Amount:        4250.5,
		Utility:       "CEB",
		TransactionNo: "NHTR0042",
		ShopName:      "Corner Shop",
	})
	want := "Dear John Doe, Thank you for your payment of LKR 4250.50 for your CEB bill. Your Transaction No is NHTR0042. - Corner Shop"
	if got != want {
		t.Fatalf("unexpected body:\n got %q\nwant %q", got, want)
	}
}

func TestIntentURLEscapesBody(t *testing.T) {
	got := IntentURL("+94771234567", "hello there")
	want := "sms:+94771234567?body=hello+there"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
