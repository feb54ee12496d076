package domain

import (
	"encoding/json"

	"github.com/smallbiznis/billpoint/internal/charge"
)

// PrintSize selects the receipt layout.
type PrintSize string

const (
	PrintSizeA5   PrintSize = "A5"
	PrintSize80mm PrintSize = "80mm"
)

// ShopDetails is the shop header printed on receipts.
type ShopDetails struct {
	Logo     string `json:"logo"`
	ShopName string `json:"shopName"`
	Address  string `json:"address"`
	PhoneNo  string `json:"phoneNo"`
	Email    string `json:"email,omitempty"`
}

// User is an operator account entry maintained by the shop admin.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Settings is the per-owner configuration blob. It is persisted as a single
// JSON document and merged over Defaults on load so new fields pick up their
// default when older blobs are read back.
type Settings struct {
	Logos                 map[string]string `json:"logos"`
	PaymentLinks          map[string]string `json:"paymentLinks"`
	ServiceCharges        []charge.Rule     `json:"serviceCharges"`
	ShopDetails           ShopDetails       `json:"shopDetails"`
	Users                 []User            `json:"users"`
	ShowBalanceCalculator bool              `json:"showBalanceCalculator"`
	PrintSize             PrintSize         `json:"printSize"`
	SendSMSOnConfirm      bool              `json:"sendSmsOnConfirm"`
}

func ptr(v float64) *float64 { return &v }

// Defaults returns the settings a fresh shop starts with.
func Defaults() Settings {
	return Settings{
		Logos: map[string]string{
			"LECO":  "https://placehold.co/40x40.png",
			"CEB":   "https://placehold.co/40x40.png",
			"Water": "https://placehold.co/40x40.png",
		},
		PaymentLinks: map[string]string{
			"LECO":  "https://online.leco.lk/ceb_bill/online_payment.jsp",
			"CEB":   "https://pg.ceb.lk/billpayment/onlinepayment",
			"Water": "https://online.waterboard.lk/",
		},
		ServiceCharges: []charge.Rule{
			{ID: "rule1", Min: 1, Max: ptr(4999), Value: 30, Type: charge.RuleTypeFixed},
			{ID: "rule2", Min: 5000, Max: ptr(9999), Value: 50, Type: charge.RuleTypeFixed},
			{ID: "rule3", Min: 10000, Max: nil, Value: 1, Type: charge.RuleTypePercentage},
		},
		ShopDetails: ShopDetails{
			Logo:     "https://placehold.co/100x100.png",
			ShopName: "Billpoint",
			Address:  "123 Main Street, Colombo 01",
			PhoneNo:  "011-1234567",
			Email:    "shop@billpoint.lk",
		},
		ShowBalanceCalculator: false,
		PrintSize:             PrintSizeA5,
		SendSMSOnConfirm:      false,
	}
}

// Decode parses a stored settings blob over the defaults. Unknown fields are
// ignored and missing fields keep their default, so older blobs stay
// readable. A blob that fails to parse yields the defaults outright.
func Decode(blob []byte) Settings {
	merged := Defaults()
	if len(blob) == 0 {
		return merged
	}
	if err := json.Unmarshal(blob, &merged); err != nil {
		return Defaults()
	}
	if len(merged.ServiceCharges) == 0 {
		merged.ServiceCharges = Defaults().ServiceCharges
	}
	if merged.PrintSize != PrintSizeA5 && merged.PrintSize != PrintSize80mm {
		merged.PrintSize = PrintSizeA5
	}
	return merged
}
