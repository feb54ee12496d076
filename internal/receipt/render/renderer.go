package render

import "time"

// RenderInput is the deterministic input used for receipt rendering.
type RenderInput struct {
	Shop    ShopView
	Payment PaymentView
	Size    string // "A5" or "80mm"
}

type ShopView struct {
	LogoURL  string
	ShopName string
	Address  string
	PhoneNo  string
	Email    string
}

type PaymentView struct {
	TransactionNo string
	UserID        string
	Utility       string
	AccountNo     string
	AccountName   string
	PhoneNo       string
	Amount        float64
	ServiceCharge float64
	TotalDue      float64
	PaidAmount    *float64
	Balance       *float64
	Status        string
	ReferenceNo   string
	Date          time.Time
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}
