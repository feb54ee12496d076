package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Utility is the category of bill being paid.
type Utility string

const (
	UtilityLECO  Utility = "LECO"
	UtilityCEB   Utility = "CEB"
	UtilityWater Utility = "Water"
)

// ParseUtility validates a utility name.
func ParseUtility(value string) (Utility, error) {
	switch Utility(strings.TrimSpace(value)) {
	case UtilityLECO:
		return UtilityLECO, nil
	case UtilityCEB:
		return UtilityCEB, nil
	case UtilityWater:
		return UtilityWater, nil
	default:
		return "", ErrInvalidUtility
	}
}

// AccountNoLength is the exact account-number length the utility issues.
func (u Utility) AccountNoLength() int {
	if u == UtilityWater {
		return 12
	}
	return 10
}

// Status is the payment lifecycle state. Pending is initial, Paid terminal.
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// Bill is the operator-entered customer input for one payment.
type Bill struct {
	AccountNo   string  `json:"accountNo"`
	Amount      float64 `json:"amount"`
	AccountName string  `json:"accountName"`
	PhoneNo     string  `json:"phoneNo"`
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// FieldError is a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate checks the bill against the given utility's constraints and
// returns one error per offending field.
func (b Bill) Validate(utility Utility) []FieldError {
	var errs []FieldError
	accountNo := strings.TrimSpace(b.AccountNo)
	if accountNo == "" {
		errs = append(errs, FieldError{"accountNo", "required", "Account number is required."})
	} else if len(accountNo) != utility.AccountNoLength() {
		errs = append(errs, FieldError{
			Field:   "accountNo",
			Code:    "invalid_length",
			Message: "Account number has the wrong length for this utility.",
		})
	}
	if b.Amount <= 0 {
		errs = append(errs, FieldError{"amount", "not_positive", "Amount must be a positive number."})
	}
	name := strings.TrimSpace(b.AccountName)
	if len(name) < 2 || len(name) > 50 {
		errs = append(errs, FieldError{"accountName", "invalid_length", "Account name must be 2-50 characters."})
	}
	if !phonePattern.MatchString(strings.TrimSpace(b.PhoneNo)) {
		errs = append(errs, FieldError{"phoneNo", "invalid_format", "Please enter a valid phone number."})
	}
	return errs
}

// Payment is the persisted record of one bill payment. JSON field names
// follow the stored document contract; do not rename them.
type Payment struct {
	ID            snowflake.ID `json:"id" gorm:"column:id;primaryKey"`
	OwnerID       snowflake.ID `json:"ownerUid" gorm:"column:owner_id;index"`
	UserID        string       `json:"userId" gorm:"column:user_id;not null"`
	TransactionNo string       `json:"transactionNo" gorm:"column:transaction_no;not null"`
	Utility       Utility      `json:"utility" gorm:"column:utility;not null"`
	AccountNo     string       `json:"accountNo" gorm:"column:account_no;not null"`
	AccountName   string       `json:"accountName" gorm:"column:account_name;not null"`
	PhoneNo       string       `json:"phoneNo" gorm:"column:phone_no;not null"`
	Amount        float64      `json:"amount" gorm:"column:amount;not null"`
	ServiceCharge float64      `json:"serviceCharge" gorm:"column:service_charge;not null"`
	PaidAmount    *float64     `json:"paidAmount,omitempty" gorm:"column:paid_amount"`
	Status        Status       `json:"status" gorm:"column:status;not null"`
	ReferenceNo   *string      `json:"referenceNo,omitempty" gorm:"column:reference_no"`
	Date          time.Time    `json:"date" gorm:"column:date;not null"`
	CreatedAt     time.Time    `json:"-" gorm:"column:created_at"`
	UpdatedAt     time.Time    `json:"-" gorm:"column:updated_at"`
}

func (Payment) TableName() string { return "payments" }

// TotalDue is the bill amount plus the service charge.
func (p Payment) TotalDue() float64 { return p.Amount + p.ServiceCharge }

// Balance is the change owed when a tendered amount was recorded.
func (p Payment) Balance() *float64 {
	if p.PaidAmount == nil {
		return nil
	}
	balance := *p.PaidAmount - p.TotalDue()
	return &balance
}
