package domain

import (
	"sort"
	"strings"

	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
)

// FilterAll is the stored sentinel for an unset utility or month filter. It
// matches everything, same as the empty string.
const FilterAll = "all"

// FilterSpec narrows the payment history. Empty fields match everything and
// the populated fields combine with AND. ExactDate and Month are separate
// filters; a caller that sets both gets the intersection.
type FilterSpec struct {
	UtilityType string `json:"utilityType"` // Utility name or FilterAll
	ExactDate   string `json:"exactDate"`   // "2006-01-02"
	Month       string `json:"month"`       // "2006-01" or FilterAll
	SearchText  string `json:"searchText"`
}

// DayGroup is one calendar day of payments, newest payment first.
type DayGroup struct {
	Day                string                  `json:"day"` // "2006-01-02"
	Payments           []paymentdomain.Payment `json:"payments"`
	TotalAmount        float64                 `json:"totalAmount"`
	TotalServiceCharge float64                 `json:"totalServiceCharge"`
}

// MonthTotal aggregates one calendar month.
type MonthTotal struct {
	Month              string  `json:"month"` // "2006-01"
	Count              int     `json:"count"`
	TotalAmount        float64 `json:"totalAmount"`
	TotalServiceCharge float64 `json:"totalServiceCharge"`
}

// Filter returns the payments matching the spec, preserving input order.
// Filtering is pure; applying the same spec twice returns the same result.
func Filter(payments []paymentdomain.Payment, spec FilterSpec) []paymentdomain.Payment {
	search := strings.ToLower(strings.TrimSpace(spec.SearchText))
	out := make([]paymentdomain.Payment, 0, len(payments))
	for _, p := range payments {
		if filterSet(spec.UtilityType) && string(p.Utility) != spec.UtilityType {
			continue
		}
		if spec.ExactDate != "" && p.Date.Local().Format("2006-01-02") != spec.ExactDate {
			continue
		}
		if filterSet(spec.Month) && p.Date.Local().Format("2006-01") != spec.Month {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterSet(value string) bool {
	return value != "" && value != FilterAll
}

func matchesSearch(p paymentdomain.Payment, search string) bool {
	fields := []string{p.TransactionNo, p.AccountNo, p.AccountName, p.PhoneNo}
	if p.ReferenceNo != nil {
		fields = append(fields, *p.ReferenceNo)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// GroupByDay buckets payments per local calendar day, most recent day first.
// Within a day the input order is preserved.
func GroupByDay(payments []paymentdomain.Payment) []DayGroup {
	byDay := make(map[string]*DayGroup)
	var days []string
	for _, p := range payments {
		day := p.Date.Local().Format("2006-01-02")
		group, ok := byDay[day]
		if !ok {
			group = &DayGroup{Day: day}
			byDay[day] = group
			days = append(days, day)
		}
		group.Payments = append(group.Payments, p)
		group.TotalAmount += p.Amount
		group.TotalServiceCharge += p.ServiceCharge
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	groups := make([]DayGroup, 0, len(days))
	for _, day := range days {
		groups = append(groups, *byDay[day])
	}
	return groups
}

// MonthlyTotals aggregates payments per local calendar month, most recent
// month first.
func MonthlyTotals(payments []paymentdomain.Payment) []MonthTotal {
	byMonth := make(map[string]*MonthTotal)
	var months []string
	for _, p := range payments {
		month := p.Date.Local().Format("2006-01")
		total, ok := byMonth[month]
		if !ok {
			total = &MonthTotal{Month: month}
			byMonth[month] = total
			months = append(months, month)
		}
		total.Count++
		total.TotalAmount += p.Amount
		total.TotalServiceCharge += p.ServiceCharge
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	totals := make([]MonthTotal, 0, len(months))
	for _, month := range months {
		totals = append(totals, *byMonth[month])
	}
	return totals
}
