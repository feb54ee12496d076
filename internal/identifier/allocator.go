package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

// Customer IDs look like NH001, transaction numbers like NHTR0001. Both
// sequences advance independently by scanning the numeric suffixes of the
// identifiers already issued to an owner. The widths are minimums: once a
// sequence outgrows its padding the number simply gets longer.
const (
	CustomerIDPrefix    = "NH"
	CustomerIDWidth     = 3
	TransactionNoPrefix = "NHTR"
	TransactionNoWidth  = 4
)

// NextCustomerID returns the next customer ID after the given existing IDs.
// Identifiers that do not parse are skipped, never fatal.
func NextCustomerID(existing []string) string {
	return next(existing, CustomerIDPrefix, CustomerIDWidth)
}

// NextTransactionNo returns the next transaction number after the given
// existing numbers.
func NextTransactionNo(existing []string) string {
	return next(existing, TransactionNoPrefix, TransactionNoWidth)
}

// Format renders a raw sequence number in a prefix's canonical form.
// Format("NHTR", 4, 8) == "NHTR0008".
func Format(prefix string, width int, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// Suffix parses the numeric suffix of an identifier, reporting false for
// identifiers with the wrong prefix or a non-numeric remainder.
func Suffix(id, prefix string) (int64, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	n, err := strconv.ParseInt(id[len(prefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxSuffix returns the highest numeric suffix among existing identifiers
// with the given prefix, or 0 when none parse.
func MaxSuffix(existing []string, prefix string) int64 {
	var max int64
	for _, id := range existing {
		if n, ok := Suffix(id, prefix); ok && n > max {
			max = n
		}
	}
	return max
}

func next(existing []string, prefix string, width int) string {
	return Format(prefix, width, MaxSuffix(existing, prefix)+1)
}
