package identifier

import "testing"

func TestNextCustomerIDEmpty(t *testing.T) {
	if got := NextCustomerID(nil); got != "NH001" {
		t.Fatalf("expected NH001, got %q", got)
	}
}

func TestNextCustomerIDSkipsGaps(t *testing.T) {
	got := NextCustomerID([]string{"NH001", "NH003"})
	if got != "NH004" {
		t.Fatalf("expected NH004, got %q", got)
	}
}

func TestNextCustomerIDIgnoresMalformed(t *testing.T) {
	got := NextCustomerID([]string{"NH002", "bogus", "NHxyz", "XX009"})
	if got != "NH003" {
		t.Fatalf("expected NH003, got %q", got)
	}
}

func TestNextTransactionNo(t *testing.T) {
	if got := NextTransactionNo(nil); got != "NHTR0001" {
		t.Fatalf("expected NHTR0001, got %q", got)
	}
	if got := NextTransactionNo([]string{"NHTR0007"}); got != "NHTR0008" {
		t.Fatalf("expected NHTR0008, got %q", got)
	}
}

func TestNextTransactionNoStrictlyIncreasing(t *testing.T) {
	existing := []string{"NHTR0001"}
	prev := int64(1)
	for i := 0; i < 5; i++ {
		next := NextTransactionNo(existing)
		n, ok := Suffix(next, TransactionNoPrefix)
		if !ok {
			t.Fatalf("allocated malformed number %q", next)
		}
		if n <= prev {
			t.Fatalf("expected strictly increasing allocation, got %d after %d", n, prev)
		}
		existing = append(existing, next)
		prev = n
	}
}

func TestFormatBeyondPaddingWidth(t *testing.T) {
	if got := Format(TransactionNoPrefix, TransactionNoWidth, 10000); got != "NHTR10000" {
		t.Fatalf("expected NHTR10000, got %q", got)
	}
	if got := NextTransactionNo([]string{"NHTR9999"}); got != "NHTR10000" {
		t.Fatalf("expected rollover to widen, got %q", got)
	}
}

func TestTransactionSequenceIndependentOfCustomerIDs(t *testing.T) {
	existing := []string{"NH009", "NHTR0002"}
	if got := NextTransactionNo(existing); got != "NHTR0003" {
		t.Fatalf("expected NHTR0003, got %q", got)
	}
	if got := NextCustomerID(existing); got != "NH010" {
		t.Fatalf("expected NH010, got %q", got)
	}
}
