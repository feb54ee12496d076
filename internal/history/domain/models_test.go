package domain

import (
	"reflect"
	"testing"
	"time"

	paymentdomain "github.com/smallbiznis/billpoint/internal/payment/domain"
)

func samplePayments() []paymentdomain.Payment {
	ref := "REF-7"
	return []paymentdomain.Payment{
		{
			ID: 4, TransactionNo: "NHTR0004", Utility: paymentdomain.UtilityWater,
			AccountNo: "123456789012", AccountName: "Kamala Perera", PhoneNo: "+94770000004",
			Amount: 12000, ServiceCharge: 120,
			Date: time.Date(2026, 4, 2, 9, 0, 0, 0, time.Local),
		},
		{
			ID: 3, TransactionNo: "NHTR0003", Utility: paymentdomain.UtilityCEB,
			AccountNo: "1234567890", AccountName: "John Doe", PhoneNo: "+94770000003",
			Amount: 5000, ServiceCharge: 50, ReferenceNo: &ref,
			Date: time.Date(2026, 3, 15, 14, 0, 0, 0, time.Local),
		},
		{
			ID: 2, TransactionNo: "NHTR0002", Utility: paymentdomain.UtilityLECO,
			AccountNo: "9876543210", AccountName: "Jane Doe", PhoneNo: "+94770000002",
			Amount: 2000, ServiceCharge: 30,
			Date: time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local),
		},
		{
			ID: 1, TransactionNo: "NHTR0001", Utility: paymentdomain.UtilityCEB,
			AccountNo: "1234567890", AccountName: "John Doe", PhoneNo: "+94770000003",
			Amount: 1000, ServiceCharge: 30,
			Date: time.Date(2026, 3, 1, 11, 0, 0, 0, time.Local),
		},
	}
}

func ids(payments []paymentdomain.Payment) []int64 {
	out := make([]int64, 0, len(payments))
	for _, p := range payments {
		out = append(out, int64(p.ID))
	}
	return out
}

func TestFilterEmptySpecMatchesAll(t *testing.T) {
	got := Filter(samplePayments(), FilterSpec{})
	if len(got) != 4 {
		t.Fatalf("expected all 4, got %d", len(got))
	}
}

func TestFilterByUtility(t *testing.T) {
	got := Filter(samplePayments(), FilterSpec{UtilityType: "CEB"})
	if !reflect.DeepEqual(ids(got), []int64{3, 1}) {
		t.Fatalf("unexpected ids %v", ids(got))
	}
}

func TestFilterAllSentinelMatchesEverything(t *testing.T) {
	got := Filter(samplePayments(), FilterSpec{UtilityType: FilterAll})
	if len(got) != 4 {
		t.Fatalf("expected utilityType %q to match all 4, got %d", FilterAll, len(got))
	}

	got = Filter(samplePayments(), FilterSpec{Month: FilterAll})
	if len(got) != 4 {
		t.Fatalf("expected month %q to match all 4, got %d", FilterAll, len(got))
	}

	got = Filter(samplePayments(), FilterSpec{UtilityType: FilterAll, Month: "2026-03"})
	if !reflect.DeepEqual(ids(got), []int64{3, 2, 1}) {
		t.Fatalf("unexpected ids %v", ids(got))
	}
}

func TestFilterByExactDateAndMonth(t *testing.T) {
	byDate := Filter(samplePayments(), FilterSpec{ExactDate: "2026-03-15"})
	if !reflect.DeepEqual(ids(byDate), []int64{3, 2}) {
		t.Fatalf("unexpected ids for exact date %v", ids(byDate))
	}

	byMonth := Filter(samplePayments(), FilterSpec{Month: "2026-03"})
	if !reflect.DeepEqual(ids(byMonth), []int64{3, 2, 1}) {
		t.Fatalf("unexpected ids for month %v", ids(byMonth))
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(samplePayments(), FilterSpec{SearchText: "jane"})
	if !reflect.DeepEqual(ids(got), []int64{2}) {
		t.Fatalf("unexpected ids %v", ids(got))
	}

	got = Filter(samplePayments(), FilterSpec{SearchText: "ref-7"})
	if !reflect.DeepEqual(ids(got), []int64{3}) {
		t.Fatalf("expected reference match, got %v", ids(got))
	}

	got = Filter(samplePayments(), FilterSpec{SearchText: "nhtr000"})
	if len(got) != 4 {
		t.Fatalf("expected prefix match on all, got %v", ids(got))
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	got := Filter(samplePayments(), FilterSpec{
		UtilityType: "CEB",
		Month:       "2026-03",
		SearchText:  "john",
	})
	if !reflect.DeepEqual(ids(got), []int64{3, 1}) {
		t.Fatalf("unexpected ids %v", ids(got))
	}

	got = Filter(samplePayments(), FilterSpec{UtilityType: "Water", Month: "2026-03"})
	if len(got) != 0 {
		t.Fatalf("expected empty intersection, got %v", ids(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	spec := FilterSpec{UtilityType: "CEB"}
	once := Filter(samplePayments(), spec)
	twice := Filter(once, spec)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestGroupByDayOrdersMostRecentFirst(t *testing.T) {
	groups := GroupByDay(samplePayments())
	if len(groups) != 3 {
		t.Fatalf("expected 3 day groups, got %d", len(groups))
	}
	wantDays := []string{"2026-04-02", "2026-03-15", "2026-03-01"}
	for i, want := range wantDays {
		if groups[i].Day != want {
			t.Fatalf("group %d: expected %s, got %s", i, want, groups[i].Day)
		}
	}
	march15 := groups[1]
	if !reflect.DeepEqual(ids(march15.Payments), []int64{3, 2}) {
		t.Fatalf("unexpected payment order in day group: %v", ids(march15.Payments))
	}
	if march15.TotalAmount != 7000 || march15.TotalServiceCharge != 80 {
		t.Fatalf("unexpected day totals: %v / %v", march15.TotalAmount, march15.TotalServiceCharge)
	}
}

func TestMonthlyTotals(t *testing.T) {
	totals := MonthlyTotals(samplePayments())
	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d", len(totals))
	}
	if totals[0].Month != "2026-04" || totals[0].Count != 1 || totals[0].TotalAmount != 12000 {
		t.Fatalf("unexpected april totals: %+v", totals[0])
	}
	if totals[1].Month != "2026-03" || totals[1].Count != 3 || totals[1].TotalAmount != 8000 || totals[1].TotalServiceCharge != 110 {
		t.Fatalf("unexpected march totals: %+v", totals[1])
	}
}
