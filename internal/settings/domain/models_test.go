package domain

import "testing"

func TestDecodeEmptyYieldsDefaults(t *testing.T) {
	got := Decode(nil)
	if got.PrintSize != PrintSizeA5 {
		t.Fatalf("expected default print size, got %q", got.PrintSize)
	}
	if len(got.ServiceCharges) != 3 {
		t.Fatalf("expected 3 default rules, got %d", len(got.ServiceCharges))
	}
	if got.Logos["CEB"] == "" {
		t.Fatalf("expected default CEB logo")
	}
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	blob := []byte(`{"shopDetails":{"shopName":"Corner Shop"},"printSize":"80mm","logos":{"CEB":"https://example.com/ceb.png"}}`)
	got := Decode(blob)

	if got.ShopDetails.ShopName != "Corner Shop" {
		t.Fatalf("expected overridden shop name, got %q", got.ShopDetails.ShopName)
	}
	// Fields absent from the blob keep their defaults.
	if got.ShopDetails.Address == "" {
		t.Fatalf("expected default address to survive merge")
	}
	if got.PrintSize != PrintSize80mm {
		t.Fatalf("expected 80mm, got %q", got.PrintSize)
	}
	if got.Logos["CEB"] != "https://example.com/ceb.png" {
		t.Fatalf("expected overridden CEB logo, got %q", got.Logos["CEB"])
	}
	if got.Logos["Water"] == "" {
		t.Fatalf("expected untouched Water logo to survive merge")
	}
	if len(got.ServiceCharges) != 3 {
		t.Fatalf("expected default rules when blob has none, got %d", len(got.ServiceCharges))
	}
}

func TestDecodeGarbageYieldsDefaults(t *testing.T) {
	got := Decode([]byte(`{not json`))
	want := Defaults()
	if got.ShopDetails.ShopName != want.ShopDetails.ShopName {
		t.Fatalf("expected defaults on parse failure, got %q", got.ShopDetails.ShopName)
	}
}

func TestDecodeBadPrintSizeFallsBack(t *testing.T) {
	got := Decode([]byte(`{"printSize":"letter"}`))
	if got.PrintSize != PrintSizeA5 {
		t.Fatalf("expected fallback to A5, got %q", got.PrintSize)
	}
}
