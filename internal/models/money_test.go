package models

import "testing"

func TestParseMoneyStripsCurrencySymbol(t *testing.T) {
	cases := []struct {
		literal string
		want    string
	}{
		{"$16.00", "16.00"},
		{"$4.50", "4.50"},
		{" $28.00 ", "28.00"},
		{"12", "12.00"},
		{"￥1200", "1200.00"},
		{"€9.5", "9.50"},
	}
	for _, tc := range cases {
		got, ok := ParseMoney(tc.literal)
		if !ok {
			t.Fatalf("parse %q failed", tc.literal)
		}
		if got.String() != tc.want {
			t.Fatalf("parse %q: got %s want %s", tc.literal, got.String(), tc.want)
		}
	}
}

func TestParseMoneyMalformed(t *testing.T) {
	for _, literal := range []string{"", "   ", "$", "n/a", "free", "$12..0"} {
		got, ok := ParseMoney(literal)
		if ok {
			t.Fatalf("expected parse %q to fail", literal)
		}
		if got.String() != "0.00" {
			t.Fatalf("malformed literal must yield zero money, got %s", got.String())
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, _ := ParseMoney("$16.00")
	b, _ := ParseMoney("$12.00")

	if got := a.MulInt(2).Add(b).String(); got != "44.00" {
		t.Fatalf("expected 44.00, got %s", got)
	}
	if got := (Money{}).Add(Money{}).String(); got != "0.00" {
		t.Fatalf("zero money addition should stay 0.00, got %s", got)
	}
}

func TestLineItemSubtotal(t *testing.T) {
	item := LineItem{ID: "ramen-7", Price: "$16.00", Quantity: 3}
	if got := item.Subtotal().String(); got != "48.00" {
		t.Fatalf("expected subtotal 48.00, got %s", got)
	}

	broken := LineItem{ID: "broken-1", Price: "n/a", Quantity: 3}
	if got := broken.Subtotal().String(); got != "0.00" {
		t.Fatalf("unparseable price must yield zero subtotal, got %s", got)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, _ := ParseMoney("$28.00")
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"28.00"` {
		t.Fatalf("expected fixed 2dp string, got %s", string(data))
	}

	var decoded Money
	if err := decoded.UnmarshalJSON([]byte(`"28.00"`)); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if decoded.String() != "28.00" {
		t.Fatalf("expected 28.00, got %s", decoded.String())
	}
	if err := decoded.UnmarshalJSON([]byte(`16.5`)); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if decoded.String() != "16.50" {
		t.Fatalf("expected 16.50, got %s", decoded.String())
	}
}
