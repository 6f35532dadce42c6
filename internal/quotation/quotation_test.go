package quotation

import (
	"testing"
	"time"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/pricing"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/sizing"
)

func testInput() sizing.Input {
	return sizing.Input{
		MonthlyBill:  3000,
		RoofAreaSqFt: 500,
		Location:     catalog.Location{Name: "Chennai", SunHours: 5.4},
		SystemType:   catalog.SystemType{ID: "grid_tie", CostMultiplier: 1},
	}
}

func testCustomer() Customer {
	return Customer{
		Name:    "R. Subramanian",
		Phone:   "+91 98400 12345",
		Email:   "subu@example.com",
		Address: "12, 2nd Cross St, Adyar, Chennai",
	}
}

func TestBuildStampsNumberFromTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 14, 11, 30, 45, 0, time.UTC)

	rec, err := Build(testCustomer(), testInput(), pricing.Selection{}, sizing.Result{RecommendedKW: 4}, pricing.Breakdown{}, at)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if rec.Number != "Q-20250314-113045" {
		t.Fatalf("Number = %q, want Q-20250314-113045", rec.Number)
	}
	if !rec.GeneratedAt.Equal(at) {
		t.Fatalf("GeneratedAt = %v, want %v", rec.GeneratedAt, at)
	}
	if rec.MonthlyBill != 3000 || rec.RoofAreaSqFt != 500 {
		t.Fatalf("input snapshot not carried: %+v", rec)
	}
}

func TestFilenameDerivedFromCustomerAndDate(t *testing.T) {
	at := time.Date(2025, 3, 14, 11, 30, 45, 0, time.UTC)

	cases := []struct {
		name string
		want string
	}{
		{"R. Subramanian", "Solar-Quotation-R-Subramanian-2025-03-14.pdf"},
		{"  Anita Rao  ", "Solar-Quotation-Anita-Rao-2025-03-14.pdf"},
		{"///", "Solar-Quotation-Customer-2025-03-14.pdf"},
	}

	for _, tc := range cases {
		cust := testCustomer()
		cust.Name = tc.name

		rec, err := Build(cust, testInput(), pricing.Selection{}, sizing.Result{RecommendedKW: 4}, pricing.Breakdown{}, at)
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", tc.name, err)
		}
		if got := rec.Filename(); got != tc.want {
			t.Fatalf("Filename() = %q, want %q", got, tc.want)
		}
	}
}

func TestBuildRejectsEmptyCustomerFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Customer)
	}{
		{"name", func(c *Customer) { c.Name = "" }},
		{"phone", func(c *Customer) { c.Phone = "   " }},
		{"email", func(c *Customer) { c.Email = "" }},
		{"address", func(c *Customer) { c.Address = "" }},
	}

	for _, tc := range cases {
		cust := testCustomer()
		tc.mutate(&cust)

		_, err := Build(cust, testInput(), pricing.Selection{}, sizing.Result{}, pricing.Breakdown{}, time.Now())
		if quote.KindOf(err) != quote.KindInvalidInput {
			t.Fatalf("%s: kind = %q, want %q", tc.name, quote.KindOf(err), quote.KindInvalidInput)
		}
	}
}
