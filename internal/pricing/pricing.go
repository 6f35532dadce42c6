// Package pricing turns a sized system and a component selection into an
// itemized cost breakdown with subsidy, savings and payback figures. All
// currency values leave this package rounded to whole rupees; downstream
// rendering only formats, it never rounds again.
package pricing

import (
	"math"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/sizing"
)

const (
	wattsPerKW = 1000

	// Inverters are sold in fixed 5 kW units; partial units round up.
	inverterStepKW = 5

	subsidyShare    = 0.30
	savingsCapShare = 0.95
)

// Rates are the operator-configured tariff and per-kW cost parameters.
type Rates struct {
	PricePerUnit     float64
	SubsidyCap       float64
	InstallRatePerKW float64
	MiscRatePerKW    float64
	OffsetPerKW      float64
}

// DefaultRates returns the rates the business quotes with today.
func DefaultRates() Rates {
	return Rates{
		PricePerUnit:     6,
		SubsidyCap:       78000,
		InstallRatePerKW: 7000,
		MiscRatePerKW:    5000,
		OffsetPerKW:      1.2,
	}
}

// Selection is the customer's chosen component brands.
type Selection struct {
	Panel    catalog.Component
	Inverter catalog.Component
	Wiring   catalog.Component
}

// Breakdown is the full financial output of a quotation.
//
// ComputedTotal is always the sum of the line items; TotalCost equals it
// unless an operator-supplied override was given, in which case the
// override drives subsidy, net payable and payback while the line items
// remain reported as computed. Both values are kept so a caller can see
// when they diverge.
type Breakdown struct {
	PanelCost        float64
	InverterCost     float64
	WiringCost       float64
	InstallationCost float64
	OtherCost        float64
	ComputedTotal    float64
	TotalCost        float64
	Subsidy          float64
	NetPayable       float64
	MonthlySavings   float64
	YearlySavings    float64
	PaybackYears     float64
	CarbonOffsetTons float64
}

// Compute prices a sized system. monthlyBill is needed to cap projected
// savings at 95% of the current bill. overrideTotal, when positive,
// supersedes the computed component sum.
func Compute(sz sizing.Result, monthlyBill float64, sel Selection, systemType catalog.SystemType, overrideTotal float64, rates Rates) (Breakdown, error) {
	if sel.Panel.ID == "" || sel.Inverter.ID == "" || sel.Wiring.ID == "" {
		return Breakdown{}, quote.Errorf(quote.KindInvalidSelection, "panel, inverter and wiring must all be selected")
	}
	if systemType.CostMultiplier < 1 {
		return Breakdown{}, quote.Errorf(quote.KindInvalidSelection, "system type %q has no cost profile", systemType.ID)
	}
	if sz.RecommendedKW <= 0 {
		return Breakdown{}, quote.Errorf(quote.KindInfeasibleSizing, "cannot price a zero-kW system")
	}

	kw := float64(sz.RecommendedKW)

	b := Breakdown{
		PanelCost:        round(kw * wattsPerKW * sel.Panel.UnitPrice),
		InverterCost:     round(math.Ceil(kw/inverterStepKW) * sel.Inverter.UnitPrice),
		WiringCost:       round(kw * sel.Wiring.UnitPrice),
		InstallationCost: round(kw * rates.InstallRatePerKW),
		OtherCost:        round(kw * rates.MiscRatePerKW),
	}

	base := b.PanelCost + b.InverterCost + b.WiringCost + b.InstallationCost + b.OtherCost
	b.ComputedTotal = round(base*systemType.CostMultiplier + kw*systemType.CostPerKW)

	b.TotalCost = b.ComputedTotal
	if overrideTotal > 0 {
		b.TotalCost = round(overrideTotal)
	}

	b.Subsidy = round(math.Min(b.TotalCost*subsidyShare, rates.SubsidyCap))
	b.NetPayable = b.TotalCost - b.Subsidy

	b.MonthlySavings = round(math.Min(sz.MonthlyKWh*rates.PricePerUnit, monthlyBill*savingsCapShare))
	b.YearlySavings = b.MonthlySavings * 12

	if b.YearlySavings <= 0 {
		return Breakdown{}, quote.Errorf(quote.KindDivisionUndefined,
			"payback period is not computable: projected yearly savings are %v", b.YearlySavings)
	}
	b.PaybackYears = round1(b.TotalCost / b.YearlySavings)

	b.CarbonOffsetTons = round2(kw * rates.OffsetPerKW)

	return b, nil
}

func round(v float64) float64  { return math.Round(v) }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
