// Package sizing recommends a PV system size from a customer's monthly
// electricity bill, available roof area and location irradiance.
package sizing

import (
	"math"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/quote"
)

const (
	daysPerMonth = 30

	// Oversizing buffer against generation variance.
	demandBuffer = 1.2

	// Areal density assumption: one kW of array needs 100 sq ft of roof.
	sqFtPerKW = 100
)

// Input carries the per-request sizing parameters.
type Input struct {
	MonthlyBill  float64
	RoofAreaSqFt float64
	Location     catalog.Location
	SystemType   catalog.SystemType
}

// Result is the recommended system specification.
type Result struct {
	RecommendedKW int
	DailyKWh      float64
	MonthlyKWh    float64
}

// Compute derives the recommended system size. pricePerUnit is the
// electricity tariff in ₹/kWh used to translate the bill into consumption.
// The demand-based size is capped by the roof area; when the roof cannot
// host even one kW the request is infeasible rather than a zero quote.
func Compute(in Input, pricePerUnit float64) (Result, error) {
	if in.MonthlyBill <= 0 {
		return Result{}, quote.Errorf(quote.KindInvalidInput, "monthly bill must be positive, got %v", in.MonthlyBill)
	}
	if in.RoofAreaSqFt <= 0 {
		return Result{}, quote.Errorf(quote.KindInvalidInput, "roof area must be positive, got %v", in.RoofAreaSqFt)
	}
	if in.Location.SunHours <= 0 {
		return Result{}, quote.Errorf(quote.KindUnknownLocation, "location %q has no irradiance data", in.Location.Name)
	}
	if pricePerUnit <= 0 {
		return Result{}, quote.Errorf(quote.KindInvalidInput, "price per unit must be positive, got %v", pricePerUnit)
	}

	unitsPerMonth := in.MonthlyBill / pricePerUnit
	dailyUnits := unitsPerMonth / daysPerMonth
	demandKW := int(math.Ceil(dailyUnits / in.Location.SunHours * demandBuffer))
	areaCapKW := int(math.Floor(in.RoofAreaSqFt / sqFtPerKW))

	if areaCapKW <= 0 {
		return Result{}, quote.Errorf(quote.KindInfeasibleSizing,
			"roof area %.0f sq ft cannot host a system; at least %d sq ft needed", in.RoofAreaSqFt, sqFtPerKW)
	}

	recommended := demandKW
	if areaCapKW < recommended {
		recommended = areaCapKW
	}

	daily := float64(recommended) * in.Location.SunHours
	return Result{
		RecommendedKW: recommended,
		DailyKWh:      daily,
		MonthlyKWh:    daily * daysPerMonth,
	}, nil
}
