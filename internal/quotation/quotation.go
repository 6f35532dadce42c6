// Package quotation assembles the normalized quotation record: customer
// identity, the sizing snapshot and the cost breakdown, stamped with a
// generation time and a quotation number. A record is immutable once
// built and is the single input the document renderer consumes.
package quotation

import (
	"strings"
	"time"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/pricing"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/sizing"
)

// Customer identifies the prospective buyer. Free text; the only
// validation is that no field is empty when a quotation is generated.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Record is a fully computed quotation, ready for rendering.
type Record struct {
	Number      string
	GeneratedAt time.Time

	Customer   Customer
	Location   catalog.Location
	SystemType catalog.SystemType
	Selection  pricing.Selection

	MonthlyBill  float64
	RoofAreaSqFt float64

	Sizing sizing.Result
	Cost   pricing.Breakdown
}

// Build validates the customer fields and assembles a Record. The
// quotation number is derived from the generation timestamp, so a record
// is fully determined by its inputs.
func Build(cust Customer, in sizing.Input, sel pricing.Selection, sz sizing.Result, cost pricing.Breakdown, at time.Time) (*Record, error) {
	for _, f := range []struct{ name, value string }{
		{"name", cust.Name},
		{"phone", cust.Phone},
		{"email", cust.Email},
		{"address", cust.Address},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, quote.Errorf(quote.KindInvalidInput, "customer %s is required", f.name)
		}
	}

	return &Record{
		Number:       Number(at),
		GeneratedAt:  at,
		Customer:     cust,
		Location:     in.Location,
		SystemType:   in.SystemType,
		Selection:    sel,
		MonthlyBill:  in.MonthlyBill,
		RoofAreaSqFt: in.RoofAreaSqFt,
		Sizing:       sz,
		Cost:         cost,
	}, nil
}

// Number derives the quotation number from the generation timestamp.
func Number(at time.Time) string {
	return "Q-" + at.Format("20060102-150405")
}

// Filename is the download name for the materialized document, derived
// from the customer name and the generation date.
func (r *Record) Filename() string {
	name := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		default:
			return '-'
		}
	}, strings.TrimSpace(r.Customer.Name))

	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	name = strings.Trim(name, "-")
	if name == "" {
		name = "Customer"
	}

	return "Solar-Quotation-" + name + "-" + r.GeneratedAt.Format("2006-01-02") + ".pdf"
}
