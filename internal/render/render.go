// Package render turns a quotation record into a self-contained HTML
// document. The output carries inline styles only and embeds no scripts
// or network-fetched assets, so a headless print of it never waits on
// external resources. Rendering is deterministic: the same record and
// mode always produce byte-identical markup.
package render

import (
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/greenvolt/solarquote/internal/quotation"
	"github.com/greenvolt/solarquote/internal/quote"
)

// Mode selects the document variant.
type Mode string

const (
	// ModeSample masks the customer's personal fields.
	ModeSample Mode = "sample"
	// ModeDetailed renders the full customer block.
	ModeDetailed Mode = "detailed"
)

const maskMarker = "****"

// Renderer holds the parsed quotation template.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template. It panics on a malformed template
// since that is a programming error, not a runtime condition.
func New() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("quotation").Parse(quotationTemplate))}
}

// Render produces the HTML document for a record in the given mode.
func (r *Renderer) Render(rec *quotation.Record, mode Mode) (string, error) {
	if mode != ModeSample && mode != ModeDetailed {
		return "", quote.Errorf(quote.KindInvalidInput, "unknown document mode %q", mode)
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, buildView(rec, mode)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// view is the fully formatted template input. All numbers are formatted
// here, before interpolation; the template itself does no arithmetic.
type view struct {
	Number string
	Date   string

	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string

	LocationName string
	SunHours     string
	SystemType   string
	MonthlyBill  string
	RoofArea     string

	SystemKW   string
	DailyKWh   string
	MonthlyKWh string

	PanelLabel       string
	PanelWarranty    string
	InverterLabel    string
	InverterWarranty string
	WiringLabel      string
	WiringWarranty   string

	PanelCost        string
	InverterCost     string
	WiringCost       string
	InstallationCost string
	OtherCost        string
	ComputedTotal    string
	TotalCost        string
	HasOverride      bool
	Subsidy          string
	NetPayable       string

	MonthlySavings string
	YearlySavings  string
	PaybackYears   string
	CarbonOffset   string
}

func buildView(rec *quotation.Record, mode Mode) view {
	v := view{
		Number: rec.Number,
		Date:   rec.GeneratedAt.Format("02 January 2006"),

		CustomerName:    rec.Customer.Name,
		CustomerPhone:   rec.Customer.Phone,
		CustomerEmail:   rec.Customer.Email,
		CustomerAddress: rec.Customer.Address,

		LocationName: rec.Location.Name,
		SunHours:     strconv.FormatFloat(rec.Location.SunHours, 'f', 1, 64),
		SystemType:   rec.SystemType.Label,
		MonthlyBill:  FormatINR(rec.MonthlyBill),
		RoofArea:     strconv.FormatFloat(rec.RoofAreaSqFt, 'f', 0, 64),

		SystemKW:   strconv.Itoa(rec.Sizing.RecommendedKW),
		DailyKWh:   strconv.FormatFloat(rec.Sizing.DailyKWh, 'f', 1, 64),
		MonthlyKWh: strconv.FormatFloat(rec.Sizing.MonthlyKWh, 'f', 1, 64),

		PanelLabel:       rec.Selection.Panel.Label,
		PanelWarranty:    strconv.Itoa(rec.Selection.Panel.WarrantyYears),
		InverterLabel:    rec.Selection.Inverter.Label,
		InverterWarranty: strconv.Itoa(rec.Selection.Inverter.WarrantyYears),
		WiringLabel:      rec.Selection.Wiring.Label,
		WiringWarranty:   strconv.Itoa(rec.Selection.Wiring.WarrantyYears),

		PanelCost:        FormatINR(rec.Cost.PanelCost),
		InverterCost:     FormatINR(rec.Cost.InverterCost),
		WiringCost:       FormatINR(rec.Cost.WiringCost),
		InstallationCost: FormatINR(rec.Cost.InstallationCost),
		OtherCost:        FormatINR(rec.Cost.OtherCost),
		ComputedTotal:    FormatINR(rec.Cost.ComputedTotal),
		TotalCost:        FormatINR(rec.Cost.TotalCost),
		HasOverride:      rec.Cost.TotalCost != rec.Cost.ComputedTotal,
		Subsidy:          FormatINR(rec.Cost.Subsidy),
		NetPayable:       FormatINR(rec.Cost.NetPayable),

		MonthlySavings: FormatINR(rec.Cost.MonthlySavings),
		YearlySavings:  FormatINR(rec.Cost.YearlySavings),
		PaybackYears:   strconv.FormatFloat(rec.Cost.PaybackYears, 'f', 1, 64),
		CarbonOffset:   strconv.FormatFloat(rec.Cost.CarbonOffsetTons, 'f', 2, 64),
	}

	if mode == ModeSample {
		v.CustomerName = maskMarker
		v.CustomerPhone = maskMarker
		v.CustomerEmail = maskMarker
		v.CustomerAddress = maskMarker
	}

	return v
}

// FormatINR formats a rupee amount with Indian digit grouping and no
// fractional digits: 150000 becomes "1,50,000". The amount is expected to
// be pre-rounded by the cost engine.
func FormatINR(v float64) string {
	neg := v < 0
	n := strconv.FormatInt(int64(math.Round(math.Abs(v))), 10)

	if len(n) > 3 {
		head, tail := n[:len(n)-3], n[len(n)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		n = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		n = "-" + n
	}
	return n
}
