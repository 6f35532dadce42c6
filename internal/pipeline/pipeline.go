// Package pipeline drives a quotation-generation request end to end:
// sizing and costing, record assembly, document rendering and PDF
// materialization. Engine failures abort before any rendering happens;
// materialization failures are terminal and never retried.
package pipeline

import (
	"context"
	"time"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/logging"
	"github.com/greenvolt/solarquote/internal/pdf"
	"github.com/greenvolt/solarquote/internal/pricing"
	"github.com/greenvolt/solarquote/internal/quotation"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/render"
	"github.com/greenvolt/solarquote/internal/sizing"
)

// State is the stage a generation request is in. A request moves
// Idle → Computing → Rendering → Materializing → Delivered, or stops at
// Failed; nothing is retried automatically.
type State string

const (
	StateIdle          State = "idle"
	StateComputing     State = "computing"
	StateRendering     State = "rendering"
	StateMaterializing State = "materializing"
	StateDelivered     State = "delivered"
	StateFailed        State = "failed"
)

// Request carries everything a caller supplies for one quotation.
type Request struct {
	Customer quotation.Customer

	MonthlyBill  float64
	RoofAreaSqFt float64
	Location     string
	SystemType   string

	Panel    string
	Inverter string
	Wiring   string

	// TotalCostOverride, when positive, supersedes the computed total.
	TotalCostOverride float64

	// Mode selects the document variant; empty means detailed.
	Mode render.Mode
	// Backend selects the materializer; empty means the default.
	Backend string
}

// Result is a delivered quotation.
type Result struct {
	Record *quotation.Record
	HTML   string
	PDF    []byte
}

// Pipeline wires the engines, renderer and materializer backends
// together. All fields are set once at startup; the pipeline itself is
// stateless across requests.
type Pipeline struct {
	Catalog        *catalog.Catalog
	Rates          pricing.Rates
	Renderer       *render.Renderer
	Backends       map[string]pdf.Materializer
	DefaultBackend string
	Page           pdf.PageOptions
	Log            *logging.Logger
	Now            func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// resolve maps the request's catalog references to concrete entries.
func (p *Pipeline) resolve(req Request) (sizing.Input, pricing.Selection, error) {
	loc, ok := p.Catalog.Location(req.Location)
	if !ok {
		return sizing.Input{}, pricing.Selection{}, quote.Errorf(quote.KindUnknownLocation, "location %q is not serviced", req.Location)
	}
	st, ok := p.Catalog.SystemType(req.SystemType)
	if !ok {
		return sizing.Input{}, pricing.Selection{}, quote.Errorf(quote.KindInvalidSelection, "unknown system type %q", req.SystemType)
	}
	panel, ok := p.Catalog.Panel(req.Panel)
	if !ok {
		return sizing.Input{}, pricing.Selection{}, quote.Errorf(quote.KindInvalidSelection, "unknown panel %q", req.Panel)
	}
	inverter, ok := p.Catalog.Inverter(req.Inverter)
	if !ok {
		return sizing.Input{}, pricing.Selection{}, quote.Errorf(quote.KindInvalidSelection, "unknown inverter %q", req.Inverter)
	}
	wiring, ok := p.Catalog.WiringOption(req.Wiring)
	if !ok {
		return sizing.Input{}, pricing.Selection{}, quote.Errorf(quote.KindInvalidSelection, "unknown wiring %q", req.Wiring)
	}

	in := sizing.Input{
		MonthlyBill:  req.MonthlyBill,
		RoofAreaSqFt: req.RoofAreaSqFt,
		Location:     loc,
		SystemType:   st,
	}
	sel := pricing.Selection{Panel: panel, Inverter: inverter, Wiring: wiring}
	return in, sel, nil
}

// Prepare runs the computing stage only: sizing, costing and record
// assembly, with no document produced.
func (p *Pipeline) Prepare(req Request) (*quotation.Record, error) {
	in, sel, err := p.resolve(req)
	if err != nil {
		return nil, err
	}

	sz, err := sizing.Compute(in, p.Rates.PricePerUnit)
	if err != nil {
		return nil, err
	}

	cost, err := pricing.Compute(sz, in.MonthlyBill, sel, in.SystemType, req.TotalCostOverride, p.Rates)
	if err != nil {
		return nil, err
	}

	return quotation.Build(req.Customer, in, sel, sz, cost, p.now())
}

// RenderHTML runs computing and rendering, returning the markup.
func (p *Pipeline) RenderHTML(req Request) (*quotation.Record, string, error) {
	rec, err := p.Prepare(req)
	if err != nil {
		return nil, "", err
	}

	html, err := p.Renderer.Render(rec, p.mode(req))
	if err != nil {
		return nil, "", err
	}
	return rec, html, nil
}

// Generate runs the full state machine and returns the delivered PDF.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	backend, err := p.backend(req)
	if err != nil {
		return nil, err
	}

	state := StateComputing
	rec, err := p.Prepare(req)
	if err != nil {
		return nil, p.fail(state, err)
	}

	state = StateRendering
	html, err := p.Renderer.Render(rec, p.mode(req))
	if err != nil {
		return nil, p.fail(state, err)
	}

	state = StateMaterializing
	out, err := backend.Materialize(ctx, html, p.Page)
	if err != nil {
		return nil, p.fail(state, err)
	}

	p.Log.Info("[pipeline] delivered %s: %d kW system, %d bytes", rec.Number, rec.Sizing.RecommendedKW, len(out))
	return &Result{Record: rec, HTML: html, PDF: out}, nil
}

func (p *Pipeline) fail(state State, err error) error {
	p.Log.Warn("[pipeline] failed while %s: %v", state, err)
	return err
}

func (p *Pipeline) mode(req Request) render.Mode {
	if req.Mode == "" {
		return render.ModeDetailed
	}
	return req.Mode
}

func (p *Pipeline) backend(req Request) (pdf.Materializer, error) {
	name := req.Backend
	if name == "" {
		name = p.DefaultBackend
	}
	backend, ok := p.Backends[name]
	if !ok {
		return nil, quote.Errorf(quote.KindInvalidInput, "unknown PDF backend %q", name)
	}
	return backend, nil
}
