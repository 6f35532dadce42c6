// Command solarquote generates a quotation PDF without the HTTP server:
// the same sizing, costing and rendering pipeline, driven from flags.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/config"
	"github.com/greenvolt/solarquote/internal/logging"
	"github.com/greenvolt/solarquote/internal/pdf"
	"github.com/greenvolt/solarquote/internal/pipeline"
	"github.com/greenvolt/solarquote/internal/pricing"
	"github.com/greenvolt/solarquote/internal/quotation"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/render"
)

// Exit codes for scripting.
const (
	exitInputError       = 2
	exitMaterializeError = 3
)

func main() {
	app := &cli.App{
		Name:  "solarquote",
		Usage: "generate rooftop solar quotation PDFs",
		Commands: []*cli.Command{
			generateCommand(),
			locationsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "compute a quotation and write the PDF to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true, Usage: "customer name"},
			&cli.StringFlag{Name: "phone", Required: true, Usage: "customer phone"},
			&cli.StringFlag{Name: "email", Required: true, Usage: "customer email"},
			&cli.StringFlag{Name: "address", Required: true, Usage: "site address"},
			&cli.Float64Flag{Name: "bill", Required: true, Usage: "monthly electricity bill in ₹"},
			&cli.Float64Flag{Name: "roof-area", Required: true, Usage: "available roof area in sq ft"},
			&cli.StringFlag{Name: "location", Required: true, Usage: "serviced location name"},
			&cli.StringFlag{Name: "system-type", Value: "grid_tie", Usage: "grid_tie, hybrid or off_grid"},
			&cli.StringFlag{Name: "panel", Value: "tata_540", Usage: "panel brand id"},
			&cli.StringFlag{Name: "inverter", Value: "growatt_5k", Usage: "inverter brand id"},
			&cli.StringFlag{Name: "wiring", Value: "polycab", Usage: "wiring brand id"},
			&cli.Float64Flag{Name: "override-total", Usage: "manual total cost superseding the computed sum"},
			&cli.StringFlag{Name: "mode", Value: string(render.ModeDetailed), Usage: "detailed or sample"},
			&cli.StringFlag{Name: "backend", Value: "print", Usage: "print or raster"},
			&cli.StringFlag{Name: "out", Value: "", Usage: "output file (default: derived from customer and date)"},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	logger := logging.New()
	cfg := config.Load()

	browser := pdf.NewBrowser(pdf.Options{
		ChromeBin: cfg.ChromeBin,
		Timeout:   time.Duration(cfg.RenderTimeoutSec) * time.Second,
		MaxPages:  1,
	}, logger)
	defer browser.Close()

	pipe := &pipeline.Pipeline{
		Catalog:  catalog.Default(),
		Renderer: render.New(),
		Rates: pricing.Rates{
			PricePerUnit:     cfg.PricePerUnit,
			SubsidyCap:       cfg.SubsidyCap,
			InstallRatePerKW: cfg.InstallRatePerKW,
			MiscRatePerKW:    cfg.MiscRatePerKW,
			OffsetPerKW:      cfg.OffsetPerKW,
		},
		Backends: map[string]pdf.Materializer{
			"print":  pdf.NewPrintBackend(browser),
			"raster": pdf.NewRasterBackend(browser),
		},
		DefaultBackend: "print",
		Page:           pdf.A4(),
		Log:            logger,
	}

	req := pipeline.Request{
		Customer: quotation.Customer{
			Name:    c.String("name"),
			Phone:   c.String("phone"),
			Email:   c.String("email"),
			Address: c.String("address"),
		},
		MonthlyBill:       c.Float64("bill"),
		RoofAreaSqFt:      c.Float64("roof-area"),
		Location:          c.String("location"),
		SystemType:        c.String("system-type"),
		Panel:             c.String("panel"),
		Inverter:          c.String("inverter"),
		Wiring:            c.String("wiring"),
		TotalCostOverride: c.Float64("override-total"),
		Mode:              render.Mode(c.String("mode")),
		Backend:           c.String("backend"),
	}

	res, err := pipe.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = res.Record.Filename()
	}
	if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
		return err
	}

	rec := res.Record
	fmt.Printf("%s: %d kW system, net payable ₹ %s → %s\n",
		rec.Number, rec.Sizing.RecommendedKW, render.FormatINR(rec.Cost.NetPayable), out)
	return nil
}

func locationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "locations",
		Usage: "list serviced locations and their irradiance",
		Action: func(c *cli.Context) error {
			for _, loc := range catalog.Default().Locations {
				fmt.Printf("%-12s %7.4f, %8.4f  %.1f sun hrs/day\n",
					loc.Name, loc.Latitude, loc.Longitude, loc.SunHours)
			}
			return nil
		},
	}
}

func exitCode(err error) int {
	switch quote.KindOf(err) {
	case quote.KindMaterializationFailed:
		return exitMaterializeError
	case quote.KindInvalidInput, quote.KindUnknownLocation,
		quote.KindInvalidSelection, quote.KindInfeasibleSizing,
		quote.KindDivisionUndefined:
		return exitInputError
	default:
		return 1
	}
}
