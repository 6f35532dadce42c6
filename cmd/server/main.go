package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/config"
	"github.com/greenvolt/solarquote/internal/logging"
	"github.com/greenvolt/solarquote/internal/notify"
	"github.com/greenvolt/solarquote/internal/pdf"
	"github.com/greenvolt/solarquote/internal/pipeline"
	"github.com/greenvolt/solarquote/internal/pricing"
	"github.com/greenvolt/solarquote/internal/render"
)

type server struct {
	pipe      *pipeline.Pipeline
	catalog   *catalog.Catalog
	forwarder *notify.Forwarder
	log       *logging.Logger
}

func main() {
	logger := logging.New()
	cfg := config.Load()

	browser := pdf.NewBrowser(pdf.Options{
		ChromeBin: cfg.ChromeBin,
		Timeout:   time.Duration(cfg.RenderTimeoutSec) * time.Second,
		MaxPages:  cfg.MaxConcurrentRenders,
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

	forwarder := notify.New(cfg.WebhookForwardURL, logger)
	defer forwarder.Wait()

	srv := &server{
		pipe:      pipe,
		catalog:   pipe.Catalog,
		forwarder: forwarder,
		log:       logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", srv.handleHealth)
	r.Post("/api/quotation", srv.handleQuotation)
	r.Post("/api/quotation/preview", srv.handleQuotationPreview)
	r.Post("/api/webhook", srv.handleWebhook)
	r.Get("/api/locations", srv.handleLocations)
	r.Get("/api/system-types", srv.handleSystemTypes)
	r.Get("/api/components", srv.handleComponents)

	addr := ":" + cfg.Port
	logger.Info("listening on %s (render timeout %ds, %d concurrent pages)",
		addr, cfg.RenderTimeoutSec, cfg.MaxConcurrentRenders)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server stopped: %v", err)
	}
}
