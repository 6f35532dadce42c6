package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/greenvolt/solarquote/internal/catalog"
	"github.com/greenvolt/solarquote/internal/logging"
	"github.com/greenvolt/solarquote/internal/notify"
	"github.com/greenvolt/solarquote/internal/pdf"
	"github.com/greenvolt/solarquote/internal/pipeline"
	"github.com/greenvolt/solarquote/internal/pricing"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/render"
)

type stubMaterializer struct {
	fail error
}

func (s *stubMaterializer) Materialize(_ context.Context, _ string, _ pdf.PageOptions) ([]byte, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return []byte("%PDF-stub"), nil
}

func newTestServer(stub *stubMaterializer) *server {
	logger := logging.New()
	pipe := &pipeline.Pipeline{
		Catalog:        catalog.Default(),
		Rates:          pricing.DefaultRates(),
		Renderer:       render.New(),
		Backends:       map[string]pdf.Materializer{"print": stub},
		DefaultBackend: "print",
		Page:           pdf.A4(),
		Log:            logger,
		Now: func() time.Time {
			return time.Date(2025, 3, 14, 11, 30, 45, 0, time.UTC)
		},
	}
	return &server{
		pipe:      pipe,
		catalog:   pipe.Catalog,
		forwarder: notify.New("", logger),
		log:       logger,
	}
}

const validBody = `{
	"customer": {
		"name": "R. Subramanian",
		"phone": "+91 98400 12345",
		"email": "subu@example.com",
		"address": "12, 2nd Cross St, Adyar, Chennai"
	},
	"monthlyBill": 3000,
	"roofAreaSqFt": 500,
	"location": "Chennai",
	"systemType": "grid_tie",
	"panel": "tata_540",
	"inverter": "growatt_5k",
	"wiring": "polycab"
}`

func TestHandleQuotationReturnsPDFAttachment(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	req := httptest.NewRequest("POST", "/api/quotation", strings.NewReader(validBody))
	w := httptest.NewRecorder()
	srv.handleQuotation(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("Content-Type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `attachment; filename="Solar-Quotation-R-Subramanian-2025-03-14.pdf"`) {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if w.Body.String() != "%PDF-stub" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestHandleQuotationMalformedBody(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	req := httptest.NewRequest("POST", "/api/quotation", strings.NewReader("{nope"))
	w := httptest.NewRecorder()
	srv.handleQuotation(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	assertErrorKind(t, w, "invalid_input")
}

func TestHandleQuotationUnknownLocation(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	body := strings.Replace(validBody, `"Chennai"`, `"Atlantis"`, 1)
	req := httptest.NewRequest("POST", "/api/quotation", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleQuotation(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	assertErrorKind(t, w, "unknown_location")
}

func TestHandleQuotationInfeasibleRoof(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	body := strings.Replace(validBody, `"roofAreaSqFt": 500`, `"roofAreaSqFt": 60`, 1)
	req := httptest.NewRequest("POST", "/api/quotation", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleQuotation(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	assertErrorKind(t, w, "infeasible_sizing")
}

func TestHandleQuotationMaterializationFailure(t *testing.T) {
	srv := newTestServer(&stubMaterializer{
		fail: quote.Errorf(quote.KindMaterializationFailed, "render timeout"),
	})

	req := httptest.NewRequest("POST", "/api/quotation", strings.NewReader(validBody))
	w := httptest.NewRecorder()
	srv.handleQuotation(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	assertErrorKind(t, w, "materialization_failed")
}

func TestHandleQuotationPreviewReturnsMarkup(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	req := httptest.NewRequest("POST", "/api/quotation/preview", strings.NewReader(validBody))
	w := httptest.NewRecorder()
	srv.handleQuotationPreview(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Q-20250314-113045") {
		t.Fatal("preview markup is missing the quotation number")
	}
}

func TestHandleWebhookAcksUnconditionally(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	req := httptest.NewRequest("POST", "/api/webhook", strings.NewReader(`whatever, even non-JSON`))
	w := httptest.NewRecorder()
	srv.handleWebhook(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var ack map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
		t.Fatalf("ack is not JSON: %v", err)
	}
	if ack["status"] != "ok" {
		t.Fatalf("ack = %+v", ack)
	}
}

func TestHandleCatalogEndpoints(t *testing.T) {
	srv := newTestServer(&stubMaterializer{})

	w := httptest.NewRecorder()
	srv.handleLocations(w, httptest.NewRequest("GET", "/api/locations", nil))
	var locations []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &locations); err != nil {
		t.Fatalf("locations is not JSON: %v", err)
	}
	if len(locations) == 0 {
		t.Fatal("expected at least one location")
	}

	w = httptest.NewRecorder()
	srv.handleComponents(w, httptest.NewRequest("GET", "/api/components", nil))
	var components map[string][]map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &components); err != nil {
		t.Fatalf("components is not JSON: %v", err)
	}
	for _, key := range []string{"panels", "inverters", "wiring"} {
		if len(components[key]) == 0 {
			t.Fatalf("expected %s in components payload", key)
		}
	}
}

func assertErrorKind(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, w.Body.String())
	}
	if body.Error.Kind != want {
		t.Fatalf("error kind = %q, want %q", body.Error.Kind, want)
	}
	if body.Error.Message == "" {
		t.Fatal("error message must not be empty")
	}
}
