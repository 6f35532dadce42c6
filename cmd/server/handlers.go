package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/greenvolt/solarquote/internal/pipeline"
	"github.com/greenvolt/solarquote/internal/quotation"
	"github.com/greenvolt/solarquote/internal/quote"
	"github.com/greenvolt/solarquote/internal/render"
)

const maxRequestBody = 1 << 20 // 1 MiB

// quotationRequest is the JSON body of POST /api/quotation.
type quotationRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	} `json:"customer"`

	MonthlyBill  float64 `json:"monthlyBill"`
	RoofAreaSqFt float64 `json:"roofAreaSqFt"`
	Location     string  `json:"location"`
	SystemType   string  `json:"systemType"`

	Panel    string `json:"panel"`
	Inverter string `json:"inverter"`
	Wiring   string `json:"wiring"`

	TotalCostOverride float64 `json:"totalCostOverride"`
	Mode              string  `json:"mode"`
	Backend           string  `json:"backend"`
}

func (s *server) decodeQuotationRequest(r *http.Request) (pipeline.Request, error) {
	var body quotationRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	if err := dec.Decode(&body); err != nil {
		return pipeline.Request{}, quote.Wrap(quote.KindInvalidInput, err, "malformed request body")
	}

	return pipeline.Request{
		Customer: quotation.Customer{
			Name:    body.Customer.Name,
			Phone:   body.Customer.Phone,
			Email:   body.Customer.Email,
			Address: body.Customer.Address,
		},
		MonthlyBill:       body.MonthlyBill,
		RoofAreaSqFt:      body.RoofAreaSqFt,
		Location:          body.Location,
		SystemType:        body.SystemType,
		Panel:             body.Panel,
		Inverter:          body.Inverter,
		Wiring:            body.Wiring,
		TotalCostOverride: body.TotalCostOverride,
		Mode:              render.Mode(body.Mode),
		Backend:           body.Backend,
	}, nil
}

func (s *server) handleQuotation(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeQuotationRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.pipe.Generate(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.Record.Filename()+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.PDF); err != nil {
		s.log.Warn("failed to write PDF response: %v", err)
	}
}

func (s *server) handleQuotationPreview(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeQuotationRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	_, html, err := s.pipe.RenderHTML(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handleWebhook accepts any payload unconditionally, acknowledges it,
// and forwards it downstream without caring about the outcome.
func (s *server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		body = nil
	}

	if len(body) > 0 {
		s.forwarder.Forward(body)
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "up"})
}

func (s *server) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Locations)
}

func (s *server) handleSystemTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.SystemTypes)
}

func (s *server) handleComponents(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"panels":    s.catalog.Panels,
		"inverters": s.catalog.Inverters,
		"wiring":    s.catalog.Wiring,
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Warn("failed to encode response: %v", err)
	}
}

type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	kind := quote.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case quote.KindInvalidInput:
		status = http.StatusBadRequest
	case quote.KindUnknownLocation, quote.KindInvalidSelection,
		quote.KindInfeasibleSizing, quote.KindDivisionUndefined:
		status = http.StatusUnprocessableEntity
	case quote.KindMaterializationFailed:
		status = http.StatusBadGateway
	}

	var body errorBody
	body.Error.Kind = string(kind)
	if body.Error.Kind == "" {
		body.Error.Kind = "internal"
	}
	body.Error.Message = err.Error()

	s.writeJSON(w, status, body)
}
