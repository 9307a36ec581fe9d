package server

import (
	"bytes"
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/lexcalc/dintilhac/internal/bareme"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/lexcalc/dintilhac/internal/store"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"message":"failed to encode response"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Message: message})
}

func methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	ctx.Response.Header.Set("Allow", allow)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
}

// decodeInput reads a calculation input body. Unknown fields are rejected.
func decodeInput(ctx *fasthttp.RequestCtx) (domain.CalculationInput, error) {
	var in domain.CalculationInput
	dec := json.NewDecoder(bytes.NewReader(ctx.PostBody()))
	dec.DisallowUnknownFields()
	err := dec.Decode(&in)
	return in, err
}

// compute runs the engine and writes the error answer when it fails.
func (s *Server) compute(ctx *fasthttp.RequestCtx) (*domain.CalculationResult, bool) {
	in, err := decodeInput(ctx)
	if err != nil {
		s.metrics.Calculations.WithLabelValues("malformed").Inc()
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}

	result, err := s.engine.ComputeContext(ctx, in)
	if err != nil {
		var fe domain.FieldError
		if errors.As(err, &fe) {
			s.metrics.Calculations.WithLabelValues("invalid").Inc()
			writeJSON(ctx, fasthttp.StatusUnprocessableEntity, ErrorResponse{Field: fe.Field(), Message: fe.Error()})
			return nil, false
		}
		s.metrics.Calculations.WithLabelValues("error").Inc()
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return nil, false
	}
	s.metrics.Calculations.WithLabelValues("ok").Inc()
	return result, true
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	result, ok := s.compute(ctx)
	if !ok {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleSaveCase(ctx *fasthttp.RequestCtx, caseID string) {
	if s.store == nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "case store not configured")
		return
	}
	result, ok := s.compute(ctx)
	if !ok {
		return
	}

	rec := domain.NewCaseRecord(caseID, result, s.Now())
	if err := s.store.SaveCalculation(ctx, rec); err != nil {
		s.metrics.StoreErrors.Inc()
		s.log.Error("failed to save calculation", zap.String("case_id", caseID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to save calculation")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, rec)
}

func (s *Server) handleGetCase(ctx *fasthttp.RequestCtx, caseID string) {
	if s.store == nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "case store not configured")
		return
	}
	rec, err := s.store.GetCalculation(ctx, caseID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(ctx, fasthttp.StatusNotFound, "no calculation stored for case "+caseID)
		return
	}
	if err != nil {
		s.metrics.StoreErrors.Inc()
		s.log.Error("failed to load calculation", zap.String("case_id", caseID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to load calculation")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, rec)
}

func (s *Server) handleTables(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, bareme.TakeSnapshot())
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if p, ok := s.store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			writeJSON(ctx, fasthttp.StatusServiceUnavailable, map[string]string{"status": "unavailable", "store": err.Error()})
			return
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}
