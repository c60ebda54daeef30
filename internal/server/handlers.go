package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ShaunH66/MachineCostingAppliction/internal/metrics"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/cost"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/energy"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/spec"
	"github.com/ShaunH66/MachineCostingAppliction/pkg/validation"
)

// estimateResponse bundles everything a frontend needs to redraw after an
// input change.
type estimateResponse struct {
	Validation *validation.Report `json:"validation"`
	Usage      *energy.Usage      `json:"usage"`
	Cost       *cost.Report       `json:"cost"`
}

func (s *Server) loadSpec() (*spec.MachineSpec, error) {
	machineSpec, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading project spec: %w", err)
	}
	return machineSpec, nil
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	metrics.IncRequest("spec")

	machineSpec, err := s.loadSpec()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, machineSpec)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	metrics.IncRequest("validation")

	machineSpec, err := s.loadSpec()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, validation.Validate(machineSpec))
}

func (s *Server) handleUsage(w http.ResponseWriter, _ *http.Request) {
	metrics.IncRequest("usage")

	machineSpec, err := s.loadSpec()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, energy.Resolve(machineSpec))
}

func (s *Server) handleCost(w http.ResponseWriter, _ *http.Request) {
	metrics.IncRequest("cost")

	machineSpec, err := s.loadSpec()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	report := validation.Validate(machineSpec)
	if !report.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, estimateResponse{Validation: report})
		return
	}

	usage := energy.Resolve(machineSpec)
	s.writeJSON(w, http.StatusOK, estimateResponse{
		Validation: report,
		Usage:      usage,
		Cost:       cost.Estimate(machineSpec, usage),
	})
}

// handleEstimate computes a one-shot estimate for a spec supplied in the
// request body, the recompute-on-every-edit path for interactive frontends.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	metrics.IncRequest("estimate")

	var machineSpec spec.MachineSpec
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&machineSpec); err != nil {
		metrics.IncEstimate(metrics.EstimateOutcomeBadRequest)
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding spec: %w", err))
		return
	}

	report := validation.Validate(&machineSpec)
	if !report.Valid {
		metrics.IncEstimate(metrics.EstimateOutcomeInvalid)
		s.writeJSON(w, http.StatusUnprocessableEntity, estimateResponse{Validation: report})
		return
	}

	usage := energy.Resolve(&machineSpec)
	metrics.IncEstimate(metrics.EstimateOutcomeOK)
	s.writeJSON(w, http.StatusOK, estimateResponse{
		Validation: report,
		Usage:      usage,
		Cost:       cost.Estimate(&machineSpec, usage),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprint(w, metrics.Render())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).Warn("request failed")
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
