package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cytostats/adapters/source"
	"cytostats/domain/core"
	"cytostats/domain/cyto"
	"cytostats/domain/stats"
)

// samplePayload is one inline sample: row-major events over named channels.
type samplePayload struct {
	Name     string      `json:"name"`
	Channels []string    `json:"channels"`
	Events   [][]float64 `json:"events"`
}

type computeRequest struct {
	Statistic     string          `json:"statistic"`
	Long          bool            `json:"long"`
	Channels      []string        `json:"channels,omitempty"`
	DensitySmooth float64         `json:"density_smooth,omitempty"`
	Samples       []samplePayload `json:"samples"`
}

type computeResponse struct {
	RunID     core.ID         `json:"run_id"`
	Statistic stats.Kind      `json:"statistic"`
	Columns   []string        `json:"columns"`
	Rows      [][]string      `json:"rows"`
	Warnings  []stats.Warning `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListStatistics(w http.ResponseWriter, _ *http.Request) {
	kinds := stats.Kinds()
	out := make([]map[string]string, len(kinds))
	for i, k := range kinds {
		out[i] = map[string]string{
			"kind":  string(k),
			"label": k.Label(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Samples) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no samples supplied"})
		return
	}

	samples := make([]*cyto.Sample, 0, len(req.Samples))
	for _, p := range req.Samples {
		smp, err := cyto.NewSample(p.Name, p.Channels, p.Events)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		samples = append(samples, smp)
	}
	set, err := source.NewSampleSet(samples...)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rs, err := s.service.Compute(r.Context(), set, stats.Request{
		Statistic:     req.Statistic,
		Channels:      req.Channels,
		DensitySmooth: req.DensitySmooth,
		Long:          req.Long,
	})
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	run := stats.NewRun(rs, req.Long)
	writeJSON(w, http.StatusOK, computeResponse{
		RunID:     run.ID,
		Statistic: run.Statistic,
		Columns:   run.Table.Columns,
		Rows:      run.Table.Rows,
		Warnings:  run.Warnings,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrUnsupportedStatistic),
		core.IsInvalidInput(err):
		return http.StatusBadRequest
	case core.IsMissing(err):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
