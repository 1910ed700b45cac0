package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/agent"
	"github.com/23WH1A0515/Arogyasetu/config"
)

// Surge exported for testing purposes
type Surge struct {
	Agent agent.Service
}

// SurgePredictionHandler returns the surge report for all hospitals. Pass
// refresh=true to recompute instead of serving the memoized report.
func (s Surge) SurgePredictionHandler(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	zap.S().Debugf("refresh: %v", refresh)

	report, err := s.Agent.SurgeReport(r.Context(), refresh)
	if err != nil {
		config.ErrorStatus("failed to compute surge predictions", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
