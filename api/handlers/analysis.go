package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/23WH1A0515/Arogyasetu/agent"
	"github.com/23WH1A0515/Arogyasetu/config"
)

// Analysis exported for testing purposes
type Analysis struct {
	Agent agent.Service
}

// FullAnalysisHandler recomputes both reports and returns them together
// with the inputs they were computed from
func (a Analysis) FullAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.Agent.FullAnalysis(r.Context())
	if err != nil {
		config.ErrorStatus("failed to run full analysis", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(analysis)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
