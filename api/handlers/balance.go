package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/agent"
	"github.com/23WH1A0515/Arogyasetu/config"
)

// Balance exported for testing purposes
type Balance struct {
	Agent agent.Service
}

// LoadBalanceHandler returns the transfer plan for the city. Pass
// refresh=true to re-plan instead of serving the memoized report.
func (b Balance) LoadBalanceHandler(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	zap.S().Debugf("refresh: %v", refresh)

	report, err := b.Agent.BalanceReport(r.Context(), refresh)
	if err != nil {
		config.ErrorStatus("failed to compute load balance", http.StatusInternalServerError, w, err)
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
