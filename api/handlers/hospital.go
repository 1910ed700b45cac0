package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/agent"
	"github.com/23WH1A0515/Arogyasetu/config"
	"github.com/23WH1A0515/Arogyasetu/models"
)

// Hospital exported for testing purposes
type Hospital struct {
	Agent agent.Service
}

// HospitalsHandler returns the full hospital registry
func (h Hospital) HospitalsHandler(w http.ResponseWriter, r *http.Request) {
	dbResp := h.Agent.Hospitals()

	// Because the frontend requires that the data elements inside models.Hospital exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Hospital{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HospitalStatusByIDHandler returns one hospital joined with its prediction
// and any transfers touching it
func (h Hospital) HospitalStatusByIDHandler(w http.ResponseWriter, r *http.Request) {
	hospitalID := mux.Vars(r)["hospital_id"]

	zap.S().Debugf("hospital_id: %v", hospitalID)

	status, err := h.Agent.HospitalStatus(r.Context(), hospitalID)
	if err != nil {
		if errors.Is(err, agent.ErrHospitalNotFound) {
			config.ErrorStatus("failed to get hospital by ID", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get hospital status", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(status)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
