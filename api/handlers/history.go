package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/api"
	"github.com/23WH1A0515/Arogyasetu/config"
	"github.com/23WH1A0515/Arogyasetu/databases"
	"github.com/23WH1A0515/Arogyasetu/models"
)

const (
	defaultHistoryLimit = 200
	maxHistoryLimit     = 1000
	defaultWindowHours  = 24
)

// History exported for testing purposes
type History struct {
	DB databases.InflowDatabase
}

// InflowHistoryHandler returns the latest inflow records across all hospitals
func (h History) InflowHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		zap.S().Warnf("limit not set, using default of %v, err: %v", defaultHistoryLimit, err)
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	page := getPage(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.History(ctx, limit, page)
	if err != nil {
		config.ErrorStatus("failed to get inflow history", http.StatusNotFound, w, err)
		return
	}

	// Because the frontend requires that the data elements inside models.InflowRecord exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.InflowRecord{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// InflowSummaryHandler returns per-hospital arrival totals over a window
func (h History) InflowSummaryHandler(w http.ResponseWriter, r *http.Request) {
	hours := windowHours(r)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.Summary(ctx, hours)
	if err != nil {
		config.ErrorStatus("failed to get inflow summary", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.InflowSummary{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HospitalInflowHistoryHandler returns one hospital's inflow records over a
// window, oldest first
func (h History) HospitalInflowHistoryHandler(w http.ResponseWriter, r *http.Request) {
	hospitalID := mux.Vars(r)["hospital_id"]
	hours := windowHours(r)

	zap.S().Debugf("hospital_id: %v hours: %v", hospitalID, hours)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := h.DB.HospitalHistory(ctx, hospitalID, hours)
	if err != nil {
		config.ErrorStatus("failed to get hospital inflow history", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.InflowRecord{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func windowHours(r *http.Request) int {
	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil || hours <= 0 {
		return defaultWindowHours
	}
	return hours
}

func getPage(r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		return 0
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		zap.S().Errorf("error parsing page number: %v", err)
		return 0
	}
	if page < 0 {
		zap.S().Warnf("cannot process negative page number. Got: %v", page)
		return 0
	}
	return page
}
