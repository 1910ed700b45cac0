package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	mocksagent "github.com/23WH1A0515/Arogyasetu/agent/mocks"
	mocksdb "github.com/23WH1A0515/Arogyasetu/databases/mocks"
	"github.com/23WH1A0515/Arogyasetu/models"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func TestUnknownRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)

}

func TestHealthCheckRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_HospitalsRoute(t *testing.T) {
	agentService := &mocksagent.Service{}
	agentService.On("Hospitals").Return([]models.Hospital{
		{ID: "H001", Name: "City General", Capacity: 100, CurrentPatients: 92},
	})

	a.Agent = agentService
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/hospitals", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "City General") {
		t.Errorf("Expected 'City General' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_SurgeRouteWired(t *testing.T) {
	agentService := &mocksagent.Service{}
	agentService.On("SurgeReport", mock.Anything, false).Return(&models.SurgeReport{
		Timestamp: time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC),
		Predictions: []models.SurgePrediction{
			{HospitalID: "H001", HospitalName: "City General", PredictedSurge: 100.0, RiskLevel: models.RiskCritical},
		},
		CitySummary: models.CitySummary{OverallRisk: models.RiskHigh},
		Method:      models.MethodRuleBased,
	}, nil)

	a.Agent = agentService
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/surge", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "rule_based") {
		t.Errorf("Expected 'rule_based' in the reponse. Got '%s'", response.Body.String())
	}
	agentService.AssertCalled(t, "SurgeReport", mock.Anything, false)
}

// the summary route must win over the {hospital_id} pattern
func TestApp_HistorySummaryRoute(t *testing.T) {
	db := &mocksdb.InflowDatabase{}
	db.On("Summary", mock.Anything, 24).Return([]models.InflowSummary{}, nil)

	a.InflowDB = db
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/history/summary", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	db.AssertCalled(t, "Summary", mock.Anything, 24)
	db.AssertNotCalled(t, "HospitalHistory", mock.Anything, "summary", 24)
}

func TestApp_HistoryHospitalRoute(t *testing.T) {
	db := &mocksdb.InflowDatabase{}
	db.On("HospitalHistory", mock.Anything, "H001", 24).Return([]models.InflowRecord{}, nil)

	a.InflowDB = db
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/history/H001", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	db.AssertCalled(t, "HospitalHistory", mock.Anything, "H001", 24)
}
