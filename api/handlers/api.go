package handlers

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/agent"
	"github.com/23WH1A0515/Arogyasetu/api"
	"github.com/23WH1A0515/Arogyasetu/config"
	"github.com/23WH1A0515/Arogyasetu/databases"
	"github.com/23WH1A0515/Arogyasetu/dataloader"
	"github.com/23WH1A0515/Arogyasetu/models"
	"github.com/23WH1A0515/Arogyasetu/surge"
)

// computeTimeout bounds the prediction and balancing endpoints
const computeTimeout = 15 * time.Second

// App stores the router, db connection and the agent, so they can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Agent    agent.Service
	InflowDB databases.InflowDatabase
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.RequestLoggingMiddleware)

	h := Hospital{Agent: a.Agent}
	s := Surge{Agent: a.Agent}
	lb := Balance{Agent: a.Agent}
	an := Analysis{Agent: a.Agent}
	hist := History{DB: a.InflowDB}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	compute := api.TimeoutMiddleware(computeTimeout)

	apiCreate.Handle("/hospitals", http.HandlerFunc(h.HospitalsHandler)).Methods("GET")
	apiCreate.Handle("/hospitals/{hospital_id}/status", compute(http.HandlerFunc(h.HospitalStatusByIDHandler))).Methods("GET")

	apiCreate.Handle("/surge", compute(http.HandlerFunc(s.SurgePredictionHandler))).Methods("GET")
	apiCreate.Handle("/balance", compute(http.HandlerFunc(lb.LoadBalanceHandler))).Methods("GET")
	apiCreate.Handle("/analysis", compute(http.HandlerFunc(an.FullAnalysisHandler))).Methods("GET")

	apiCreate.Handle("/history", http.HandlerFunc(hist.InflowHistoryHandler)).Methods("GET")
	apiCreate.Handle("/history/summary", http.HandlerFunc(hist.InflowSummaryHandler)).Methods("GET")
	apiCreate.Handle("/history/{hospital_id}", http.HandlerFunc(hist.HospitalInflowHistoryHandler)).Methods("GET")

	// dashboard hosted at "/"
	r.PathPrefix("/").Handler(http.StripPrefix("/", http.FileServer(http.Dir("./static/"))))
	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("arogyasetu-api has connected to the database")

	a.InflowDB = databases.NewInflowDatabase(a.dbHelper)

	loader := dataloader.New(a.Config.DataDir)
	hospitals, err := loader.Hospitals()
	if err != nil {
		zap.S().With(err).Error("failed to read hospital registry")
		return err
	}
	ids := make([]string, 0, len(hospitals))
	for _, h := range hospitals {
		ids = append(ids, h.ID)
	}

	if !a.Config.SeedDisabled {
		// seeding failures leave the trend on its default, the API stays up
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if _, err := databases.EnsureSeeded(context.Background(), a.InflowDB, ids, rng); err != nil {
			zap.S().Warnw("failed to seed inflow history", "error", err)
		}
	}

	predictor := surge.NewPredictor(a.Config.OpenAIKey, a.Config.OpenAIBaseUrl, a.Config.OpenAIModel)
	ag := agent.New(loader, a.InflowDB, predictor)
	if err := ag.Refresh(context.Background()); err != nil {
		zap.S().With(err).Error("failed to load city snapshot")
		return err
	}
	a.Agent = ag

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
