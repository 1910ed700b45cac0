// Package agent orchestrates the city snapshot, the surge predictor and the
// load balancer, and memoizes the computed reports between refreshes.
package agent

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/balance"
	"github.com/23WH1A0515/Arogyasetu/dataloader"
	"github.com/23WH1A0515/Arogyasetu/models"
	"github.com/23WH1A0515/Arogyasetu/surge"
)

const inflowWindowHours = 24

// ErrHospitalNotFound is returned when a status request names an unknown hospital
var ErrHospitalNotFound = errors.New("hospital not found")

// Service contains the methods the API handlers depend on
type Service interface {
	Hospitals() []models.Hospital
	HospitalStatus(ctx context.Context, hospitalID string) (*models.HospitalStatus, error)
	SurgeReport(ctx context.Context, force bool) (*models.SurgeReport, error)
	BalanceReport(ctx context.Context, force bool) (*models.BalanceReport, error)
	FullAnalysis(ctx context.Context) (*models.FullAnalysis, error)
	Refresh(ctx context.Context) error
}

// InflowSource supplies recent arrival records for the trend window
type InflowSource interface {
	Recent(ctx context.Context, hours int) ([]models.InflowRecord, error)
}

// Agent holds the loaded city snapshot and the memoized reports. Reports are
// computed lazily and reused until a refresh drops them.
type Agent struct {
	loader    *dataloader.Loader
	inflow    InflowSource
	predictor surge.Predictor

	mu            sync.RWMutex
	hospitals     []models.Hospital
	events        []models.Event
	pollution     *models.PollutionReading
	surgeReport   *models.SurgeReport
	balanceReport *models.BalanceReport
}

// New initializes a new agent. Call Refresh before serving so the snapshot
// is populated.
func New(loader *dataloader.Loader, inflow InflowSource, predictor surge.Predictor) *Agent {
	return &Agent{loader: loader, inflow: inflow, predictor: predictor}
}

// Refresh reloads the snapshot fixtures and drops the memoized reports so
// the next request recomputes against current data
func (a *Agent) Refresh(ctx context.Context) error {
	hospitals, err := a.loader.Hospitals()
	if err != nil {
		return err
	}
	events, err := a.loader.Events()
	if err != nil {
		return err
	}
	pollution, err := a.loader.Pollution()
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.hospitals = hospitals
	a.events = events
	a.pollution = pollution
	a.surgeReport = nil
	a.balanceReport = nil
	a.mu.Unlock()

	zap.S().Infow("city snapshot refreshed",
		"hospitals", len(hospitals),
		"events", len(events),
		"average_aqi", pollution.AverageAQI,
	)
	return nil
}

// Hospitals returns a copy of the loaded hospital registry
func (a *Agent) Hospitals() []models.Hospital {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]models.Hospital{}, a.hospitals...)
}

// SurgeReport returns the memoized prediction set, computing it on first
// use. force recomputes and invalidates the balance plan along with it.
func (a *Agent) SurgeReport(ctx context.Context, force bool) (*models.SurgeReport, error) {
	if !force {
		a.mu.RLock()
		cached := a.surgeReport
		a.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !force && a.surgeReport != nil {
		return a.surgeReport, nil
	}
	return a.computeSurgeLocked(ctx)
}

func (a *Agent) computeSurgeLocked(ctx context.Context) (*models.SurgeReport, error) {
	var inflow []models.InflowRecord
	if a.inflow != nil {
		records, err := a.inflow.Recent(ctx, inflowWindowHours)
		if err != nil {
			zap.S().Warnw("inflow history unavailable, predicting without trend data", "error", err)
		} else {
			inflow = records
		}
	}

	report, err := a.predictor.Predict(ctx, surge.Inputs{
		Hospitals: a.hospitals,
		Events:    a.events,
		Pollution: a.pollution,
		Inflow:    inflow,
	})
	if err != nil {
		return nil, err
	}

	a.surgeReport = report
	// the plan was drawn against the previous predictions
	a.balanceReport = nil
	return report, nil
}

// BalanceReport returns the memoized transfer plan, planning against the
// current surge report. force re-plans.
func (a *Agent) BalanceReport(ctx context.Context, force bool) (*models.BalanceReport, error) {
	if !force {
		a.mu.RLock()
		cached := a.balanceReport
		a.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !force && a.balanceReport != nil {
		return a.balanceReport, nil
	}

	surgeReport := a.surgeReport
	if surgeReport == nil {
		var err error
		surgeReport, err = a.computeSurgeLocked(ctx)
		if err != nil {
			return nil, err
		}
	}

	report := balance.Plan(a.hospitals, surgeReport)
	a.balanceReport = report
	return report, nil
}

// HospitalStatus joins one hospital with its prediction and any transfers
// touching it
func (a *Agent) HospitalStatus(ctx context.Context, hospitalID string) (*models.HospitalStatus, error) {
	a.mu.RLock()
	var hospital *models.Hospital
	for i := range a.hospitals {
		if a.hospitals[i].ID == hospitalID {
			h := a.hospitals[i]
			hospital = &h
			break
		}
	}
	a.mu.RUnlock()

	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	surgeReport, err := a.SurgeReport(ctx, false)
	if err != nil {
		return nil, err
	}
	balanceReport, err := a.BalanceReport(ctx, false)
	if err != nil {
		return nil, err
	}

	status := &models.HospitalStatus{
		Hospital:          *hospital,
		IncomingTransfers: []models.TransferRecommendation{},
		OutgoingTransfers: []models.TransferRecommendation{},
	}
	for i := range surgeReport.Predictions {
		if surgeReport.Predictions[i].HospitalID == hospitalID {
			p := surgeReport.Predictions[i]
			status.Prediction = &p
			break
		}
	}
	for _, tr := range balanceReport.TransferRecommendations {
		switch hospitalID {
		case tr.ToHospital.ID:
			status.IncomingTransfers = append(status.IncomingTransfers, tr)
		case tr.FromHospital.ID:
			status.OutgoingTransfers = append(status.OutgoingTransfers, tr)
		}
	}
	return status, nil
}

// FullAnalysis recomputes both reports and bundles them with the inputs
// they were computed from
func (a *Agent) FullAnalysis(ctx context.Context) (*models.FullAnalysis, error) {
	surgeReport, err := a.SurgeReport(ctx, true)
	if err != nil {
		return nil, err
	}
	// the forced surge recompute dropped the plan, so this re-plans
	balanceReport, err := a.BalanceReport(ctx, false)
	if err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return &models.FullAnalysis{
		SurgePredictions: surgeReport,
		LoadBalance:      balanceReport,
		Hospitals:        append([]models.Hospital{}, a.hospitals...),
		Pollution:        a.pollution,
		Events:           append([]models.Event{}, a.events...),
	}, nil
}
