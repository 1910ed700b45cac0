package scheduler

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/agent"
	"github.com/23WH1A0515/Arogyasetu/databases"
)

// Scheduler handles the periodic background jobs that keep the simulated
// inflow feed rolling
type Scheduler struct {
	cron        *cron.Cron
	InflowDB    databases.InflowDatabase
	Agent       agent.Service
	hospitalIDs []string
	rng         *rand.Rand
	instanceID  string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(inflowDB databases.InflowDatabase, agentService agent.Service, hospitalIDs []string, rng *rand.Rand) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		InflowDB:    inflowDB,
		Agent:       agentService,
		hospitalIDs: hospitalIDs,
		rng:         rng,
		instanceID:  uuid.New().String(),
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Append one fresh inflow sample per hospital every hour
	_, err := s.cron.AddFunc("@every 1h", s.appendHourlyInflow)
	if err != nil {
		zap.S().Errorw("failed to register inflow append job", "error", err)
	}

	// Reload the city snapshot so fixture edits show up without a restart
	_, err = s.cron.AddFunc("@every 15m", s.refreshSnapshot)
	if err != nil {
		zap.S().Errorw("failed to register snapshot refresh job", "error", err)
	}

	s.cron.Start()
	zap.S().Infow("inflow scheduler started", "instance", s.instanceID)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Infow("inflow scheduler stopped", "instance", s.instanceID)
}

// appendHourlyInflow writes the current hour's synthetic arrivals for every
// registered hospital
func (s *Scheduler) appendHourlyInflow() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	hour := time.Now().UTC().Truncate(time.Hour)
	records := databases.GenerateMockInflow(s.hospitalIDs, hour, hour, s.rng)
	inserted, err := s.InflowDB.InsertMany(ctx, records)
	if err != nil {
		zap.S().Errorw("failed to append hourly inflow", "error", err, "instance", s.instanceID)
		return
	}
	zap.S().Infow("appended hourly inflow", "records", inserted, "hour", hour, "instance", s.instanceID)
}

// refreshSnapshot reloads the fixtures and drops the memoized reports
func (s *Scheduler) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.Agent.Refresh(ctx); err != nil {
		zap.S().Errorw("failed to refresh city snapshot", "error", err, "instance", s.instanceID)
	}
}
