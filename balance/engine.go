// Package balance plans patient transfers across the city when some
// hospitals run hot while others sit idle.
package balance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/23WH1A0515/Arogyasetu/models"
)

// Classification thresholds over effective load, the max of current load
// and predicted surge.
const (
	OverloadThreshold      = 85
	UnderutilizedThreshold = 60
)

const (
	// transferTargetLoad is the load a source is drained back toward.
	transferTargetLoad = 75

	minTransferPatients = 1
	maxTransferPatients = 20

	urgentSurgeAt = 90

	criticalAlertSurgeAt = 95
	warningOverloadedAt  = 3
	infoUnderutilizedAt  = 4

	// joinDefaultCapacity stands in when a prediction has no matching
	// hospital record.
	joinDefaultCapacity = 100

	// kmPerDegree flattens lat/lng deltas into an approximate distance.
	kmPerDegree = 111
)

// Plan classifies every prediction and produces transfer recommendations,
// alerts and action items. The caller's hospitals and report are never
// mutated; bed bookkeeping happens on working copies scoped to this call,
// so concurrent plans over separate snapshots are safe.
func Plan(hospitals []models.Hospital, report *models.SurgeReport) *models.BalanceReport {
	var predictions []models.SurgePrediction
	if report != nil {
		predictions = report.Predictions
	}

	byID := make(map[string]models.Hospital, len(hospitals))
	for _, h := range hospitals {
		byID[h.ID] = h
	}

	overloaded := []models.HospitalLoadInfo{}
	underutilized := []models.HospitalLoadInfo{}
	balanced := []models.HospitalLoadInfo{}

	for _, pred := range predictions {
		info := joinLoadInfo(pred, byID)

		effective := math.Max(info.CurrentLoad, info.PredictedSurge)
		switch {
		case effective >= OverloadThreshold:
			overloaded = append(overloaded, info)
		case effective < UnderutilizedThreshold:
			underutilized = append(underutilized, info)
		default:
			balanced = append(balanced, info)
		}
	}

	sortOverloaded(overloaded)
	sortUnderutilized(underutilized)

	transfers := matchTransfers(overloaded, underutilized)

	return &models.BalanceReport{
		Timestamp: time.Now().UTC(),
		Summary: models.BalanceSummary{
			TotalHospitals:       len(predictions),
			OverloadedCount:      len(overloaded),
			UnderutilizedCount:   len(underutilized),
			BalancedCount:        len(balanced),
			TransfersRecommended: len(transfers),
		},
		OverloadedHospitals:     overloaded,
		UnderutilizedHospitals:  underutilized,
		BalancedHospitals:       balanced,
		TransferRecommendations: transfers,
		Alerts:                  buildAlerts(overloaded, underutilized),
		ActionItems:             buildActionItems(overloaded, underutilized),
	}
}

// joinLoadInfo merges a prediction with its registry record. Predictions
// for unknown hospitals get a default capacity so downstream math never
// divides by zero.
func joinLoadInfo(pred models.SurgePrediction, byID map[string]models.Hospital) models.HospitalLoadInfo {
	capacity := joinDefaultCapacity
	patients := 0
	var specialties []string
	if h, ok := byID[pred.HospitalID]; ok {
		capacity = h.Capacity
		if capacity <= 0 {
			capacity = joinDefaultCapacity
		}
		patients = h.CurrentPatients
		specialties = h.Specialties
	}
	if specialties == nil {
		specialties = []string{}
	}
	risk := pred.RiskLevel
	if risk == "" {
		risk = "unknown"
	}
	return models.HospitalLoadInfo{
		HospitalID:      pred.HospitalID,
		HospitalName:    pred.HospitalName,
		CurrentLoad:     pred.CurrentLoad,
		PredictedSurge:  pred.PredictedSurge,
		Capacity:        capacity,
		CurrentPatients: patients,
		AvailableBeds:   capacity - patients,
		Location:        pred.Location,
		RiskLevel:       risk,
		Specialties:     specialties,
	}
}

// Ordering is part of the contract: matching walks these lists in order,
// so ties fall back to hospital id to keep runs reproducible.
func sortOverloaded(infos []models.HospitalLoadInfo) {
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].PredictedSurge != infos[j].PredictedSurge {
			return infos[i].PredictedSurge > infos[j].PredictedSurge
		}
		return infos[i].HospitalID < infos[j].HospitalID
	})
}

func sortUnderutilized(infos []models.HospitalLoadInfo) {
	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].AvailableBeds != infos[j].AvailableBeds {
			return infos[i].AvailableBeds > infos[j].AvailableBeds
		}
		return infos[i].HospitalID < infos[j].HospitalID
	})
}

// matchTransfers runs the single-pass greedy matching. Each source is
// visited once in sorted order and claims the nearest destination that
// still has room; destination beds are decremented in place, shaping what
// later sources can take. A source with no qualifying destination simply
// produces no transfer.
func matchTransfers(overloaded, underutilized []models.HospitalLoadInfo) []models.TransferRecommendation {
	transfers := []models.TransferRecommendation{}

	for _, source := range overloaded {
		excess := source.PredictedSurge - transferTargetLoad
		patients := int(math.Round(excess / 100 * float64(source.Capacity)))
		if patients < minTransferPatients {
			patients = minTransferPatients
		}
		if patients > maxTransferPatients {
			patients = maxTransferPatients
		}

		best := -1
		bestDistance := math.Inf(1)
		for i := range underutilized {
			if underutilized[i].AvailableBeds < patients {
				continue
			}
			if d := distanceKm(source.Location, underutilized[i].Location); d < bestDistance {
				bestDistance = d
				best = i
			}
		}
		if best < 0 {
			continue
		}

		dest := &underutilized[best]
		priority := models.PriorityRecommended
		if source.PredictedSurge >= urgentSurgeAt {
			priority = models.PriorityUrgent
		}

		transfers = append(transfers, models.TransferRecommendation{
			FromHospital: models.TransferSource{
				ID:             source.HospitalID,
				Name:           source.HospitalName,
				CurrentLoad:    source.CurrentLoad,
				PredictedSurge: source.PredictedSurge,
			},
			ToHospital: models.TransferDestination{
				ID:            dest.HospitalID,
				Name:          dest.HospitalName,
				CurrentLoad:   dest.CurrentLoad,
				AvailableBeds: dest.AvailableBeds,
			},
			PatientsToTransfer: patients,
			DistanceKm:         math.Round(bestDistance*100) / 100,
			Priority:           priority,
			Reason:             fmt.Sprintf("Source hospital at %.1f%% predicted load", source.PredictedSurge),
		})
		dest.AvailableBeds -= patients
	}
	return transfers
}

func distanceKm(a, b models.Location) float64 {
	latDiff := a.Lat - b.Lat
	lngDiff := a.Lng - b.Lng
	return math.Sqrt(latDiff*latDiff+lngDiff*lngDiff) * kmPerDegree
}

func buildAlerts(overloaded, underutilized []models.HospitalLoadInfo) []models.Alert {
	alerts := []models.Alert{}

	var critical []string
	for _, h := range overloaded {
		if h.PredictedSurge >= criticalAlertSurgeAt {
			critical = append(critical, h.HospitalName)
		}
	}
	if len(critical) > 0 {
		alerts = append(alerts, models.Alert{
			Level:          models.AlertCritical,
			Title:          "Critical Capacity Alert",
			Message:        fmt.Sprintf("%d hospital(s) approaching maximum capacity", len(critical)),
			Hospitals:      critical,
			ActionRequired: true,
		})
	}
	if len(overloaded) >= warningOverloadedAt {
		alerts = append(alerts, models.Alert{
			Level:          models.AlertWarning,
			Title:          "City-wide High Load",
			Message:        fmt.Sprintf("%d hospitals are overloaded. Consider city-wide emergency protocols.", len(overloaded)),
			ActionRequired: true,
		})
	}
	if len(underutilized) >= infoUnderutilizedAt {
		alerts = append(alerts, models.Alert{
			Level:   models.AlertInfo,
			Title:   "Capacity Available",
			Message: fmt.Sprintf("%d hospitals have significant spare capacity for transfers.", len(underutilized)),
		})
	}
	return alerts
}

func buildActionItems(overloaded, underutilized []models.HospitalLoadInfo) []string {
	actions := []string{}

	if len(overloaded) > 0 {
		actions = append(actions, fmt.Sprintf("Initiate patient transfers from %d overloaded hospitals", len(overloaded)))
	}
	for _, h := range overloaded {
		if h.PredictedSurge >= urgentSurgeAt {
			actions = append(actions, "Activate emergency overflow protocols at critical facilities")
			break
		}
	}
	if len(underutilized) > 0 {
		actions = append(actions, fmt.Sprintf("Notify %d underutilized hospitals to prepare for incoming transfers", len(underutilized)))
	}
	if len(overloaded) > len(underutilized) {
		actions = append(actions, "Consider activating reserve medical facilities")
	}
	if len(overloaded) == 0 && len(underutilized) == 0 {
		actions = append(actions, "System operating normally - continue monitoring")
	}
	return actions
}
