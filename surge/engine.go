// Package surge scores hospital load and predicts near-term surge
// intensity for every facility in a city snapshot.
package surge

import (
	"fmt"
	"math"
	"time"

	"github.com/23WH1A0515/Arogyasetu/models"
)

// Pollution bands and the load factor each one adds.
const (
	aqiSevere   = 150
	aqiHigh     = 100
	aqiElevated = 50

	pollutionFactorSevere   = 15
	pollutionFactorHigh     = 10
	pollutionFactorElevated = 5
)

const (
	// defaultAQI stands in when no pollution feed is available.
	defaultAQI = 100

	// eventImpactWeight is added per upcoming event, city-wide.
	eventImpactWeight = 5

	// inflowWindow is how many of a hospital's newest inflow samples feed
	// the trend. defaultInflowTrend covers hospitals with no history.
	inflowWindow       = 24
	inflowTrendCap     = 20
	defaultInflowTrend = 5

	highInflowThreshold    = 10
	highOccupancyThreshold = 70

	// occupancy above this adds the overflow-protocol recommendation
	overflowOccupancyAt = 70
)

// Per-hospital risk thresholds against predicted surge, and city-wide
// risk thresholds against overall occupancy.
const (
	riskCriticalAt = 85
	riskHighAt     = 70
	riskMediumAt   = 50

	cityRiskCriticalAt = 80
	cityRiskHighAt     = 65
	cityRiskMediumAt   = 50
)

// Surge factor tags attached to predictions.
const (
	FactorPollution     = "pollution"
	FactorEvents        = "events"
	FactorHighInflow    = "high_inflow"
	FactorHighOccupancy = "high_occupancy"
)

// Inputs is the city snapshot a prediction runs over. Inflow must be
// supplied sorted by timestamp ascending per hospital; the trend window
// takes the trailing records in input order, so an unsorted history
// silently shifts which samples count.
type Inputs struct {
	Hospitals []models.Hospital
	Events    []models.Event
	Pollution *models.PollutionReading
	Inflow    []models.InflowRecord
}

// Evaluate runs the deterministic scoring rules over the snapshot.
// Malformed hospital records are skipped and surfaced in the report
// diagnostics; an empty snapshot yields an empty, well-formed report.
func Evaluate(in Inputs) *models.SurgeReport {
	avgAQI := float64(defaultAQI)
	if in.Pollution != nil {
		avgAQI = in.Pollution.AverageAQI
	}
	pollution := pollutionFactor(avgAQI)

	activeEvents := countUpcoming(in.Events)
	eventImpact := float64(activeEvents * eventImpactWeight)

	predictions := []models.SurgePrediction{}
	var diagnostics []models.ValidationError
	totalCapacity := 0
	totalOccupied := 0

	for _, h := range in.Hospitals {
		if verr := h.Validate(); verr != nil {
			diagnostics = append(diagnostics, *verr)
			continue
		}
		totalCapacity += h.Capacity
		totalOccupied += h.CurrentPatients

		baseLoad := float64(h.CurrentPatients) / float64(h.Capacity) * 100
		trend := inflowTrend(h.ID, in.Inflow)

		predicted := round1(math.Min(100, baseLoad+pollution+eventImpact+trend))

		factors := []string{}
		if pollution > 0 {
			factors = append(factors, FactorPollution)
		}
		if eventImpact > 0 {
			factors = append(factors, FactorEvents)
		}
		if trend > highInflowThreshold {
			factors = append(factors, FactorHighInflow)
		}
		if baseLoad > highOccupancyThreshold {
			factors = append(factors, FactorHighOccupancy)
		}

		predictions = append(predictions, models.SurgePrediction{
			HospitalID:     h.ID,
			HospitalName:   h.Name,
			CurrentLoad:    round1(baseLoad),
			PredictedSurge: predicted,
			SurgeFactors:   factors,
			RiskLevel:      riskLevel(predicted),
			Location:       h.Location,
		})
	}

	occupancy := 0.0
	if totalCapacity > 0 {
		occupancy = float64(totalOccupied) / float64(totalCapacity) * 100
	}

	recommendations := []string{}
	if avgAQI > aqiHigh {
		recommendations = append(recommendations, "High pollution alert - prepare for respiratory emergencies")
	}
	if activeEvents > 0 {
		recommendations = append(recommendations, fmt.Sprintf("%d upcoming events - standby for crowd-related emergencies", activeEvents))
	}
	if occupancy > overflowOccupancyAt {
		recommendations = append(recommendations, "Consider activating overflow protocols")
	}

	return &models.SurgeReport{
		Timestamp:   time.Now().UTC(),
		Predictions: predictions,
		CitySummary: models.CitySummary{
			OverallRisk:      cityRisk(occupancy),
			TotalCapacity:    totalCapacity,
			TotalOccupied:    totalOccupied,
			OverallOccupancy: round1(occupancy),
			AverageAQI:       avgAQI,
			ActiveEvents:     activeEvents,
			Recommendations:  recommendations,
		},
		Method:      models.MethodRuleBased,
		Diagnostics: diagnostics,
	}
}

// inflowTrend doubles the mean arrival count over the hospital's trailing
// window, capped. Hospitals with no history get the fixed default.
func inflowTrend(hospitalID string, history []models.InflowRecord) float64 {
	var counts []int
	for _, rec := range history {
		if rec.HospitalID == hospitalID {
			counts = append(counts, rec.Count)
		}
	}
	if len(counts) == 0 {
		return defaultInflowTrend
	}
	if len(counts) > inflowWindow {
		counts = counts[len(counts)-inflowWindow:]
	}
	sum := 0
	for _, c := range counts {
		sum += c
	}
	avg := float64(sum) / float64(len(counts))
	return math.Min(avg*2, inflowTrendCap)
}

func pollutionFactor(aqi float64) float64 {
	switch {
	case aqi > aqiSevere:
		return pollutionFactorSevere
	case aqi > aqiHigh:
		return pollutionFactorHigh
	case aqi > aqiElevated:
		return pollutionFactorElevated
	default:
		return 0
	}
}

func countUpcoming(events []models.Event) int {
	n := 0
	for _, e := range events {
		if e.Status == models.EventStatusUpcoming {
			n++
		}
	}
	return n
}

// riskLevel classifies the rounded surge value, so the level always agrees
// with the number clients see.
func riskLevel(predicted float64) string {
	switch {
	case predicted >= riskCriticalAt:
		return models.RiskCritical
	case predicted >= riskHighAt:
		return models.RiskHigh
	case predicted >= riskMediumAt:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func cityRisk(occupancy float64) string {
	switch {
	case occupancy >= cityRiskCriticalAt:
		return models.RiskCritical
	case occupancy >= cityRiskHighAt:
		return models.RiskHigh
	case occupancy >= cityRiskMediumAt:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
