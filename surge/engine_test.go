package surge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/23WH1A0515/Arogyasetu/models"
)

func TestEvaluateHighLoadHospital(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "City General", Capacity: 100, CurrentPatients: 90, Location: models.Location{Lat: 28.6, Lng: 77.2}},
		},
		Events:    []models.Event{{ID: "E1", Name: "Marathon", Status: models.EventStatusUpcoming}},
		Pollution: &models.PollutionReading{AverageAQI: 200},
	}

	report := Evaluate(in)

	assert.Len(t, report.Predictions, 1)
	p := report.Predictions[0]
	assert.Equal(t, float64(90), p.CurrentLoad)
	assert.Equal(t, float64(100), p.PredictedSurge)
	assert.Equal(t, models.RiskCritical, p.RiskLevel)
	assert.Equal(t, []string{FactorPollution, FactorEvents, FactorHighOccupancy}, p.SurgeFactors)
	assert.Equal(t, models.MethodRuleBased, report.Method)
}

func TestEvaluateQuietHospital(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H2", Name: "Lakeside", Capacity: 200, CurrentPatients: 40},
		},
		Pollution: &models.PollutionReading{AverageAQI: 30},
	}

	report := Evaluate(in)

	assert.Len(t, report.Predictions, 1)
	p := report.Predictions[0]
	assert.Equal(t, float64(20), p.CurrentLoad)
	assert.Equal(t, float64(25), p.PredictedSurge)
	assert.Equal(t, models.RiskLow, p.RiskLevel)
	assert.Empty(t, p.SurgeFactors)
}

func TestEvaluateRiskBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		patients int
		want     string
	}{
		{"critical at 85", 800, models.RiskCritical},
		{"high below critical", 799, models.RiskHigh},
		{"high at 70", 650, models.RiskHigh},
		{"medium below high", 649, models.RiskMedium},
		{"medium at 50", 450, models.RiskMedium},
		{"low below medium", 449, models.RiskLow},
	}

	for _, c := range cases {
		in := Inputs{
			Hospitals: []models.Hospital{
				{ID: "H1", Name: "Boundary", Capacity: 1000, CurrentPatients: c.patients},
			},
			Pollution: &models.PollutionReading{AverageAQI: 10},
		}
		report := Evaluate(in)
		assert.Equal(t, c.want, report.Predictions[0].RiskLevel, c.name)
	}
}

func TestEvaluateInflowTrendWindow(t *testing.T) {
	// 6 loud old samples followed by 24 quiet ones; only the trailing 24
	// may count.
	var inflow []models.InflowRecord
	for i := 0; i < 6; i++ {
		inflow = append(inflow, models.InflowRecord{HospitalID: "H1", Count: 100})
	}
	for i := 0; i < 24; i++ {
		inflow = append(inflow, models.InflowRecord{HospitalID: "H1", Count: 3})
	}
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "Windowed", Capacity: 100, CurrentPatients: 10},
		},
		Pollution: &models.PollutionReading{AverageAQI: 10},
		Inflow:    inflow,
	}

	report := Evaluate(in)

	// base 10 + trend 6
	assert.Equal(t, float64(16), report.Predictions[0].PredictedSurge)
	assert.NotContains(t, report.Predictions[0].SurgeFactors, FactorHighInflow)
}

func TestEvaluateInflowTrendCapAndTag(t *testing.T) {
	var inflow []models.InflowRecord
	for i := 0; i < 24; i++ {
		inflow = append(inflow, models.InflowRecord{HospitalID: "H1", Count: 30})
	}
	// records for another hospital must not leak into H1's window
	inflow = append(inflow, models.InflowRecord{HospitalID: "H9", Count: 1})

	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "Busy", Capacity: 100, CurrentPatients: 10},
		},
		Pollution: &models.PollutionReading{AverageAQI: 10},
		Inflow:    inflow,
	}

	report := Evaluate(in)

	// avg 30 doubles past the cap of 20: base 10 + 20
	assert.Equal(t, float64(30), report.Predictions[0].PredictedSurge)
	assert.Contains(t, report.Predictions[0].SurgeFactors, FactorHighInflow)
}

func TestEvaluateUnroundedBaseFeedsTheSum(t *testing.T) {
	inflow := []models.InflowRecord{
		{HospitalID: "H1", Count: 22},
		{HospitalID: "H1", Count: 22},
		{HospitalID: "H1", Count: 22},
	}
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "Fractional", Capacity: 300, CurrentPatients: 187},
		},
		Pollution: &models.PollutionReading{AverageAQI: 10},
		Inflow:    inflow,
	}

	report := Evaluate(in)

	p := report.Predictions[0]
	// base 62.333... is rounded for display only; the sum sees the raw value
	assert.Equal(t, 62.3, p.CurrentLoad)
	assert.Equal(t, 82.3, p.PredictedSurge)
	assert.Equal(t, models.RiskHigh, p.RiskLevel)
}

func TestEvaluateSkipsMalformedHospitals(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "Good", Capacity: 100, CurrentPatients: 50},
			{ID: "H2", Name: "ZeroCap", Capacity: 0, CurrentPatients: 10},
			{Name: "NoID", Capacity: 100, CurrentPatients: 10},
			{ID: "H4", Name: "Negative", Capacity: 100, CurrentPatients: -3},
		},
		Pollution: &models.PollutionReading{AverageAQI: 10},
	}

	report := Evaluate(in)

	assert.Len(t, report.Predictions, 1)
	assert.Equal(t, "H1", report.Predictions[0].HospitalID)
	assert.Len(t, report.Diagnostics, 3)
	assert.Equal(t, "capacity", report.Diagnostics[0].Field)
	assert.Equal(t, "id", report.Diagnostics[1].Field)
	assert.Equal(t, "current_patients", report.Diagnostics[2].Field)

	// rejected records stay out of the city totals
	assert.Equal(t, 100, report.CitySummary.TotalCapacity)
	assert.Equal(t, 50, report.CitySummary.TotalOccupied)
}

func TestEvaluateEmptySnapshot(t *testing.T) {
	report := Evaluate(Inputs{})

	assert.NotNil(t, report.Predictions)
	assert.Empty(t, report.Predictions)
	assert.Equal(t, 0, report.CitySummary.TotalCapacity)
	assert.Equal(t, float64(0), report.CitySummary.OverallOccupancy)
	assert.Equal(t, models.RiskLow, report.CitySummary.OverallRisk)
	assert.Equal(t, models.MethodRuleBased, report.Method)
}

func TestEvaluateDefaultsMissingPollutionFeed(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "NoFeed", Capacity: 100, CurrentPatients: 20},
		},
	}

	report := Evaluate(in)

	assert.Equal(t, float64(100), report.CitySummary.AverageAQI)
	// the default AQI still sits in the elevated band
	assert.Contains(t, report.Predictions[0].SurgeFactors, FactorPollution)
	assert.Equal(t, float64(30), report.Predictions[0].PredictedSurge)
	assert.NotContains(t, report.CitySummary.Recommendations, "High pollution alert - prepare for respiratory emergencies")
}

func TestEvaluateCitySummaryRecommendations(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "A", Capacity: 100, CurrentPatients: 80},
			{ID: "H2", Name: "B", Capacity: 100, CurrentPatients: 70},
		},
		Events: []models.Event{
			{ID: "E1", Status: models.EventStatusUpcoming},
			{ID: "E2", Status: models.EventStatusUpcoming},
			{ID: "E3", Status: "completed"},
		},
		Pollution: &models.PollutionReading{AverageAQI: 160},
	}

	report := Evaluate(in)

	s := report.CitySummary
	assert.Equal(t, 200, s.TotalCapacity)
	assert.Equal(t, 150, s.TotalOccupied)
	assert.Equal(t, float64(75), s.OverallOccupancy)
	assert.Equal(t, models.RiskHigh, s.OverallRisk)
	assert.Equal(t, 2, s.ActiveEvents)
	assert.Equal(t, []string{
		"High pollution alert - prepare for respiratory emergencies",
		"2 upcoming events - standby for crowd-related emergencies",
		"Consider activating overflow protocols",
	}, s.Recommendations)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{
			{ID: "H1", Name: "A", Capacity: 120, CurrentPatients: 96},
			{ID: "H2", Name: "B", Capacity: 150, CurrentPatients: 30},
		},
		Events:    []models.Event{{ID: "E1", Status: models.EventStatusUpcoming}},
		Pollution: &models.PollutionReading{AverageAQI: 120},
		Inflow: []models.InflowRecord{
			{HospitalID: "H1", Count: 9},
			{HospitalID: "H2", Count: 2},
		},
	}

	first := Evaluate(in)
	second := Evaluate(in)

	assert.Equal(t, first.Predictions, second.Predictions)
	assert.Equal(t, first.CitySummary, second.CitySummary)
	assert.Equal(t, first.Method, second.Method)
}

func TestPollutionFactorBands(t *testing.T) {
	assert.Equal(t, float64(15), pollutionFactor(151))
	assert.Equal(t, float64(10), pollutionFactor(150))
	assert.Equal(t, float64(10), pollutionFactor(101))
	assert.Equal(t, float64(5), pollutionFactor(100))
	assert.Equal(t, float64(5), pollutionFactor(51))
	assert.Equal(t, float64(0), pollutionFactor(50))
	assert.Equal(t, float64(0), pollutionFactor(0))
}
