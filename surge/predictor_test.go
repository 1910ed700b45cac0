package surge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/23WH1A0515/Arogyasetu/models"
)

type stubPredictor struct {
	report *models.SurgeReport
	err    error
}

func (s stubPredictor) Predict(context.Context, Inputs) (*models.SurgeReport, error) {
	return s.report, s.err
}

func TestRuleBasedPredictNeverFails(t *testing.T) {
	in := Inputs{
		Hospitals: []models.Hospital{{ID: "H1", Name: "A", Capacity: 100, CurrentPatients: 50}},
	}

	report, err := RuleBased{}.Predict(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, models.MethodRuleBased, report.Method)
	assert.Len(t, report.Predictions, 1)
}

func TestChainPrefersExternalModel(t *testing.T) {
	want := &models.SurgeReport{
		Method: models.MethodExternalModel,
		Predictions: []models.SurgePrediction{
			{HospitalID: "H1", HospitalName: "A", PredictedSurge: 77.5, RiskLevel: models.RiskHigh},
		},
	}
	c := Chain{External: stubPredictor{report: want}, Fallback: RuleBased{}}

	report, err := c.Predict(context.Background(), Inputs{})

	assert.NoError(t, err)
	assert.Equal(t, want, report)
}

func TestChainFallsBackOnExternalFailure(t *testing.T) {
	c := Chain{
		External: stubPredictor{err: errors.New("upstream down")},
		Fallback: RuleBased{},
	}
	in := Inputs{
		Hospitals: []models.Hospital{{ID: "H1", Name: "A", Capacity: 100, CurrentPatients: 50}},
	}

	report, err := c.Predict(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, models.MethodRuleBased, report.Method)
	assert.Len(t, report.Predictions, 1)
}

func TestChainWithoutExternalUsesFallback(t *testing.T) {
	c := Chain{Fallback: RuleBased{}}

	report, err := c.Predict(context.Background(), Inputs{})

	assert.NoError(t, err)
	assert.Equal(t, models.MethodRuleBased, report.Method)
}

func TestNewPredictorWithoutKey(t *testing.T) {
	p := NewPredictor("", "", "")

	_, ok := p.(RuleBased)
	assert.True(t, ok)
}

func TestNewPredictorWithKey(t *testing.T) {
	p := NewPredictor("sk-test", "", "")

	c, ok := p.(Chain)
	assert.True(t, ok)
	assert.NotNil(t, c.External)
	assert.NotNil(t, c.Fallback)
}
