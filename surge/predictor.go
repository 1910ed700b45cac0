package surge

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/models"
)

// Predictor produces a surge report for a city snapshot.
type Predictor interface {
	Predict(ctx context.Context, in Inputs) (*models.SurgeReport, error)
}

// RuleBased is the deterministic predictor. It never fails.
type RuleBased struct{}

// Predict implements Predictor with the rule engine.
func (RuleBased) Predict(_ context.Context, in Inputs) (*models.SurgeReport, error) {
	return Evaluate(in), nil
}

// Chain asks the external model first and falls back to the rule engine
// when it is unreachable or returns something unusable. Callers only see
// the difference in the report's method field.
type Chain struct {
	External Predictor
	Fallback Predictor
}

// Predict implements Predictor.
func (c Chain) Predict(ctx context.Context, in Inputs) (*models.SurgeReport, error) {
	if c.External != nil {
		report, err := c.External.Predict(ctx, in)
		if err == nil {
			return report, nil
		}
		zap.S().Warnw("external surge model unavailable, falling back to rule engine",
			"error", err,
		)
	}
	if c.Fallback == nil {
		return Evaluate(in), nil
	}
	return c.Fallback.Predict(ctx, in)
}

// NewPredictor wires the default prediction stack. Without an API key the
// rule engine runs alone; baseURL and model are optional overrides for
// OpenAI-compatible gateways.
func NewPredictor(apiKey, baseURL, model string) Predictor {
	if apiKey == "" {
		return RuleBased{}
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return Chain{
		External: NewExternalModel(cfg, model),
		Fallback: RuleBased{},
	}
}
