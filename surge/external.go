package surge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/models"
)

const (
	externalTemperature = 0.3
	externalMaxTokens   = 2000

	// promptInflowSample caps how much history rides along in the prompt
	promptInflowSample = 20
)

const externalSystemPrompt = "You are a healthcare analytics AI. Analyze hospital data and predict surge intensities. Return ONLY valid JSON."

// ExternalModel delegates surge prediction to an OpenAI-compatible chat
// model. Anything that does not decode into the report schema is an
// error, which lets the chain fall back to the rule engine.
type ExternalModel struct {
	client *openai.Client
	model  string
}

// NewExternalModel builds a predictor over the given client config. An
// empty model name selects gpt-3.5-turbo.
func NewExternalModel(cfg openai.ClientConfig, model string) *ExternalModel {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &ExternalModel{client: openai.NewClientWithConfig(cfg), model: model}
}

// Predict implements Predictor.
func (e *ExternalModel) Predict(ctx context.Context, in Inputs) (*models.SurgeReport, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: externalSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(in)},
		},
		Temperature: externalTemperature,
		MaxTokens:   externalMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	report, err := parseModelResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("external surge model responded",
		"model", e.model,
		"predictions", len(report.Predictions),
	)
	return report, nil
}

func buildPrompt(in Inputs) string {
	sample := in.Inflow
	if len(sample) > promptInflowSample {
		sample = sample[:promptInflowSample]
	}
	hospitals, _ := json.MarshalIndent(in.Hospitals, "", "  ")
	pollution, _ := json.MarshalIndent(in.Pollution, "", "  ")
	events, _ := json.MarshalIndent(in.Events, "", "  ")
	inflow, _ := json.MarshalIndent(sample, "", "  ")

	return fmt.Sprintf(`Analyze the following healthcare data and predict surge intensity (0-100%%) for each hospital.

HOSPITALS:
%s

POLLUTION DATA:
%s

UPCOMING EVENTS:
%s

RECENT PATIENT INFLOW:
%s

For each hospital, predict the surge intensity based on:
1. Current occupancy and capacity
2. Pollution levels in the area (high pollution = more respiratory cases)
3. Upcoming events (large gatherings = potential injuries/emergencies)
4. Recent inflow trends

Return JSON in this exact format:
{
    "timestamp": "ISO timestamp",
    "predictions": [
        {
            "hospital_id": "H001",
            "hospital_name": "name",
            "current_load": 75,
            "predicted_surge": 85,
            "surge_factors": ["pollution", "events"],
            "risk_level": "high"
        }
    ],
    "city_summary": {
        "overall_risk": "medium",
        "total_capacity": 1000,
        "total_occupied": 700,
        "recommendations": ["recommendation1"]
    }
}`, hospitals, pollution, events, inflow)
}

// externalReport tolerates the loose timestamp formats chat models emit.
type externalReport struct {
	Timestamp   string                   `json:"timestamp"`
	Predictions []models.SurgePrediction `json:"predictions"`
	CitySummary models.CitySummary       `json:"city_summary"`
}

// parseModelResponse strips markdown fences and decodes the report.
// Responses with no predictions or with predictions missing hospital ids
// are rejected.
func parseModelResponse(content string) (*models.SurgeReport, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var ext externalReport
	if err := json.Unmarshal([]byte(content), &ext); err != nil {
		return nil, fmt.Errorf("unparsable model response: %w", err)
	}
	if len(ext.Predictions) == 0 {
		return nil, fmt.Errorf("model response carried no predictions")
	}
	for _, p := range ext.Predictions {
		if p.HospitalID == "" {
			return nil, fmt.Errorf("model response prediction missing hospital_id")
		}
	}

	ts, err := time.Parse(time.RFC3339, ext.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}
	return &models.SurgeReport{
		Timestamp:   ts,
		Predictions: ext.Predictions,
		CitySummary: ext.CitySummary,
		Method:      models.MethodExternalModel,
	}, nil
}
