// Package docs ArogyaSetu API.
//
// Documentation of the ArogyaSetu surge predictor and load balancer API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://arogyasetu-api.herokuapp.com
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/23WH1A0515/Arogyasetu/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/hospitals hospitals hospitalsList
// Lists every hospital in the city registry.
// responses:
//   200: hospitalsResponse

// The raw hospital registry the analysis runs over.
// swagger:response hospitalsResponse
type hospitalsResponseWrapper struct {
	// in:body
	Body []models.Hospital
}

// swagger:route GET /api/v1/hospitals/{hospital_id}/status hospitals hospitalStatusByID
// Gets one hospital joined with its prediction and transfers.
// responses:
//   200: hospitalStatusResponse

// Shows a single hospital with its latest prediction and any transfers touching it.
// swagger:response hospitalStatusResponse
type hospitalStatusResponseWrapper struct {
	// in:body
	Body models.HospitalStatus
}

// swagger:route GET /api/v1/surge surge surgePredictions
// Computes surge predictions for every hospital.
// responses:
//   200: surgeResponse

// The per-hospital predictions plus the city summary.
// swagger:response surgeResponse
type surgeResponseWrapper struct {
	// in:body
	Body models.SurgeReport
}

// swagger:route GET /api/v1/balance balance loadBalance
// Computes the city-wide transfer plan.
// responses:
//   200: balanceResponse

// Hospital classifications, transfer recommendations, alerts and action items.
// swagger:response balanceResponse
type balanceResponseWrapper struct {
	// in:body
	Body models.BalanceReport
}

// swagger:route GET /api/v1/analysis analysis fullAnalysis
// Runs a fresh surge prediction and balance plan in one pass.
// responses:
//   200: analysisResponse

// Both reports bundled with the inputs they were computed from.
// swagger:response analysisResponse
type analysisResponseWrapper struct {
	// in:body
	Body models.FullAnalysis
}

// swagger:route GET /api/v1/history history inflowHistory
// Lists the most recent patient inflow records.
// responses:
//   200: historyResponse

// The latest hourly arrival samples across all hospitals, newest first.
// swagger:response historyResponse
type historyResponseWrapper struct {
	// in:body
	Body []models.InflowRecord
}

// swagger:route GET /api/v1/history/summary history inflowSummary
// Aggregates arrivals per hospital over a window.
// responses:
//   200: historySummaryResponse

// Total, average and sample counts per hospital.
// swagger:response historySummaryResponse
type historySummaryResponseWrapper struct {
	// in:body
	Body []models.InflowSummary
}
