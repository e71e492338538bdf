// Package api - API types for storage cost estimation
// These types define the contract for the HTTP endpoints.
// The API is stateless, idempotent and deterministic.
package api

import (
	"storage-cost/core/output"
	"storage-cost/core/types"
)

// EstimateRequest is the input to POST /estimate.
// Usage fields are inlined from types.UserInput.
type EstimateRequest struct {
	types.UserInput

	// Providers restricts the estimate to these catalog entries (optional)
	Providers []string `json:"providers,omitempty"`

	// ShowStorage includes the projected monthly storage in the response
	ShowStorage bool `json:"show_storage,omitempty"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	output.Document

	// Metadata describes how the response was produced
	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata contains execution metadata
type ResponseMetadata struct {
	// RequestID echoes X-Request-ID or is generated per request
	RequestID string `json:"request_id"`

	// InputHash identifies the request; equal requests hash equally
	InputHash string `json:"input_hash"`

	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// ProvidersResponse is the output of GET /providers
type ProvidersResponse struct {
	Providers []*types.Provider `json:"providers"`
	Count     int               `json:"count"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failure
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
