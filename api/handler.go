// Package api - Estimation handler
// This handler wraps the engine - it contains NO cost logic.
package api

import (
	"context"
	"fmt"

	"storage-cost/core/determinism"
	"storage-cost/core/engine"
	"storage-cost/core/output"
	"storage-cost/core/usage"
	"storage-cost/internal/errors"
)

// Handler executes estimation requests against an engine
type Handler struct {
	engine *engine.Engine

	// maxMonths bounds the horizon; zero means unbounded
	maxMonths int
}

// NewHandler creates a new handler
func NewHandler(eng *engine.Engine, maxMonths int) *Handler {
	return &Handler{
		engine:    eng,
		maxMonths: maxMonths,
	}
}

// validate rejects requests the engine should never see
func (h *Handler) validate(req *EstimateRequest) error {
	if err := usage.ValidateInput(req.UserInput); err != nil {
		return err
	}
	if h.maxMonths > 0 && req.Months > h.maxMonths {
		return errors.Newf(errors.TypeInput, "months must not exceed %d, got %d", h.maxMonths, req.Months)
	}
	return nil
}

// execute validates the request, runs the engine and builds the response
func (h *Handler) execute(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error) {
	if err := h.validate(req); err != nil {
		return nil, err
	}

	eng := h.engine
	if len(req.Providers) > 0 {
		sub, err := eng.Catalog().Subset(req.Providers...)
		if err != nil {
			return nil, err
		}
		eng = eng.WithCatalog(sub)
	}

	report, err := eng.Estimate(ctx, req.UserInput)
	if err != nil {
		return nil, errors.Internal("estimate", err)
	}

	return &EstimateResponse{
		Document: output.NewDocument(report, output.Options{
			ShowStorage: req.ShowStorage,
			ShowLinks:   true,
		}),
	}, nil
}

// computeInputHash identifies a request by its JSON encoding
func computeInputHash(req *EstimateRequest) string {
	hash, err := determinism.HashJSON(req)
	if err != nil {
		return fmt.Sprintf("unhashable: %v", err)
	}
	return hash.Hex()
}
