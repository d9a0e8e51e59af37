package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brandlens/brandlens/internal/core"
	apperrors "github.com/brandlens/brandlens/internal/errors"
	"github.com/brandlens/brandlens/internal/metrics"
)

// Aggregator runs one availability check across all sources.
type Aggregator interface {
	Check(ctx context.Context, name string, nclClass *int) (*core.AvailabilityResult, error)
}

var checkAggregator Aggregator

// SetAggregator injects the check pipeline used by CheckHandler.
func SetAggregator(aggregator Aggregator) {
	checkAggregator = aggregator
}

// CheckRequest is the request body for POST /api/check.
type CheckRequest struct {
	Name     string `json:"name"`
	NclClass *int   `json:"ncl,omitempty"`
}

// CheckHandler verifies a brand name against the trademark registry and
// social handles. Checks drive a real browser, so responses take seconds
// to minutes rather than milliseconds.
func CheckHandler(w http.ResponseWriter, r *http.Request) {
	if checkAggregator == nil {
		respondWithError(w, r, apperrors.NewInternalError("check pipeline not configured"))
		return
	}

	var req CheckRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "invalid request body"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondWithError(w, r, apperrors.NewInvalidInputError("name is required"))
		return
	}
	if len(name) > core.MaxNameLength {
		respondWithError(w, r, apperrors.NewInvalidInputError(
			fmt.Sprintf("name must be at most %d characters", core.MaxNameLength)))
		return
	}
	if req.NclClass != nil && !core.NclClassValid(*req.NclClass) {
		respondWithError(w, r, apperrors.NewInvalidInputError("ncl must be between 1 and 45"))
		return
	}

	startedAt := time.Now()
	result, err := checkAggregator.Check(r.Context(), name, req.NclClass)
	if err != nil {
		respondWithError(w, r, apperrors.WrapInternal(r.Context(), err, "availability check failed"))
		return
	}

	recordCheckMetrics(result, time.Since(startedAt))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

func recordCheckMetrics(result *core.AvailabilityResult, elapsed time.Duration) {
	if result == nil {
		return
	}
	if result.Trademark != nil {
		metrics.RecordCheck("trademark", string(result.Trademark.Status), elapsed)
	}
	if result.Handle != nil {
		metrics.RecordCheck("handle", string(result.Handle.Status), elapsed)
		if len(result.Handle.Variations) > 0 {
			metrics.RecordCheckVariants(len(result.Handle.Variations))
		} else {
			metrics.RecordCheckVariants(1)
		}
	}
}
