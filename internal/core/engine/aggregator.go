package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brandlens/brandlens/internal/core"
)

// TrademarkChecker resolves a brand name against the trademark registry.
type TrademarkChecker interface {
	Check(ctx context.Context, name string, nclClass *int) (*core.TrademarkResult, error)
}

// HandleChecker resolves a brand name's social handle variations.
type HandleChecker interface {
	Check(ctx context.Context, name string) (*core.HandleResult, error)
}

// Aggregator fans one check out to both sources concurrently and merges the
// outcomes. Source failures never fail the whole check: each side degrades
// to an error-status result independently.
type Aggregator struct {
	Trademark   TrademarkChecker
	Handle      HandleChecker
	ToolVersion string
	Logger      *logging.Logger
	Clock       func() time.Time
}

// Check verifies name against both sources. nclClass optionally narrows the
// registry search to one Nice class.
func (a *Aggregator) Check(ctx context.Context, name string, nclClass *int) (*core.AvailabilityResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	baseName := strings.TrimSpace(name)
	if baseName == "" {
		return nil, fmt.Errorf("name is required")
	}
	if nclClass != nil && !core.NclClassValid(*nclClass) {
		return nil, fmt.Errorf("ncl class must be between 1 and 45, got %d", *nclClass)
	}

	requestedAt := a.now()

	var (
		wg           sync.WaitGroup
		trademark    *core.TrademarkResult
		trademarkErr error
		handle       *core.HandleResult
		handleErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if a.Trademark == nil {
			trademarkErr = fmt.Errorf("trademark checker not configured")
			return
		}
		trademark, trademarkErr = a.Trademark.Check(ctx, baseName, nclClass)
	}()
	go func() {
		defer wg.Done()
		if a.Handle == nil {
			handleErr = fmt.Errorf("handle checker not configured")
			return
		}
		handle, handleErr = a.Handle.Check(ctx, baseName)
	}()
	wg.Wait()

	if trademarkErr != nil {
		a.logWarn("trademark check degraded", zap.String("name", baseName), zap.Error(trademarkErr))
		trademark = &core.TrademarkResult{
			Status:  core.TrademarkError,
			Details: "Erro: " + trademarkErr.Error(),
		}
	}
	if handleErr != nil {
		a.logWarn("handle check degraded", zap.String("name", baseName), zap.Error(handleErr))
		handle = &core.HandleResult{
			Status:  core.HandleAmbiguous,
			Variant: baseName,
			Message: "Erro",
		}
	}

	return &core.AvailabilityResult{
		Name:      baseName,
		NclClass:  nclClass,
		Trademark: trademark,
		Handle:    handle,
		Provenance: core.Provenance{
			CheckID:     uuid.NewString(),
			RequestedAt: requestedAt,
			ResolvedAt:  a.now(),
			ToolVersion: a.ToolVersion,
		},
	}, nil
}

func (a *Aggregator) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now().UTC()
}

func (a *Aggregator) logWarn(msg string, fields ...zap.Field) {
	if a.Logger != nil {
		a.Logger.Warn(msg, fields...)
	}
}
