// Package dashboard contains the read-only aggregation use cases. Each one
// loads a fresh ledger snapshot and runs the pure derivation functions over
// it; nothing here writes to the store.
package dashboard

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/finance"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// GetSummaryInput selects the reference month for the metrics record.
type GetSummaryInput struct {
	Month valueobject.YearMonth
}

// GetSummaryOutput carries the full dashboard metrics record.
type GetSummaryOutput struct {
	Metrics *finance.Metrics
}

// GetSummaryUseCase derives the dashboard summary for a month.
type GetSummaryUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(snapshots adapter.SnapshotLoader) *GetSummaryUseCase {
	return &GetSummaryUseCase{snapshots: snapshots}
}

// Execute loads a snapshot and computes the metrics record.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return &GetSummaryOutput{Metrics: finance.HealthMetrics(snap, input.Month)}, nil
}
