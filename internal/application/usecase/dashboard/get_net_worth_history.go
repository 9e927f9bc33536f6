package dashboard

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/finance"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// GetNetWorthHistoryInput selects the reference month; the history covers
// the twelve months ending at it.
type GetNetWorthHistoryInput struct {
	Month valueobject.YearMonth
}

// GetNetWorthHistoryOutput carries the trailing monthly net worth points.
type GetNetWorthHistoryOutput struct {
	Points []finance.NetWorthPoint
}

// GetNetWorthHistoryUseCase derives the trailing net worth history.
type GetNetWorthHistoryUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetNetWorthHistoryUseCase creates a new GetNetWorthHistoryUseCase instance.
func NewGetNetWorthHistoryUseCase(snapshots adapter.SnapshotLoader) *GetNetWorthHistoryUseCase {
	return &GetNetWorthHistoryUseCase{snapshots: snapshots}
}

// Execute loads a snapshot and computes the history ending at the month.
func (uc *GetNetWorthHistoryUseCase) Execute(ctx context.Context, input GetNetWorthHistoryInput) (*GetNetWorthHistoryOutput, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return &GetNetWorthHistoryOutput{Points: finance.NetWorthHistory(snap, input.Month)}, nil
}
