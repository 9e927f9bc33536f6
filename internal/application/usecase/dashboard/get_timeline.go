package dashboard

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/finance"
)

// GetTimelineInput selects the year for the annual timeline.
type GetTimelineInput struct {
	Year int
}

// GetTimelineOutput carries the twelve monthly timeline records.
type GetTimelineOutput struct {
	Months []finance.TimelineMonth
}

// GetTimelineUseCase derives the annual cash-flow timeline.
type GetTimelineUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetTimelineUseCase creates a new GetTimelineUseCase instance.
func NewGetTimelineUseCase(snapshots adapter.SnapshotLoader) *GetTimelineUseCase {
	return &GetTimelineUseCase{snapshots: snapshots}
}

// Execute loads a snapshot and computes the timeline for the year.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, input GetTimelineInput) (*GetTimelineOutput, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return &GetTimelineOutput{Months: finance.AnnualTimeline(snap, input.Year)}, nil
}
