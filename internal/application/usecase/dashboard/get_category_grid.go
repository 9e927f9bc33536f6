package dashboard

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/finance"
)

// GetCategoryGridInput selects the year for the category grid.
type GetCategoryGridInput struct {
	Year int
}

// GetCategoryGridOutput carries the per-category monthly breakdown.
type GetCategoryGridOutput struct {
	Grid *finance.CategoryGrid
}

// GetCategoryGridUseCase derives the category grid for a year.
type GetCategoryGridUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetCategoryGridUseCase creates a new GetCategoryGridUseCase instance.
func NewGetCategoryGridUseCase(snapshots adapter.SnapshotLoader) *GetCategoryGridUseCase {
	return &GetCategoryGridUseCase{snapshots: snapshots}
}

// Execute loads a snapshot and computes the grid for the year.
func (uc *GetCategoryGridUseCase) Execute(ctx context.Context, input GetCategoryGridInput) (*GetCategoryGridOutput, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return &GetCategoryGridOutput{Grid: finance.CategoryGridForYear(snap, input.Year)}, nil
}
