package futureentry

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
)

// ListFutureEntriesInput represents the filter input for listing future entries.
type ListFutureEntriesInput struct {
	Filter adapter.FutureEntryFilter
}

// ListFutureEntriesOutput represents the output of listing future entries.
type ListFutureEntriesOutput struct {
	Entries []*entity.FutureEntry
}

// ListFutureEntriesUseCase handles listing future entries with filters.
type ListFutureEntriesUseCase struct {
	futureEntryRepo adapter.FutureEntryRepository
}

// NewListFutureEntriesUseCase creates a new ListFutureEntriesUseCase instance.
func NewListFutureEntriesUseCase(futureEntryRepo adapter.FutureEntryRepository) *ListFutureEntriesUseCase {
	return &ListFutureEntriesUseCase{futureEntryRepo: futureEntryRepo}
}

// Execute returns future entries matching the filter, ordered by due date.
func (uc *ListFutureEntriesUseCase) Execute(ctx context.Context, input ListFutureEntriesInput) (*ListFutureEntriesOutput, error) {
	entries, err := uc.futureEntryRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list future entries: %w", err)
	}

	return &ListFutureEntriesOutput{Entries: entries}, nil
}
