package account

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/finance"
)

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.AccountWithBalance
}

// ListAccountsUseCase handles listing accounts with their derived balances.
type ListAccountsUseCase struct {
	snapshotLoader adapter.SnapshotLoader
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(snapshotLoader adapter.SnapshotLoader) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		snapshotLoader: snapshotLoader,
	}
}

// Execute lists every account paired with its running balance. Balances are
// never persisted; they are recomputed from the snapshot on every call.
func (uc *ListAccountsUseCase) Execute(ctx context.Context) (*ListAccountsOutput, error) {
	snap, err := uc.snapshotLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	balances := finance.AccountBalances(snap)

	accounts := make([]*entity.AccountWithBalance, len(snap.Accounts))
	for i, acc := range snap.Accounts {
		accounts[i] = &entity.AccountWithBalance{
			Account: acc,
			Balance: balances[acc.ID],
		}
	}

	return &ListAccountsOutput{Accounts: accounts}, nil
}
