package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/adapter"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/finance"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// GetCardStatementInput selects the card and the statement month.
type GetCardStatementInput struct {
	AccountID uuid.UUID
	Month     valueobject.YearMonth
}

// GetCardStatementOutput carries the statement rows and their total.
type GetCardStatementOutput struct {
	Rows  []finance.StatementRow
	Total decimal.Decimal
}

// GetCardStatementUseCase derives the monthly statement of a credit card.
type GetCardStatementUseCase struct {
	snapshots adapter.SnapshotLoader
}

// NewGetCardStatementUseCase creates a new GetCardStatementUseCase instance.
func NewGetCardStatementUseCase(snapshots adapter.SnapshotLoader) *GetCardStatementUseCase {
	return &GetCardStatementUseCase{snapshots: snapshots}
}

// Execute loads a snapshot and computes the card's statement for the month.
// The account must exist and be a credit card.
func (uc *GetCardStatementUseCase) Execute(ctx context.Context, input GetCardStatementInput) (*GetCardStatementOutput, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	account, ok := snap.Account(input.AccountID)
	if !ok {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if !account.IsCreditCard() {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotCard,
			fmt.Sprintf("account %q is not a credit card", account.Name),
			domainerror.ErrAccountNotCard,
		)
	}

	rows := finance.CardStatement(snap, input.AccountID, input.Month)

	return &GetCardStatementOutput{
		Rows:  rows,
		Total: finance.StatementTotal(rows),
	}, nil
}
