package dto

import (
	"time"

	"github.com/centavo/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=255"`
	Category        string  `json:"category" binding:"required,oneof=checking savings investment credit-card"`
	StartingBalance float64 `json:"starting_balance"`
	ClosingDay      *int    `json:"closing_day,omitempty"`
	DueDay          *int    `json:"due_day,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=255"`
	Category        string  `json:"category" binding:"required,oneof=checking savings investment credit-card"`
	StartingBalance float64 `json:"starting_balance"`
	ClosingDay      *int    `json:"closing_day,omitempty"`
	DueDay          *int    `json:"due_day,omitempty"`
}

// AccountResponse represents a single account in API responses. Balance is
// present only on list responses, where it is derived from the ledger.
type AccountResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	StartingBalance string    `json:"starting_balance"`
	Balance         *string   `json:"balance,omitempty"`
	ClosingDay      *int      `json:"closing_day,omitempty"`
	DueDay          *int      `json:"due_day,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts an Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID.String(),
		Name:            account.Name,
		Category:        string(account.Category),
		StartingBalance: account.StartingBalance.StringFixed(2),
		ClosingDay:      account.ClosingDay,
		DueDay:          account.DueDay,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}

// ToAccountListResponse converts accounts with balances to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.AccountWithBalance) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, awb := range accounts {
		response := ToAccountResponse(awb.Account)
		balance := awb.Balance.StringFixed(2)
		response.Balance = &balance
		responses[i] = response
	}
	return AccountListResponse{Accounts: responses}
}
