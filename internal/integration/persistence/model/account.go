// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(20);not null;index"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ClosingDay      *int            `gorm:"type:integer"`
	DueDay          *int            `gorm:"type:integer"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:              m.ID,
		Name:            m.Name,
		Category:        entity.AccountCategory(m.Category),
		StartingBalance: m.StartingBalance,
		ClosingDay:      m.ClosingDay,
		DueDay:          m.DueDay,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:              account.ID,
		Name:            account.Name,
		Category:        string(account.Category),
		StartingBalance: account.StartingBalance,
		ClosingDay:      account.ClosingDay,
		DueDay:          account.DueDay,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}
