package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Category    string          `gorm:"type:varchar(100);not null"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        entity.TransactionKind(m.Kind),
		Date:        m.Date,
		Category:    valueobject.Category(m.Category),
		AccountID:   m.AccountID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Kind:        string(transaction.Kind),
		Date:        transaction.Date,
		Category:    string(transaction.Category),
		AccountID:   transaction.AccountID,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
