package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// FutureEntryModel represents the future_entries table in the database.
type FutureEntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null;index"`
	DueDate     time.Time       `gorm:"type:date;not null;index"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(100);not null"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index"`
	PurchaseID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Account  *AccountModel             `gorm:"foreignKey:AccountID;references:ID"`
	Purchase *InstallmentPurchaseModel `gorm:"foreignKey:PurchaseID;references:ID"`
}

// TableName returns the table name for the FutureEntryModel.
func (FutureEntryModel) TableName() string {
	return "future_entries"
}

// ToEntity converts a FutureEntryModel to a domain FutureEntry entity.
func (m *FutureEntryModel) ToEntity() *entity.FutureEntry {
	return &entity.FutureEntry{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        entity.FutureEntryKind(m.Kind),
		DueDate:     m.DueDate,
		Status:      entity.FutureEntryStatus(m.Status),
		Category:    valueobject.Category(m.Category),
		AccountID:   m.AccountID,
		PurchaseID:  m.PurchaseID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FutureEntryFromEntity creates a FutureEntryModel from a domain FutureEntry entity.
func FutureEntryFromEntity(entry *entity.FutureEntry) *FutureEntryModel {
	return &FutureEntryModel{
		ID:          entry.ID,
		Description: entry.Description,
		Amount:      entry.Amount,
		Kind:        string(entry.Kind),
		DueDate:     entry.DueDate,
		Status:      string(entry.Status),
		Category:    string(entry.Category),
		AccountID:   entry.AccountID,
		PurchaseID:  entry.PurchaseID,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
