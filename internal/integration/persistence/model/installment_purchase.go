package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// InstallmentPurchaseModel represents the installment_purchases table in the database.
type InstallmentPurchaseModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description      string          `gorm:"type:varchar(255);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentCount int             `gorm:"not null"`
	PurchaseDate     time.Time       `gorm:"type:date;not null"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category         string          `gorm:"type:varchar(100);not null"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the InstallmentPurchaseModel.
func (InstallmentPurchaseModel) TableName() string {
	return "installment_purchases"
}

// ToEntity converts an InstallmentPurchaseModel to a domain InstallmentPurchase entity.
func (m *InstallmentPurchaseModel) ToEntity() *entity.InstallmentPurchase {
	return &entity.InstallmentPurchase{
		ID:               m.ID,
		Description:      m.Description,
		TotalAmount:      m.TotalAmount,
		InstallmentCount: m.InstallmentCount,
		PurchaseDate:     m.PurchaseDate,
		AccountID:        m.AccountID,
		Category:         valueobject.Category(m.Category),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// InstallmentPurchaseFromEntity creates an InstallmentPurchaseModel from a domain entity.
func InstallmentPurchaseFromEntity(purchase *entity.InstallmentPurchase) *InstallmentPurchaseModel {
	return &InstallmentPurchaseModel{
		ID:               purchase.ID,
		Description:      purchase.Description,
		TotalAmount:      purchase.TotalAmount,
		InstallmentCount: purchase.InstallmentCount,
		PurchaseDate:     purchase.PurchaseDate,
		AccountID:        purchase.AccountID,
		Category:         string(purchase.Category),
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
	}
}
