package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
type EntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	DueDate     *time.Time      `gorm:"type:date;index"`
	PaidAt      *time.Time      `gorm:"type:timestamp"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Entry{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Type:        entity.EntryType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		DueDate:     m.DueDate,
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &EntryModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		CategoryID:  entry.CategoryID,
		Description: entry.Description,
		Type:        string(entry.Type),
		Amount:      entry.Amount,
		Date:        entry.Date,
		DueDate:     entry.DueDate,
		PaidAt:      entry.PaidAt,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// AllModels lists every model migrated by the service.
func AllModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&CreditCardModel{},
		&InvestmentModel{},
		&BudgetModel{},
		&EntryModel{},
	}
}
