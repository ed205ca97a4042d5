package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// A user has at most one budget per category and month.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_period"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_period"`
	Planned    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month      int             `gorm:"type:integer;not null;uniqueIndex:idx_budgets_user_category_period"`
	Year       int             `gorm:"type:integer;not null;uniqueIndex:idx_budgets_user_category_period"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		Planned:    m.Planned,
		Month:      m.Month,
		Year:       m.Year,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		Planned:    budget.Planned,
		Month:      budget.Month,
		Year:       budget.Year,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
