package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_investments_user_period"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Description    string          `gorm:"type:varchar(255)"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Contribution   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Dividends      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Withdrawal     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Month          int             `gorm:"type:integer;not null;index:idx_investments_user_period"`
	Year           int             `gorm:"type:integer;not null;index:idx_investments_user_period"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Investment{
		ID:             m.ID,
		UserID:         m.UserID,
		CategoryID:     m.CategoryID,
		Description:    m.Description,
		InitialBalance: m.InitialBalance,
		Contribution:   m.Contribution,
		Dividends:      m.Dividends,
		Withdrawal:     m.Withdrawal,
		Month:          m.Month,
		Year:           m.Year,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	var deletedAt gorm.DeletedAt
	if investment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *investment.DeletedAt, Valid: true}
	}

	return &InvestmentModel{
		ID:             investment.ID,
		UserID:         investment.UserID,
		CategoryID:     investment.CategoryID,
		Description:    investment.Description,
		InitialBalance: investment.InitialBalance,
		Contribution:   investment.Contribution,
		Dividends:      investment.Dividends,
		Withdrawal:     investment.Withdrawal,
		Month:          investment.Month,
		Year:           investment.Year,
		CreatedAt:      investment.CreatedAt,
		UpdatedAt:      investment.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
