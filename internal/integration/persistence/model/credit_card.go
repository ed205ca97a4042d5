package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(50);not null"`
	Limit      decimal.Decimal `gorm:"column:credit_limit;type:decimal(15,2);not null"`
	ClosingDay int             `gorm:"type:integer;not null"`
	DueDay     int             `gorm:"type:integer;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.CreditCard{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Limit:      m.Limit,
		ClosingDay: m.ClosingDay,
		DueDay:     m.DueDay,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	var deletedAt gorm.DeletedAt
	if card.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *card.DeletedAt, Valid: true}
	}

	return &CreditCardModel{
		ID:         card.ID,
		UserID:     card.UserID,
		Name:       card.Name,
		Limit:      card.Limit,
		ClosingDay: card.ClosingDay,
		DueDay:     card.DueDay,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
