package credit_card

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: map[uuid.UUID]*entity.CreditCard{}}
}

func (r *fakeCardRepo) Create(_ context.Context, c *entity.CreditCard) error {
	r.cards[c.ID] = c
	return nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, domainerror.ErrCreditCardNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCardRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.CreditCard, error) {
	var out []*entity.CreditCard
	for _, c := range r.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCardRepo) Update(_ context.Context, c *entity.CreditCard) error {
	r.cards[c.ID] = c
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cards, id)
	return nil
}

func TestCreateCreditCardUseCase(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateCreditCardInput
		wantCode domainerror.CreditCardErrorCode
	}{
		{
			name:  "valid card",
			input: CreateCreditCardInput{Name: "Nubank", Limit: decimal.NewFromInt(5000), ClosingDay: 3, DueDay: 10},
		},
		{
			name:  "zero limit is allowed",
			input: CreateCreditCardInput{Name: "Inter", Limit: decimal.Zero, ClosingDay: 31, DueDay: 1},
		},
		{
			name:     "blank name",
			input:    CreateCreditCardInput{Name: " ", Limit: decimal.Zero, ClosingDay: 1, DueDay: 1},
			wantCode: domainerror.ErrCodeCreditCardNameInvalid,
		},
		{
			name:     "long name",
			input:    CreateCreditCardInput{Name: strings.Repeat("x", 51), Limit: decimal.Zero, ClosingDay: 1, DueDay: 1},
			wantCode: domainerror.ErrCodeCreditCardNameInvalid,
		},
		{
			name:     "negative limit",
			input:    CreateCreditCardInput{Name: "Visa", Limit: decimal.NewFromInt(-1), ClosingDay: 1, DueDay: 1},
			wantCode: domainerror.ErrCodeCreditCardLimit,
		},
		{
			name:     "closing day out of range",
			input:    CreateCreditCardInput{Name: "Visa", Limit: decimal.Zero, ClosingDay: 0, DueDay: 1},
			wantCode: domainerror.ErrCodeInvalidBillingDay,
		},
		{
			name:     "due day out of range",
			input:    CreateCreditCardInput{Name: "Visa", Limit: decimal.Zero, ClosingDay: 5, DueDay: 32},
			wantCode: domainerror.ErrCodeInvalidBillingDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCreditCardUseCase(newFakeCardRepo())
			tt.input.UserID = uuid.New()

			out, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.CreditCard.ID == uuid.Nil {
					t.Error("expected card id to be set")
				}
				return
			}

			var cardErr *domainerror.CreditCardError
			if !errors.As(err, &cardErr) {
				t.Fatalf("expected CreditCardError, got %v", err)
			}
			if cardErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, cardErr.Code)
			}
		})
	}
}

func TestUpdateAndDeleteCreditCard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeCardRepo()
	card := entity.NewCreditCard(userID, "Nubank", decimal.NewFromInt(5000), 3, 10)
	_ = repo.Create(ctx, card)

	update := NewUpdateCreditCardUseCase(repo)
	dueDay := 15
	updated, err := update.Execute(ctx, UpdateCreditCardInput{CardID: card.ID, UserID: userID, DueDay: &dueDay})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DueDay != 15 || updated.ClosingDay != 3 {
		t.Errorf("expected only due day to change, got %+v", updated)
	}

	invalid := 40
	if _, err := update.Execute(ctx, UpdateCreditCardInput{CardID: card.ID, UserID: userID, ClosingDay: &invalid}); !errors.Is(err, domainerror.ErrInvalidBillingDay) {
		t.Errorf("expected ErrInvalidBillingDay, got %v", err)
	}

	del := NewDeleteCreditCardUseCase(repo)
	if err := del.Execute(ctx, card.ID, uuid.New()); !errors.Is(err, domainerror.ErrCreditCardNotFound) {
		t.Errorf("expected other user's delete to fail with not found, got %v", err)
	}
	if err := del.Execute(ctx, card.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cards, err := NewListCreditCardsUseCase(repo).Execute(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected no cards, got %d", len(cards))
	}
}
