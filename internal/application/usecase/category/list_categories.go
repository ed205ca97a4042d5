// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID       uuid.UUID
	CategoryType *entity.CategoryType // Optional filter by category type
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var categories []*entity.Category
	var err error

	if input.CategoryType != nil {
		if !input.CategoryType.IsValid() {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"category type must be 'expense', 'income' or 'investment'",
				domainerror.ErrInvalidCategoryType,
			)
		}
		categories, err = uc.categoryRepo.FindByUserAndType(ctx, input.UserID, *input.CategoryType)
	} else {
		categories, err = uc.categoryRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
