// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
	domainerror "github.com/finance-tracker/signals/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Type   entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense', 'income' or 'investment'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if err := ensureUniqueName(ctx, uc.categoryRepo, name, input.UserID); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.UserID, name, input.Type)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

func ensureUniqueName(ctx context.Context, repo adapter.CategoryRepository, name string, userID uuid.UUID) error {
	exists, err := repo.ExistsByNameAndUser(ctx, name, userID)
	if err != nil {
		return fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}
	return nil
}

// validateName checks a trimmed category name.
func validateName(name string) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			domainerror.ErrMissingCategoryName,
		)
	}
	if utf8.RuneCountInString(name) > entity.MaxCategoryNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", entity.MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return nil
}
