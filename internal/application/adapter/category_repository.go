// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/signals/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByUserAndType retrieves categories for a given user filtered by type.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByNameAndUser checks if a category with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)
}
