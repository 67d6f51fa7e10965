package repositories

import (
	"context"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
)

// PredefinedOptionRepository defines dropdown option operations
type PredefinedOptionRepository interface {
	Create(ctx context.Context, option *entities.PredefinedOption) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PredefinedOption, error)
	Update(ctx context.Context, option *entities.PredefinedOption) error
	// ListByCategory returns options ordered by order ascending.
	ListByCategory(ctx context.Context, category string, activeOnly bool) ([]*entities.PredefinedOption, error)
	// MaxOrder returns the highest order in category, or 0 when it is empty.
	MaxOrder(ctx context.Context, category string) (int, error)
	ListCategories(ctx context.Context) ([]string, error)
}
