package repositories

import (
	"context"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
)

// JobPostingRepository defines job posting data operations
type JobPostingRepository interface {
	Create(ctx context.Context, posting *entities.JobPosting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.JobPosting, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.JobPosting, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, activeOnly bool) ([]*entities.JobPosting, error)
	ListActive(ctx context.Context) ([]*entities.JobPosting, error)
	Update(ctx context.Context, posting *entities.JobPosting) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}
