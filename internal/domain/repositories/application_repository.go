package repositories

import (
	"context"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
)

// ApplicationRepository defines application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	GetByTalentAndPosting(ctx context.Context, talentID, postingID uuid.UUID) (*entities.Application, error)
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.Application, error)
	// ListByPostings returns applications on postingIDs; an empty status matches all.
	ListByPostings(ctx context.Context, postingIDs []uuid.UUID, status entities.ApplicationStatus) ([]*entities.Application, error)
	Update(ctx context.Context, app *entities.Application) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

// MatchRepository defines match data operations
type MatchRepository interface {
	Create(ctx context.Context, match *entities.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Match, error)
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.Match, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Match, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entities.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MatchStatus) error
	// HasOtherActive reports whether another active match links talent and team.
	HasOtherActive(ctx context.Context, teamID, talentID, excludeID uuid.UUID) (bool, error)
	DeleteByApplications(ctx context.Context, applicationIDs []uuid.UUID) error
}
