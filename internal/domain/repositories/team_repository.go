package repositories

import (
	"context"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
)

// TeamRepository defines team data operations
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Team, error)
	ListByLocation(ctx context.Context, location string) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamMemberRepository defines membership operations
type TeamMemberRepository interface {
	Create(ctx context.Context, member *entities.TeamMember) error
	GetByTeamAndTalent(ctx context.Context, teamID, talentID uuid.UUID) (*entities.TeamMember, error)
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.TeamMember, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamMember, error)
	// HasRoleInAnyTeam reports whether the talent holds one of roles in some team.
	HasRoleInAnyTeam(ctx context.Context, talentID uuid.UUID, roles []entities.TeamRole) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTalent(ctx context.Context, talentID uuid.UUID) error
	DeleteByTeam(ctx context.Context, teamID uuid.UUID) error
}
