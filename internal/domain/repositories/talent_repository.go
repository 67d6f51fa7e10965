package repositories

import (
	"context"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
)

// TalentRepository defines talent data operations
type TalentRepository interface {
	Create(ctx context.Context, talent *entities.Talent) error
	Update(ctx context.Context, talent *entities.Talent) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Talent, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Talent, error)
	GetByTokenIdentifier(ctx context.Context, tokenIdentifier string) (*entities.Talent, error)
	List(ctx context.Context) ([]*entities.Talent, error)
	SetCurrentTeam(ctx context.Context, talentID uuid.UUID, teamID *uuid.UUID) error
	// ClearCurrentTeam unsets currentTeamId on every talent pointing at teamID.
	ClearCurrentTeam(ctx context.Context, teamID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SkillRepository defines skill catalogue and talent skill link operations
type SkillRepository interface {
	Create(ctx context.Context, skill *entities.Skill) error
	GetByNames(ctx context.Context, names []string) ([]*entities.Skill, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Skill, error)
	ListTalentSkills(ctx context.Context, talentID uuid.UUID) ([]entities.Skill, error)
	ReplaceTalentSkills(ctx context.Context, talentID uuid.UUID, skillIDs []uuid.UUID) error
	// ListTalentIDsWithSkills returns the talents holding at least one of skillIDs.
	ListTalentIDsWithSkills(ctx context.Context, skillIDs []uuid.UUID) ([]uuid.UUID, error)
	DeleteTalentSkills(ctx context.Context, talentID uuid.UUID) error
}

// LanguageRepository defines talent language operations
type LanguageRepository interface {
	Replace(ctx context.Context, talentID uuid.UUID, languages []string) error
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]string, error)
	DeleteByTalent(ctx context.Context, talentID uuid.UUID) error
}
