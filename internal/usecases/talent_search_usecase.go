package usecases

import (
	"context"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/domain/matching"
	"mise.backend/internal/domain/repositories"
)

// TalentSearchUsecase lets team owners and admins search for applicants
type TalentSearchUsecase struct {
	talentRepo   repositories.TalentRepository
	skillRepo    repositories.SkillRepository
	languageRepo repositories.LanguageRepository
	identities   *IdentityResolver
	guard        *AccessGuard
}

// NewTalentSearchUsecase creates a new talent search usecase
func NewTalentSearchUsecase(
	talentRepo repositories.TalentRepository,
	skillRepo repositories.SkillRepository,
	languageRepo repositories.LanguageRepository,
	memberRepo repositories.TeamMemberRepository,
) *TalentSearchUsecase {
	return &TalentSearchUsecase{
		talentRepo:   talentRepo,
		skillRepo:    skillRepo,
		languageRepo: languageRepo,
		identities:   NewIdentityResolver(talentRepo),
		guard:        NewAccessGuard(memberRepo),
	}
}

// SearchTalent returns the talent matching every set filter, without contact or
// legal details. Requested skills must all exist; a talent then needs at least one.
func (u *TalentSearchUsecase) SearchTalent(ctx context.Context, identity *entities.Identity, input *entities.TalentSearchInput) ([]entities.TalentSearchResult, error) {
	caller, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := u.guard.RequireAnyTeam(ctx, caller.ID, entities.ActionManageTeam); err != nil {
		return nil, err
	}

	criteria := matching.TalentCriteria{
		Position:        input.Position,
		Location:        input.Location,
		ExperienceLevel: input.ExperienceLevel,
		ServiceStyle:    input.ServiceStyle,
		Availability:    input.Availability,
	}

	if names := cleanNames(input.SkillNames); len(names) > 0 {
		skills, err := u.skillRepo.GetByNames(ctx, names)
		if err != nil {
			return nil, err
		}
		if len(skills) < len(names) {
			return []entities.TalentSearchResult{}, nil
		}
		ids := make([]uuid.UUID, 0, len(skills))
		criteria.SkillIDs = make(map[uuid.UUID]struct{}, len(skills))
		for _, s := range skills {
			ids = append(ids, s.ID)
			criteria.SkillIDs[s.ID] = struct{}{}
		}
		holders, err := u.skillRepo.ListTalentIDsWithSkills(ctx, ids)
		if err != nil {
			return nil, err
		}
		criteria.TalentSkills = make(map[uuid.UUID][]uuid.UUID, len(holders))
		for _, id := range holders {
			criteria.TalentSkills[id] = ids
		}
	}

	all, err := u.talentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]entities.TalentSearchResult, 0)
	for _, t := range all {
		if !criteria.Accept(t) {
			continue
		}
		skills, err := u.skillRepo.ListTalentSkills(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		languages, err := u.languageRepo.ListByTalent(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, entities.NewTalentSearchResult(t, skills, languages))
	}
	return results, nil
}
