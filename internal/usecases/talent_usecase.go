package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/domain/repositories"
	"mise.backend/pkg/logger"
)

// TalentUsecase handles talent profile business logic
type TalentUsecase struct {
	talentRepo   repositories.TalentRepository
	skillRepo    repositories.SkillRepository
	languageRepo repositories.LanguageRepository
	memberRepo   repositories.TeamMemberRepository
	appRepo      repositories.ApplicationRepository
	matchRepo    repositories.MatchRepository
	uow          repositories.UnitOfWork
	identities   *IdentityResolver
}

// NewTalentUsecase creates a new talent usecase
func NewTalentUsecase(
	talentRepo repositories.TalentRepository,
	skillRepo repositories.SkillRepository,
	languageRepo repositories.LanguageRepository,
	memberRepo repositories.TeamMemberRepository,
	appRepo repositories.ApplicationRepository,
	matchRepo repositories.MatchRepository,
	uow repositories.UnitOfWork,
) *TalentUsecase {
	return &TalentUsecase{
		talentRepo:   talentRepo,
		skillRepo:    skillRepo,
		languageRepo: languageRepo,
		memberRepo:   memberRepo,
		appRepo:      appRepo,
		matchRepo:    matchRepo,
		uow:          uow,
		identities:   NewIdentityResolver(talentRepo),
	}
}

// GetCurrentUser returns the caller's identity claims, or nil when unauthenticated.
func (u *TalentUsecase) GetCurrentUser(identity *entities.Identity) *entities.Identity {
	if identity == nil || identity.TokenIdentifier == "" {
		return nil
	}
	return identity
}

// GetProfile returns the caller's profile with skills and languages, or nil when
// there is none.
func (u *TalentUsecase) GetProfile(ctx context.Context, identity *entities.Identity) (*entities.TalentProfile, error) {
	talent, err := u.identities.ResolveOptional(ctx, identity)
	if err != nil || talent == nil {
		return nil, err
	}
	return u.loadProfile(ctx, talent)
}

// SaveProfile creates the caller's profile on first save and fully replaces it
// afterwards, including skills and languages.
func (u *TalentUsecase) SaveProfile(ctx context.Context, identity *entities.Identity, input *entities.TalentProfileInput) (*entities.TalentProfile, error) {
	if identity == nil || identity.TokenIdentifier == "" {
		return nil, domainerrors.Unauthorized("not authenticated")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *entities.Talent
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		talent, err := u.talentRepo.GetByTokenIdentifier(txCtx, identity.TokenIdentifier)
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			talent = &entities.Talent{TokenIdentifier: identity.TokenIdentifier}
			input.Apply(talent)
			if err := u.talentRepo.Create(txCtx, talent); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			input.Apply(talent)
			if err := u.talentRepo.Update(txCtx, talent); err != nil {
				return err
			}
		}

		skillIDs, err := u.ensureSkills(txCtx, input.Skills)
		if err != nil {
			return err
		}
		if err := u.skillRepo.ReplaceTalentSkills(txCtx, talent.ID, skillIDs); err != nil {
			return err
		}
		if err := u.languageRepo.Replace(txCtx, talent.ID, cleanNames(input.Languages)); err != nil {
			return err
		}
		saved = talent
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Talent profile saved", zap.String("talent_id", saved.ID.String()))
	return u.loadProfile(ctx, saved)
}

// DeleteProfile removes the caller's profile with its memberships, skills,
// languages, applications and their matches.
func (u *TalentUsecase) DeleteProfile(ctx context.Context, identity *entities.Identity) error {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.memberRepo.DeleteByTalent(txCtx, talent.ID); err != nil {
			return err
		}
		if err := u.skillRepo.DeleteTalentSkills(txCtx, talent.ID); err != nil {
			return err
		}
		if err := u.languageRepo.DeleteByTalent(txCtx, talent.ID); err != nil {
			return err
		}
		apps, err := u.appRepo.ListByTalent(txCtx, talent.ID)
		if err != nil {
			return err
		}
		appIDs := make([]uuid.UUID, 0, len(apps))
		for _, app := range apps {
			appIDs = append(appIDs, app.ID)
		}
		if err := u.matchRepo.DeleteByApplications(txCtx, appIDs); err != nil {
			return err
		}
		if err := u.appRepo.DeleteByIDs(txCtx, appIDs); err != nil {
			return err
		}
		return u.talentRepo.Delete(txCtx, talent.ID)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "Talent profile deleted", zap.String("talent_id", talent.ID.String()))
	return nil
}

func (u *TalentUsecase) loadProfile(ctx context.Context, talent *entities.Talent) (*entities.TalentProfile, error) {
	skills, err := u.skillRepo.ListTalentSkills(ctx, talent.ID)
	if err != nil {
		return nil, err
	}
	languages, err := u.languageRepo.ListByTalent(ctx, talent.ID)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []entities.Skill{}
	}
	return &entities.TalentProfile{Talent: talent, Skills: skills, Languages: languages}, nil
}

// ensureSkills resolves names to skill IDs, creating unknown skills with their
// static category.
func (u *TalentUsecase) ensureSkills(ctx context.Context, names []string) ([]uuid.UUID, error) {
	names = cleanNames(names)
	existing, err := u.skillRepo.GetByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uuid.UUID, len(existing))
	for _, s := range existing {
		byName[s.Name] = s.ID
	}

	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		id, ok := byName[name]
		if !ok {
			skill := &entities.Skill{Name: name, Category: entities.CategorizeSkill(name)}
			if err := u.skillRepo.Create(ctx, skill); err != nil {
				return nil, err
			}
			id = skill.ID
			byName[name] = id
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// cleanNames trims names and drops blanks and duplicates, keeping first occurrence order.
func cleanNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
