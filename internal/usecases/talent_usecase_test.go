package usecases_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/usecases"
)

func TestTalentUsecase_SaveProfile_CreatesThenReplaces(t *testing.T) {
	env := newTestEnv(t, usecases.LifecyclePolicy{})
	id, created := env.signUp(t, "ada", nil)

	assert.True(t, created.ProfileComplete)
	require.Len(t, created.Skills, 2)
	assert.Equal(t, "Grill", created.Skills[0].Name)
	assert.Equal(t, entities.SkillCategoryBOH, created.Skills[0].Category)
	assert.Equal(t, []string{"English"}, created.Languages)

	input := profileInput("ada")
	input.FirstName = "Ada Augusta"
	input.Skills = []string{"Wine knowledge", " Team player ", "Wine knowledge"}
	input.Languages = []string{"English", "French"}
	updated, err := env.talent.SaveProfile(env.ctx, id, input)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ada Augusta", updated.FirstName)
	require.Len(t, updated.Skills, 2)
	assert.Equal(t, entities.SkillCategoryFOH, updated.Skills[0].Category)
	assert.Equal(t, "Team player", updated.Skills[1].Name)
	assert.Equal(t, entities.SkillCategoryGeneral, updated.Skills[1].Category)
	assert.Equal(t, []string{"English", "French"}, updated.Languages)
}

func TestTalentUsecase_SaveProfile_Errors(t *testing.T) {
	env := newTestEnv(t, usecases.LifecyclePolicy{})

	_, err := env.talent.SaveProfile(env.ctx, nil, profileInput("ada"))
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	input := profileInput("ada")
	input.LastFourSSN = "12a4"
	_, err = env.talent.SaveProfile(env.ctx, identityFor("ada"), input)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	profile, err := env.talent.GetProfile(env.ctx, identityFor("ada"))
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestTalentUsecase_GetCurrentUser(t *testing.T) {
	env := newTestEnv(t, usecases.LifecyclePolicy{})
	assert.Nil(t, env.talent.GetCurrentUser(nil))
	assert.Nil(t, env.talent.GetCurrentUser(&entities.Identity{Subject: "x"}))

	id := identityFor("ada")
	assert.Equal(t, id, env.talent.GetCurrentUser(id))
}

func TestTalentUsecase_DeleteProfile_Cascades(t *testing.T) {
	env := newTestEnv(t, usecases.LifecyclePolicy{})
	s := env.newScenario(t)
	appID := env.apply(t, s.applicant, s.posting.ID)
	env.decide(t, s.owner, appID, entities.ApplicationMatched)
	applicantID := env.talentID(t, s.applicant)

	require.NoError(t, env.talent.DeleteProfile(env.ctx, s.applicant))

	_, err := env.talentRepo.GetByID(env.ctx, applicantID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	_, err = env.appRepo.GetByID(env.ctx, appID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	matches, err := env.matchRepo.ListByTalent(env.ctx, applicantID)
	require.NoError(t, err)
	assert.Empty(t, matches)
	memberships, err := env.memberRepo.ListByTalent(env.ctx, applicantID)
	require.NoError(t, err)
	assert.Empty(t, memberships)

	err = env.talent.DeleteProfile(env.ctx, s.applicant)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
