package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
)

func newTeam(owner uuid.UUID, location string) *entities.Team {
	return &entities.Team{
		Name:         "Bistro",
		Industry:     "Restaurant",
		Location:     location,
		ServiceStyle: "Casual",
		ContactEmail: "hello@bistro.test",
		OwnerID:      owner,
	}
}

func TestTeamRepository_CRUDAndLists(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	downtown := newTeam(owner, "Downtown")
	uptown := newTeam(owner, "Uptown")
	require.NoError(t, repo.Create(ctx, downtown))
	require.NoError(t, repo.Create(ctx, uptown))
	require.False(t, downtown.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, downtown.ID)
	require.NoError(t, err)
	require.Equal(t, "Bistro", got.Name)
	require.False(t, got.Description.Valid)

	got.Description = null.StringFrom("French bistro")
	got.Name = "Bistro Deux"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, downtown.ID)
	require.NoError(t, err)
	require.Equal(t, "Bistro Deux", got.Name)
	require.Equal(t, "French bistro", got.Description.String)

	byLocation, err := repo.ListByLocation(ctx, "Uptown")
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	require.Equal(t, uptown.ID, byLocation[0].ID)

	byIDs, err := repo.GetByIDs(ctx, []uuid.UUID{downtown.ID, uptown.ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)

	require.NoError(t, repo.Delete(ctx, uptown.ID))
	_, err = repo.GetByID(ctx, uptown.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, uptown.ID), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, uptown), domainerrors.ErrNotFound)
}

func TestTeamMemberRepository_UniqueAndRoles(t *testing.T) {
	db := newTestDB(t)
	repo := NewTeamMemberRepository(db)
	ctx := context.Background()
	team, talent := uuid.New(), uuid.New()

	owner := &entities.TeamMember{TeamID: team, TalentID: talent, Position: "Manager", Role: entities.TeamRoleOwner}
	require.NoError(t, repo.Create(ctx, owner))
	require.False(t, owner.JoinedAt.IsZero())

	dup := &entities.TeamMember{TeamID: team, TalentID: talent, Position: "Cook", Role: entities.TeamRoleMember}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrAlreadyExists)

	got, err := repo.GetByTeamAndTalent(ctx, team, talent)
	require.NoError(t, err)
	require.Equal(t, entities.TeamRoleOwner, got.Role)
	_, err = repo.GetByTeamAndTalent(ctx, team, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	ok, err := repo.HasRoleInAnyTeam(ctx, talent, []entities.TeamRole{entities.TeamRoleOwner, entities.TeamRoleAdmin})
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.HasRoleInAnyTeam(ctx, talent, []entities.TeamRole{entities.TeamRoleMember})
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = repo.HasRoleInAnyTeam(ctx, talent, nil)
	require.NoError(t, err)
	require.False(t, ok)

	otherTeam := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.TeamMember{TeamID: otherTeam, TalentID: talent, Position: "Cook", Role: entities.TeamRoleMember}))
	byTalent, err := repo.ListByTalent(ctx, talent)
	require.NoError(t, err)
	require.Len(t, byTalent, 2)

	byTeam, err := repo.ListByTeam(ctx, team)
	require.NoError(t, err)
	require.Len(t, byTeam, 1)

	require.NoError(t, repo.DeleteByTeam(ctx, team))
	byTalent, err = repo.ListByTalent(ctx, talent)
	require.NoError(t, err)
	require.Len(t, byTalent, 1)

	require.NoError(t, repo.Delete(ctx, byTalent[0].ID))
	require.ErrorIs(t, repo.Delete(ctx, byTalent[0].ID), domainerrors.ErrNotFound)

	require.NoError(t, repo.Create(ctx, &entities.TeamMember{TeamID: team, TalentID: talent, Position: "Cook", Role: entities.TeamRoleMember}))
	require.NoError(t, repo.DeleteByTalent(ctx, talent))
	byTalent, err = repo.ListByTalent(ctx, talent)
	require.NoError(t, err)
	require.Empty(t, byTalent)
}
