package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/domain/repositories"
)

// AccessGuard decides team-scoped permissions from memberships
type AccessGuard struct {
	memberRepo repositories.TeamMemberRepository
}

// NewAccessGuard creates a new access guard
func NewAccessGuard(memberRepo repositories.TeamMemberRepository) *AccessGuard {
	return &AccessGuard{memberRepo: memberRepo}
}

// CanAct reports whether the talent's membership in the team holds one of roles.
// No membership is always denied.
func (g *AccessGuard) CanAct(ctx context.Context, talentID, teamID uuid.UUID, roles ...entities.TeamRole) (bool, error) {
	member, err := g.memberRepo.GetByTeamAndTalent(ctx, teamID, talentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return member.HasRole(roles...), nil
}

// Require fails with Forbidden unless the talent may perform action on the team.
func (g *AccessGuard) Require(ctx context.Context, talentID, teamID uuid.UUID, action entities.TeamAction) error {
	ok, err := g.CanAct(ctx, talentID, teamID, entities.RolesFor(action)...)
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.Forbidden("you don't have permission to " + describeAction(action) + " for this team")
	}
	return nil
}

// RequireAnyTeam fails with Forbidden unless the talent may perform action in at least one team.
func (g *AccessGuard) RequireAnyTeam(ctx context.Context, talentID uuid.UUID, action entities.TeamAction) error {
	ok, err := g.memberRepo.HasRoleInAnyTeam(ctx, talentID, entities.RolesFor(action))
	if err != nil {
		return err
	}
	if !ok {
		return domainerrors.Forbidden("you must be able to " + describeAction(action) + " a team")
	}
	return nil
}

func describeAction(action entities.TeamAction) string {
	switch action {
	case entities.ActionManageTeam:
		return "manage"
	case entities.ActionViewPostings:
		return "view job postings"
	case entities.ActionDeleteTeam:
		return "delete"
	default:
		return string(action)
	}
}
