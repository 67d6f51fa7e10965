package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/domain/repositories"
	"mise.backend/internal/metrics"
	"mise.backend/pkg/logger"
)

// MatchUsecase handles match listing and the match lifecycle
type MatchUsecase struct {
	matchRepo   repositories.MatchRepository
	teamRepo    repositories.TeamRepository
	postingRepo repositories.JobPostingRepository
	memberRepo  repositories.TeamMemberRepository
	talentRepo  repositories.TalentRepository
	uow         repositories.UnitOfWork
	policy      LifecyclePolicy
	identities  *IdentityResolver
	guard       *AccessGuard
}

// NewMatchUsecase creates a new match usecase
func NewMatchUsecase(
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	postingRepo repositories.JobPostingRepository,
	memberRepo repositories.TeamMemberRepository,
	talentRepo repositories.TalentRepository,
	uow repositories.UnitOfWork,
	policy LifecyclePolicy,
) *MatchUsecase {
	return &MatchUsecase{
		matchRepo:   matchRepo,
		teamRepo:    teamRepo,
		postingRepo: postingRepo,
		memberRepo:  memberRepo,
		talentRepo:  talentRepo,
		uow:         uow,
		policy:      policy,
		identities:  NewIdentityResolver(talentRepo),
		guard:       NewAccessGuard(memberRepo),
	}
}

// GetMyMatches lists the caller's matches with team contact details. Unresolved
// callers get an empty list.
func (u *MatchUsecase) GetMyMatches(ctx context.Context, identity *entities.Identity) ([]*entities.MyMatch, error) {
	talent, err := u.identities.ResolveOptional(ctx, identity)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return []*entities.MyMatch{}, nil
	}

	matches, err := u.matchRepo.ListByTalent(ctx, talent.ID)
	if err != nil {
		return nil, err
	}
	teamIDs := make([]uuid.UUID, 0, len(matches))
	postingIDs := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		teamIDs = append(teamIDs, m.TeamID)
		postingIDs = append(postingIDs, m.JobPostingID)
	}
	teams, err := u.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, err
	}
	postings, err := u.postingRepo.GetByIDs(ctx, uniqueIDs(postingIDs))
	if err != nil {
		return nil, err
	}
	teamsByID := indexTeams(teams)
	postingsByID := indexPostings(postings)

	items := make([]*entities.MyMatch, 0, len(matches))
	for _, m := range matches {
		team, ok := teamsByID[m.TeamID]
		if !ok {
			continue
		}
		posting, ok := postingsByID[m.JobPostingID]
		if !ok {
			continue
		}
		items = append(items, &entities.MyMatch{
			Match:      m,
			Team:       entities.NewTeamSummary(team, true),
			JobPosting: entities.NewJobPostingSummary(posting),
		})
	}
	return items, nil
}

// GetTeamMatches lists a team's matches with talent contact details. Requires
// owner or admin.
func (u *MatchUsecase) GetTeamMatches(ctx context.Context, identity *entities.Identity, teamID uuid.UUID) ([]*entities.TeamMatch, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := u.guard.Require(ctx, talent.ID, teamID, entities.ActionManageTeam); err != nil {
		return nil, err
	}

	matches, err := u.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	talentIDs := make([]uuid.UUID, 0, len(matches))
	postingIDs := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		talentIDs = append(talentIDs, m.TalentID)
		postingIDs = append(postingIDs, m.JobPostingID)
	}
	matched, err := u.talentRepo.GetByIDs(ctx, uniqueIDs(talentIDs))
	if err != nil {
		return nil, err
	}
	postings, err := u.postingRepo.GetByIDs(ctx, uniqueIDs(postingIDs))
	if err != nil {
		return nil, err
	}
	talentByID := indexTalent(matched)
	postingsByID := indexPostings(postings)

	items := make([]*entities.TeamMatch, 0, len(matches))
	for _, m := range matches {
		t, ok := talentByID[m.TalentID]
		if !ok {
			continue
		}
		posting, ok := postingsByID[m.JobPostingID]
		if !ok {
			continue
		}
		items = append(items, &entities.TeamMatch{
			Match:      m,
			Talent:     entities.NewTalentContact(t, true),
			JobPosting: entities.NewJobPostingSummary(posting),
		})
	}
	return items, nil
}

// UpdateMatchStatus completes or terminates an active match. Either the matched
// talent or an owner or admin of the team may do so.
func (u *MatchUsecase) UpdateMatchStatus(ctx context.Context, identity *entities.Identity, matchID uuid.UUID, input *entities.UpdateMatchStatusInput) (uuid.UUID, error) {
	if !input.Status.IsValid() {
		return uuid.Nil, domainerrors.BadRequest("invalid match status: " + string(input.Status))
	}
	actor, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return uuid.Nil, err
	}
	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return uuid.Nil, notFound(err, "match not found")
	}

	isTalent := match.TalentID == actor.ID
	if !isTalent {
		ok, err := u.guard.CanAct(ctx, actor.ID, match.TeamID, entities.RolesFor(entities.ActionManageTeam)...)
		if err != nil {
			return uuid.Nil, err
		}
		if !ok {
			return uuid.Nil, domainerrors.Forbidden("you don't have permission to update this match")
		}
	}
	if match.Status != entities.MatchActive || input.Status == entities.MatchActive {
		return uuid.Nil, domainerrors.InvalidTransition("cannot move match from " + string(match.Status) + " to " + string(input.Status))
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.matchRepo.UpdateStatus(txCtx, match.ID, input.Status); err != nil {
			return err
		}
		if input.Status != entities.MatchTerminated {
			return nil
		}
		if isTalent && !u.policy.TalentTerminationCleanup {
			return nil
		}
		return u.releaseMembership(txCtx, match)
	})
	if err != nil {
		return uuid.Nil, err
	}

	metrics.MatchTransition(string(input.Status))
	logger.Info(ctx, "Match status updated",
		zap.String("match_id", match.ID.String()),
		zap.String("status", string(input.Status)),
		zap.Bool("by_talent", isTalent),
	)
	return match.ID, nil
}

// releaseMembership removes the talent from the team once no other active match
// links them, clearing it as their current team.
func (u *MatchUsecase) releaseMembership(ctx context.Context, match *entities.Match) error {
	others, err := u.matchRepo.HasOtherActive(ctx, match.TeamID, match.TalentID, match.ID)
	if err != nil || others {
		return err
	}

	member, err := u.memberRepo.GetByTeamAndTalent(ctx, match.TeamID, match.TalentID)
	switch {
	case err == nil:
		if err := u.memberRepo.Delete(ctx, member.ID); err != nil {
			return err
		}
	case !errors.Is(err, domainerrors.ErrNotFound):
		return err
	}

	talent, err := u.talentRepo.GetByID(ctx, match.TalentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if talent.CurrentTeamID != nil && *talent.CurrentTeamID == match.TeamID {
		return u.talentRepo.SetCurrentTeam(ctx, talent.ID, nil)
	}
	return nil
}
