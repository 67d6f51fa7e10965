package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/domain/repositories"
	"mise.backend/internal/metrics"
	"mise.backend/pkg/logger"
)

// OwnerPosition is the membership position given to a team's creator
const OwnerPosition = "Manager"

// TeamUsecase handles team business logic
type TeamUsecase struct {
	teamRepo    repositories.TeamRepository
	memberRepo  repositories.TeamMemberRepository
	talentRepo  repositories.TalentRepository
	postingRepo repositories.JobPostingRepository
	appRepo     repositories.ApplicationRepository
	matchRepo   repositories.MatchRepository
	uow         repositories.UnitOfWork
	identities  *IdentityResolver
	guard       *AccessGuard
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	memberRepo repositories.TeamMemberRepository,
	talentRepo repositories.TalentRepository,
	postingRepo repositories.JobPostingRepository,
	appRepo repositories.ApplicationRepository,
	matchRepo repositories.MatchRepository,
	uow repositories.UnitOfWork,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:    teamRepo,
		memberRepo:  memberRepo,
		talentRepo:  talentRepo,
		postingRepo: postingRepo,
		appRepo:     appRepo,
		matchRepo:   matchRepo,
		uow:         uow,
		identities:  NewIdentityResolver(talentRepo),
		guard:       NewAccessGuard(memberRepo),
	}
}

// CreateTeam creates a team owned by the caller, who becomes its owner member.
// The team becomes the caller's current team if they have none.
func (u *TeamUsecase) CreateTeam(ctx context.Context, identity *entities.Identity, input *entities.CreateTeamInput) (*entities.Team, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	team := &entities.Team{
		Name:         input.Name,
		Description:  input.Description,
		Industry:     input.Industry,
		Size:         input.Size,
		Location:     input.Location,
		Address:      input.Address,
		ServiceStyle: input.ServiceStyle,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		OwnerID:      talent.ID,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.teamRepo.Create(txCtx, team); err != nil {
			return err
		}
		owner := &entities.TeamMember{
			TalentID: talent.ID,
			TeamID:   team.ID,
			Position: OwnerPosition,
			Role:     entities.TeamRoleOwner,
		}
		if err := u.memberRepo.Create(txCtx, owner); err != nil {
			return err
		}
		if talent.CurrentTeamID == nil {
			teamID := team.ID
			return u.talentRepo.SetCurrentTeam(txCtx, talent.ID, &teamID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TeamCreated()
	logger.Info(ctx, "Team created",
		zap.String("team_id", team.ID.String()),
		zap.String("owner_id", talent.ID.String()),
	)
	return team, nil
}

// GetMyTeams lists the caller's teams with their membership. Unresolved callers get
// an empty list.
func (u *TeamUsecase) GetMyTeams(ctx context.Context, identity *entities.Identity) ([]*entities.MyTeam, error) {
	talent, err := u.identities.ResolveOptional(ctx, identity)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return []*entities.MyTeam{}, nil
	}

	memberships, err := u.memberRepo.ListByTalent(ctx, talent.ID)
	if err != nil {
		return nil, err
	}
	teamIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}
	teams, err := u.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}
	byID := indexTeams(teams)

	items := make([]*entities.MyTeam, 0, len(memberships))
	for _, m := range memberships {
		team, ok := byID[m.TeamID]
		if !ok {
			continue
		}
		items = append(items, &entities.MyTeam{
			Team: team,
			Membership: entities.MembershipSummary{
				Position: m.Position,
				Role:     m.Role,
				JoinedAt: m.JoinedAt,
			},
			IsCurrentTeam: talent.CurrentTeamID != nil && *talent.CurrentTeamID == team.ID,
		})
	}
	return items, nil
}

// UpdateTeam patches a team. Requires owner or admin.
func (u *TeamUsecase) UpdateTeam(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, input *entities.UpdateTeamInput) (*entities.Team, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := u.guard.Require(ctx, talent.ID, teamID, entities.ActionManageTeam); err != nil {
		return nil, err
	}
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, notFound(err, "team not found")
	}
	if err := input.Apply(team); err != nil {
		return nil, err
	}
	if err := u.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes a team with its postings, their applications and matches, and
// its memberships, clearing it as anyone's current team. Requires owner.
func (u *TeamUsecase) DeleteTeam(ctx context.Context, identity *entities.Identity, teamID uuid.UUID) error {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return err
	}
	if err := u.guard.Require(ctx, talent.ID, teamID, entities.ActionDeleteTeam); err != nil {
		return err
	}
	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		return notFound(err, "team not found")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		postings, err := u.postingRepo.ListByTeam(txCtx, teamID, false)
		if err != nil {
			return err
		}
		postingIDs := make([]uuid.UUID, 0, len(postings))
		for _, p := range postings {
			postingIDs = append(postingIDs, p.ID)
		}
		apps, err := u.appRepo.ListByPostings(txCtx, postingIDs, "")
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
		if err := u.postingRepo.DeleteByTeam(txCtx, teamID); err != nil {
			return err
		}
		if err := u.memberRepo.DeleteByTeam(txCtx, teamID); err != nil {
			return err
		}
		if err := u.talentRepo.ClearCurrentTeam(txCtx, teamID); err != nil {
			return err
		}
		return u.teamRepo.Delete(txCtx, teamID)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "Team deleted", zap.String("team_id", teamID.String()))
	return nil
}
