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

// ApplicationUsecase handles application submission and the application lifecycle
type ApplicationUsecase struct {
	appRepo      repositories.ApplicationRepository
	matchRepo    repositories.MatchRepository
	postingRepo  repositories.JobPostingRepository
	teamRepo     repositories.TeamRepository
	memberRepo   repositories.TeamMemberRepository
	talentRepo   repositories.TalentRepository
	skillRepo    repositories.SkillRepository
	languageRepo repositories.LanguageRepository
	uow          repositories.UnitOfWork
	policy       LifecyclePolicy
	identities   *IdentityResolver
	guard        *AccessGuard
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo repositories.ApplicationRepository,
	matchRepo repositories.MatchRepository,
	postingRepo repositories.JobPostingRepository,
	teamRepo repositories.TeamRepository,
	memberRepo repositories.TeamMemberRepository,
	talentRepo repositories.TalentRepository,
	skillRepo repositories.SkillRepository,
	languageRepo repositories.LanguageRepository,
	uow repositories.UnitOfWork,
	policy LifecyclePolicy,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:      appRepo,
		matchRepo:    matchRepo,
		postingRepo:  postingRepo,
		teamRepo:     teamRepo,
		memberRepo:   memberRepo,
		talentRepo:   talentRepo,
		skillRepo:    skillRepo,
		languageRepo: languageRepo,
		uow:          uow,
		policy:       policy,
		identities:   NewIdentityResolver(talentRepo),
		guard:        NewAccessGuard(memberRepo),
	}
}

// ApplyToJob submits a pending application to an active posting.
func (u *ApplicationUsecase) ApplyToJob(ctx context.Context, identity *entities.Identity, input *entities.ApplyInput) (*entities.ApplyResult, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	posting, err := u.postingRepo.GetByID(ctx, input.JobPostingID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if posting == nil || !posting.IsActive {
		return nil, domainerrors.NotFound("Job posting not found or inactive")
	}

	var app *entities.Application
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		existing, err := u.appRepo.GetByTalentAndPosting(txCtx, talent.ID, posting.ID)
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
		case err != nil:
			return err
		case u.canReopen(existing):
			existing.Status = entities.ApplicationPending
			existing.Notes = input.Notes
			app = existing
			return u.appRepo.Update(txCtx, existing)
		default:
			return alreadyApplied()
		}

		app = &entities.Application{
			TalentID:     talent.ID,
			JobPostingID: posting.ID,
			Status:       entities.ApplicationPending,
			Notes:        input.Notes,
		}
		if err := u.appRepo.Create(txCtx, app); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return alreadyApplied()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &entities.ApplyResult{ApplicationID: app.ID, JobTitle: posting.Title}
	if team, err := u.teamRepo.GetByID(ctx, posting.TeamID); err == nil {
		result.TeamName = team.Name
	}

	metrics.ApplicationSubmitted()
	logger.Info(ctx, "Application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("job_posting_id", posting.ID.String()),
		zap.String("talent_id", talent.ID.String()),
	)
	return result, nil
}

func (u *ApplicationUsecase) canReopen(app *entities.Application) bool {
	if !u.policy.AllowReapply {
		return false
	}
	return app.Status == entities.ApplicationWithdrawn || app.Status == entities.ApplicationRejected
}

func alreadyApplied() error {
	return domainerrors.Conflict("You have already applied to this job posting")
}

// GetMyApplications lists the caller's applications. Unresolved callers get an
// empty list.
func (u *ApplicationUsecase) GetMyApplications(ctx context.Context, identity *entities.Identity) ([]*entities.MyApplication, error) {
	talent, err := u.identities.ResolveOptional(ctx, identity)
	if err != nil {
		return nil, err
	}
	if talent == nil {
		return []*entities.MyApplication{}, nil
	}

	apps, err := u.appRepo.ListByTalent(ctx, talent.ID)
	if err != nil {
		return nil, err
	}
	postingIDs := make([]uuid.UUID, 0, len(apps))
	for _, app := range apps {
		postingIDs = append(postingIDs, app.JobPostingID)
	}
	postings, err := u.postingRepo.GetByIDs(ctx, uniqueIDs(postingIDs))
	if err != nil {
		return nil, err
	}
	postingsByID := indexPostings(postings)
	teamIDs := make([]uuid.UUID, 0, len(postings))
	for _, p := range postings {
		teamIDs = append(teamIDs, p.TeamID)
	}
	teams, err := u.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, err
	}
	teamsByID := indexTeams(teams)

	items := make([]*entities.MyApplication, 0, len(apps))
	for _, app := range apps {
		posting, ok := postingsByID[app.JobPostingID]
		if !ok {
			continue
		}
		item := &entities.MyApplication{
			Application: app,
			JobPosting:  entities.NewJobPostingSummary(posting),
		}
		if team, ok := teamsByID[posting.TeamID]; ok {
			item.Team = entities.NewTeamSummary(team, false)
		}
		items = append(items, item)
	}
	return items, nil
}

// GetTeamApplications lists the applications on a team's postings, optionally
// filtered by status. Requires owner or admin.
func (u *ApplicationUsecase) GetTeamApplications(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, status entities.ApplicationStatus) ([]*entities.TeamApplication, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := u.guard.Require(ctx, talent.ID, teamID, entities.ActionManageTeam); err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, domainerrors.BadRequest("invalid application status: " + string(status))
	}

	postings, err := u.postingRepo.ListByTeam(ctx, teamID, false)
	if err != nil {
		return nil, err
	}
	postingsByID := indexPostings(postings)
	postingIDs := make([]uuid.UUID, 0, len(postings))
	for _, p := range postings {
		postingIDs = append(postingIDs, p.ID)
	}
	apps, err := u.appRepo.ListByPostings(ctx, postingIDs, status)
	if err != nil {
		return nil, err
	}
	talentIDs := make([]uuid.UUID, 0, len(apps))
	for _, app := range apps {
		talentIDs = append(talentIDs, app.TalentID)
	}
	applicants, err := u.talentRepo.GetByIDs(ctx, uniqueIDs(talentIDs))
	if err != nil {
		return nil, err
	}
	applicantsByID := indexTalent(applicants)

	items := make([]*entities.TeamApplication, 0, len(apps))
	for _, app := range apps {
		applicant, ok := applicantsByID[app.TalentID]
		if !ok {
			continue
		}
		posting, ok := postingsByID[app.JobPostingID]
		if !ok {
			continue
		}
		skills, err := u.skillRepo.ListTalentSkills(ctx, applicant.ID)
		if err != nil {
			return nil, err
		}
		languages, err := u.languageRepo.ListByTalent(ctx, applicant.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, &entities.TeamApplication{
			Application: app,
			Applicant:   entities.NewApplicant(applicant, skills, languages),
			JobPosting:  entities.NewJobPostingSummary(posting),
		})
	}
	return items, nil
}

// GetApplicationDetails returns one application for its applicant or for an owner
// or admin of the posting's team. Applicant contact details are shown to the
// applicant, or to the team once a match exists.
func (u *ApplicationUsecase) GetApplicationDetails(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID) (*entities.ApplicationDetails, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, notFound(err, "application not found")
	}

	posting, err := u.postingRepo.GetByID(ctx, app.JobPostingID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	isApplicant := app.TalentID == talent.ID
	if !isApplicant {
		if posting == nil {
			return nil, domainerrors.NotFound("job posting not found")
		}
		ok, err := u.guard.CanAct(ctx, talent.ID, posting.TeamID, entities.RolesFor(entities.ActionManageTeam)...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domainerrors.Forbidden("not authorized to view this application")
		}
	}

	matches, err := u.matchRepo.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	details := &entities.ApplicationDetails{
		Application: app,
		Matches:     make([]entities.MatchSummary, 0, len(matches)),
	}
	for _, m := range matches {
		details.Matches = append(details.Matches, m.Summary())
	}
	if posting != nil {
		details.JobPosting = entities.NewJobPostingSummary(posting)
		if team, err := u.teamRepo.GetByID(ctx, posting.TeamID); err == nil {
			details.Team = entities.NewTeamSummary(team, true)
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
	}
	applicant := talent
	if !isApplicant {
		applicant, err = u.talentRepo.GetByID(ctx, app.TalentID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
	}
	if applicant != nil {
		details.Applicant = entities.NewTalentContact(applicant, isApplicant || len(matches) > 0)
	}
	return details, nil
}

// WithdrawApplication lets the applicant withdraw a pending application.
func (u *ApplicationUsecase) WithdrawApplication(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID) (uuid.UUID, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return uuid.Nil, err
	}
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return uuid.Nil, notFound(err, "application not found")
	}
	if app.TalentID != talent.ID {
		return uuid.Nil, domainerrors.Forbidden("not authorized to withdraw this application")
	}
	if err := checkTransition(app.Status, entities.ApplicationWithdrawn); err != nil {
		return uuid.Nil, err
	}

	app.Status = entities.ApplicationWithdrawn
	if err := u.appRepo.Update(ctx, app); err != nil {
		return uuid.Nil, err
	}

	metrics.ApplicationTransition(string(entities.ApplicationWithdrawn))
	logger.Info(ctx, "Application withdrawn", zap.String("application_id", app.ID.String()))
	return app.ID, nil
}

// UpdateApplicationStatus records a team decision. Matching an application creates
// its match and adds the talent to the team unless already a member, atomically.
func (u *ApplicationUsecase) UpdateApplicationStatus(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID, input *entities.UpdateApplicationStatusInput) (uuid.UUID, error) {
	if !input.Status.IsValid() {
		return uuid.Nil, domainerrors.BadRequest("invalid application status: " + string(input.Status))
	}
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return uuid.Nil, err
	}
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return uuid.Nil, notFound(err, "application not found")
	}
	posting, err := u.postingRepo.GetByID(ctx, app.JobPostingID)
	if err != nil {
		return uuid.Nil, notFound(err, "job posting not found")
	}
	ok, err := u.guard.CanAct(ctx, talent.ID, posting.TeamID, entities.RolesFor(entities.ActionManageTeam)...)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, domainerrors.Forbidden("you don't have permission to update applications for this team")
	}
	if !isTeamDecision(input.Status) {
		return uuid.Nil, domainerrors.InvalidTransition("cannot move application from " + string(app.Status) + " to " + string(input.Status))
	}
	if err := checkTransition(app.Status, input.Status); err != nil {
		return uuid.Nil, err
	}

	app.Status = input.Status
	if input.Notes.Valid {
		app.Notes = input.Notes
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.appRepo.Update(txCtx, app); err != nil {
			return err
		}
		if app.Status != entities.ApplicationMatched {
			return nil
		}

		match := entities.NewMatch(app, posting)
		if err := u.matchRepo.Create(txCtx, match); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("application already has a match")
			}
			return err
		}
		_, err := u.memberRepo.GetByTeamAndTalent(txCtx, posting.TeamID, app.TalentID)
		switch {
		case err == nil:
			return nil
		case !errors.Is(err, domainerrors.ErrNotFound):
			return err
		}
		return u.memberRepo.Create(txCtx, &entities.TeamMember{
			TalentID: app.TalentID,
			TeamID:   posting.TeamID,
			Position: posting.SpecificPosition,
			Role:     entities.TeamRoleMember,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}

	metrics.ApplicationTransition(string(app.Status))
	logger.Info(ctx, "Application status updated",
		zap.String("application_id", app.ID.String()),
		zap.String("status", string(app.Status)),
		zap.String("actor_id", talent.ID.String()),
	)
	return app.ID, nil
}

func isTeamDecision(status entities.ApplicationStatus) bool {
	for _, s := range entities.TeamDecisions {
		if s == status {
			return true
		}
	}
	return false
}

// checkTransition allows only moves out of pending.
func checkTransition(from, to entities.ApplicationStatus) error {
	if from.IsTerminal() || to == entities.ApplicationPending {
		return domainerrors.InvalidTransition("cannot move application from " + string(from) + " to " + string(to))
	}
	return nil
}
