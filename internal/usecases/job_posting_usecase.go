package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/domain/matching"
	"mise.backend/internal/domain/repositories"
	"mise.backend/pkg/logger"
)

// JobPostingUsecase handles job posting business logic
type JobPostingUsecase struct {
	postingRepo repositories.JobPostingRepository
	teamRepo    repositories.TeamRepository
	skillRepo   repositories.SkillRepository
	identities  *IdentityResolver
	guard       *AccessGuard
	scorer      *matching.Scorer
}

// NewJobPostingUsecase creates a new job posting usecase
func NewJobPostingUsecase(
	postingRepo repositories.JobPostingRepository,
	teamRepo repositories.TeamRepository,
	skillRepo repositories.SkillRepository,
	talentRepo repositories.TalentRepository,
	memberRepo repositories.TeamMemberRepository,
	scorer *matching.Scorer,
) *JobPostingUsecase {
	if scorer == nil {
		scorer = matching.NewScorer()
	}
	return &JobPostingUsecase{
		postingRepo: postingRepo,
		teamRepo:    teamRepo,
		skillRepo:   skillRepo,
		identities:  NewIdentityResolver(talentRepo),
		guard:       NewAccessGuard(memberRepo),
		scorer:      scorer,
	}
}

// GetTeamJobPostings lists a team's postings. Any member may view them.
func (u *JobPostingUsecase) GetTeamJobPostings(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, activeOnly bool) ([]*entities.JobPosting, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := u.guard.Require(ctx, talent.ID, teamID, entities.ActionViewPostings); err != nil {
		return nil, err
	}
	return u.postingRepo.ListByTeam(ctx, teamID, activeOnly)
}

// CreateJobPosting publishes an active posting for a team. Requires owner or admin.
func (u *JobPostingUsecase) CreateJobPosting(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, input *entities.JobPostingInput) (*entities.JobPosting, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	if err := u.guard.Require(ctx, talent.ID, teamID, entities.ActionManageTeam); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, notFound(err, "team not found")
	}

	posting := &entities.JobPosting{TeamID: teamID, IsActive: true}
	input.Apply(posting)
	if err := u.postingRepo.Create(ctx, posting); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Job posting created",
		zap.String("job_posting_id", posting.ID.String()),
		zap.String("team_id", teamID.String()),
	)
	return posting, nil
}

// UpdateJobPosting replaces a posting's content, keeping its team and active flag.
func (u *JobPostingUsecase) UpdateJobPosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID, input *entities.JobPostingInput) (*entities.JobPosting, error) {
	posting, err := u.authorizePosting(ctx, identity, postingID)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.Apply(posting)
	if err := u.postingRepo.Update(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

// DeactivateJobPosting hides a posting from search and new applications.
// Existing applications are kept.
func (u *JobPostingUsecase) DeactivateJobPosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID) error {
	posting, err := u.authorizePosting(ctx, identity, postingID)
	if err != nil {
		return err
	}
	if !posting.IsActive {
		return nil
	}
	posting.IsActive = false
	if err := u.postingRepo.Update(ctx, posting); err != nil {
		return err
	}

	logger.Info(ctx, "Job posting deactivated", zap.String("job_posting_id", postingID.String()))
	return nil
}

func (u *JobPostingUsecase) authorizePosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID) (*entities.JobPosting, error) {
	talent, err := u.identities.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}
	posting, err := u.postingRepo.GetByID(ctx, postingID)
	if err != nil {
		return nil, notFound(err, "job posting not found")
	}
	if err := u.guard.Require(ctx, talent.ID, posting.TeamID, entities.ActionManageTeam); err != nil {
		return nil, err
	}
	return posting, nil
}

// SearchJobPostings filters active postings and ranks them by compatibility with
// the caller's profile. Anonymous callers get every result scored 0.
func (u *JobPostingUsecase) SearchJobPostings(ctx context.Context, identity *entities.Identity, input *entities.JobSearchInput) ([]entities.JobSearchResult, error) {
	criteria := matching.PostingCriteria{
		PositionType:     input.PositionType,
		SpecificPosition: input.SpecificPosition,
		ServiceStyle:     input.ServiceStyle,
		CompensationType: input.CompensationType,
		Availability:     input.Availability,
	}
	if input.CompensationMin.Valid {
		v := input.CompensationMin.Float64
		criteria.CompensationMin = &v
	}
	if input.CompensationMax.Valid {
		v := input.CompensationMax.Float64
		criteria.CompensationMax = &v
	}

	if names := cleanNames(input.RequiredSkills); len(names) > 0 {
		skills, err := u.skillRepo.GetByNames(ctx, names)
		if err != nil {
			return nil, err
		}
		if len(skills) == 0 {
			return []entities.JobSearchResult{}, nil
		}
		criteria.SkillIDs = make([]uuid.UUID, 0, len(skills))
		for _, s := range skills {
			criteria.SkillIDs = append(criteria.SkillIDs, s.ID)
		}
	}

	var located map[uuid.UUID]struct{}
	if input.Location != "" {
		teams, err := u.teamRepo.ListByLocation(ctx, input.Location)
		if err != nil {
			return nil, err
		}
		if len(teams) == 0 {
			return []entities.JobSearchResult{}, nil
		}
		located = make(map[uuid.UUID]struct{}, len(teams))
		for _, team := range teams {
			located[team.ID] = struct{}{}
		}
	}

	postings, err := u.postingRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	accepted := make([]*entities.JobPosting, 0, len(postings))
	teamIDs := make([]uuid.UUID, 0, len(postings))
	skillIDs := make([]uuid.UUID, 0)
	for _, p := range postings {
		if located != nil {
			if _, ok := located[p.TeamID]; !ok {
				continue
			}
		}
		if !criteria.Accept(p) {
			continue
		}
		accepted = append(accepted, p)
		teamIDs = append(teamIDs, p.TeamID)
		skillIDs = append(skillIDs, p.RequiredSkills...)
	}
	if len(accepted) == 0 {
		return []entities.JobSearchResult{}, nil
	}

	teams, err := u.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, err
	}
	teamsByID := indexTeams(teams)
	skills, err := u.skillRepo.GetByIDs(ctx, uniqueIDs(skillIDs))
	if err != nil {
		return nil, err
	}
	skillsByID := indexSkills(skills)

	talent, err := u.identities.ResolveOptional(ctx, identity)
	if err != nil {
		return nil, err
	}

	results := make([]entities.JobSearchResult, 0, len(accepted))
	for _, p := range accepted {
		team, ok := teamsByID[p.TeamID]
		if !ok {
			continue
		}
		required := make([]entities.Skill, 0, len(p.RequiredSkills))
		for _, id := range p.RequiredSkills {
			if s, ok := skillsByID[id]; ok {
				required = append(required, s)
			}
		}
		result := entities.JobSearchResult{
			JobPosting:     p,
			Team:           entities.NewTeamSummary(team, false),
			RequiredSkills: required,
		}
		if talent != nil {
			result.MatchScore = u.scorer.Score(talent, p, team)
		}
		results = append(results, result)
	}
	matching.RankByScore(results)
	return results, nil
}
