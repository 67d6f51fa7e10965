package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"mise.backend/internal/domain/entities"
)

type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) CreateTeam(ctx context.Context, identity *entities.Identity, input *entities.CreateTeamInput) (*entities.Team, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *mockTeamService) GetMyTeams(ctx context.Context, identity *entities.Identity) ([]*entities.MyTeam, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MyTeam), args.Error(1)
}

func (m *mockTeamService) UpdateTeam(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, input *entities.UpdateTeamInput) (*entities.Team, error) {
	args := m.Called(ctx, identity, teamID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *mockTeamService) DeleteTeam(ctx context.Context, identity *entities.Identity, teamID uuid.UUID) error {
	args := m.Called(ctx, identity, teamID)
	return args.Error(0)
}

type mockApplicationService struct {
	mock.Mock
}

func (m *mockApplicationService) ApplyToJob(ctx context.Context, identity *entities.Identity, input *entities.ApplyInput) (*entities.ApplyResult, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ApplyResult), args.Error(1)
}

func (m *mockApplicationService) GetMyApplications(ctx context.Context, identity *entities.Identity) ([]*entities.MyApplication, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MyApplication), args.Error(1)
}

func (m *mockApplicationService) GetTeamApplications(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, status entities.ApplicationStatus) ([]*entities.TeamApplication, error) {
	args := m.Called(ctx, identity, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TeamApplication), args.Error(1)
}

func (m *mockApplicationService) GetApplicationDetails(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID) (*entities.ApplicationDetails, error) {
	args := m.Called(ctx, identity, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ApplicationDetails), args.Error(1)
}

func (m *mockApplicationService) WithdrawApplication(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, identity, applicationID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockApplicationService) UpdateApplicationStatus(ctx context.Context, identity *entities.Identity, applicationID uuid.UUID, input *entities.UpdateApplicationStatusInput) (uuid.UUID, error) {
	args := m.Called(ctx, identity, applicationID, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockJobPostingService struct {
	mock.Mock
}

func (m *mockJobPostingService) GetTeamJobPostings(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, activeOnly bool) ([]*entities.JobPosting, error) {
	args := m.Called(ctx, identity, teamID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.JobPosting), args.Error(1)
}

func (m *mockJobPostingService) CreateJobPosting(ctx context.Context, identity *entities.Identity, teamID uuid.UUID, input *entities.JobPostingInput) (*entities.JobPosting, error) {
	args := m.Called(ctx, identity, teamID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.JobPosting), args.Error(1)
}

func (m *mockJobPostingService) UpdateJobPosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID, input *entities.JobPostingInput) (*entities.JobPosting, error) {
	args := m.Called(ctx, identity, postingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.JobPosting), args.Error(1)
}

func (m *mockJobPostingService) DeactivateJobPosting(ctx context.Context, identity *entities.Identity, postingID uuid.UUID) error {
	args := m.Called(ctx, identity, postingID)
	return args.Error(0)
}

func (m *mockJobPostingService) SearchJobPostings(ctx context.Context, identity *entities.Identity, input *entities.JobSearchInput) ([]entities.JobSearchResult, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.JobSearchResult), args.Error(1)
}

type mockOptionService struct {
	mock.Mock
}

func (m *mockOptionService) GetOptions(ctx context.Context, category string, activeOnly bool) ([]*entities.PredefinedOption, error) {
	args := m.Called(ctx, category, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PredefinedOption), args.Error(1)
}

func (m *mockOptionService) SearchOptions(ctx context.Context, category, query string, activeOnly bool) ([]*entities.PredefinedOption, error) {
	args := m.Called(ctx, category, query, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PredefinedOption), args.Error(1)
}

func (m *mockOptionService) AddOption(ctx context.Context, input *entities.CreatePredefinedOptionInput) (*entities.PredefinedOption, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PredefinedOption), args.Error(1)
}

func (m *mockOptionService) UpdateOption(ctx context.Context, id uuid.UUID, input *entities.UpdatePredefinedOptionInput) (*entities.PredefinedOption, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PredefinedOption), args.Error(1)
}

func (m *mockOptionService) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockTalentService struct {
	mock.Mock
}

func (m *mockTalentService) GetCurrentUser(identity *entities.Identity) *entities.Identity {
	args := m.Called(identity)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*entities.Identity)
}

func (m *mockTalentService) GetProfile(ctx context.Context, identity *entities.Identity) (*entities.TalentProfile, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TalentProfile), args.Error(1)
}

func (m *mockTalentService) SaveProfile(ctx context.Context, identity *entities.Identity, input *entities.TalentProfileInput) (*entities.TalentProfile, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TalentProfile), args.Error(1)
}

func (m *mockTalentService) DeleteProfile(ctx context.Context, identity *entities.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

type mockTalentSearchService struct {
	mock.Mock
}

func (m *mockTalentSearchService) SearchTalent(ctx context.Context, identity *entities.Identity, input *entities.TalentSearchInput) ([]entities.TalentSearchResult, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TalentSearchResult), args.Error(1)
}

type mockMatchService struct {
	mock.Mock
}

func (m *mockMatchService) GetMyMatches(ctx context.Context, identity *entities.Identity) ([]*entities.MyMatch, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MyMatch), args.Error(1)
}

func (m *mockMatchService) GetTeamMatches(ctx context.Context, identity *entities.Identity, teamID uuid.UUID) ([]*entities.TeamMatch, error) {
	args := m.Called(ctx, identity, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TeamMatch), args.Error(1)
}

func (m *mockMatchService) UpdateMatchStatus(ctx context.Context, identity *entities.Identity, matchID uuid.UUID, input *entities.UpdateMatchStatusInput) (uuid.UUID, error) {
	args := m.Called(ctx, identity, matchID, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
