package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"mise.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock TalentRepository
type MockTalentRepository struct {
	mock.Mock
}

func (m *MockTalentRepository) Create(ctx context.Context, talent *entities.Talent) error {
	args := m.Called(ctx, talent)
	return args.Error(0)
}

func (m *MockTalentRepository) Update(ctx context.Context, talent *entities.Talent) error {
	args := m.Called(ctx, talent)
	return args.Error(0)
}

func (m *MockTalentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Talent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Talent), args.Error(1)
}

func (m *MockTalentRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Talent, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Talent), args.Error(1)
}

func (m *MockTalentRepository) GetByTokenIdentifier(ctx context.Context, tokenIdentifier string) (*entities.Talent, error) {
	args := m.Called(ctx, tokenIdentifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Talent), args.Error(1)
}

func (m *MockTalentRepository) List(ctx context.Context) ([]*entities.Talent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Talent), args.Error(1)
}

func (m *MockTalentRepository) SetCurrentTeam(ctx context.Context, talentID uuid.UUID, teamID *uuid.UUID) error {
	args := m.Called(ctx, talentID, teamID)
	return args.Error(0)
}

func (m *MockTalentRepository) ClearCurrentTeam(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTalentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock TeamMemberRepository
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) GetByTeamAndTalent(ctx context.Context, teamID, talentID uuid.UUID) (*entities.TeamMember, error) {
	args := m.Called(ctx, teamID, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.TeamMember, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) HasRoleInAnyTeam(ctx context.Context, talentID uuid.UUID, roles []entities.TeamRole) (bool, error) {
	args := m.Called(ctx, talentID, roles)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) DeleteByTalent(ctx context.Context, talentID uuid.UUID) error {
	args := m.Called(ctx, talentID)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// Mock PredefinedOptionRepository
type MockPredefinedOptionRepository struct {
	mock.Mock
}

func (m *MockPredefinedOptionRepository) Create(ctx context.Context, option *entities.PredefinedOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockPredefinedOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PredefinedOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PredefinedOption), args.Error(1)
}

func (m *MockPredefinedOptionRepository) Update(ctx context.Context, option *entities.PredefinedOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockPredefinedOptionRepository) ListByCategory(ctx context.Context, category string, activeOnly bool) ([]*entities.PredefinedOption, error) {
	args := m.Called(ctx, category, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PredefinedOption), args.Error(1)
}

func (m *MockPredefinedOptionRepository) MaxOrder(ctx context.Context, category string) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockPredefinedOptionRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Mock OptionCache
type MockOptionCache struct {
	mock.Mock
}

func (m *MockOptionCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockOptionCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockOptionCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// Mock TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Team, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByLocation(ctx context.Context, location string) ([]*entities.Team, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock JobPostingRepository
type MockJobPostingRepository struct {
	mock.Mock
}

func (m *MockJobPostingRepository) Create(ctx context.Context, posting *entities.JobPosting) error {
	args := m.Called(ctx, posting)
	return args.Error(0)
}

func (m *MockJobPostingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.JobPosting, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, activeOnly bool) ([]*entities.JobPosting, error) {
	args := m.Called(ctx, teamID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepository) ListActive(ctx context.Context) ([]*entities.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.JobPosting), args.Error(1)
}

func (m *MockJobPostingRepository) Update(ctx context.Context, posting *entities.JobPosting) error {
	args := m.Called(ctx, posting)
	return args.Error(0)
}

func (m *MockJobPostingRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// Mock SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockSkillRepository) GetByNames(ctx context.Context, names []string) ([]*entities.Skill, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Skill), args.Error(1)
}

func (m *MockSkillRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Skill, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Skill), args.Error(1)
}

func (m *MockSkillRepository) ListTalentSkills(ctx context.Context, talentID uuid.UUID) ([]entities.Skill, error) {
	args := m.Called(ctx, talentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Skill), args.Error(1)
}

func (m *MockSkillRepository) ReplaceTalentSkills(ctx context.Context, talentID uuid.UUID, skillIDs []uuid.UUID) error {
	args := m.Called(ctx, talentID, skillIDs)
	return args.Error(0)
}

func (m *MockSkillRepository) ListTalentIDsWithSkills(ctx context.Context, skillIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, skillIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockSkillRepository) DeleteTalentSkills(ctx context.Context, talentID uuid.UUID) error {
	args := m.Called(ctx, talentID)
	return args.Error(0)
}
