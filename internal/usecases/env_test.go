package usecases_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/infrastructure/models"
	"mise.backend/internal/infrastructure/repositories"
	"mise.backend/internal/usecases"
)

// testEnv wires every usecase to repositories backed by an in-memory sqlite store.
type testEnv struct {
	ctx context.Context
	db  *gorm.DB

	talentRepo  *repositories.TalentRepository
	memberRepo  *repositories.TeamMemberRepository
	matchRepo   *repositories.MatchRepository
	appRepo     *repositories.ApplicationRepository
	postingRepo *repositories.JobPostingRepository

	talent   *usecases.TalentUsecase
	teams    *usecases.TeamUsecase
	postings *usecases.JobPostingUsecase
	apps     *usecases.ApplicationUsecase
	matches  *usecases.MatchUsecase
	search   *usecases.TalentSearchUsecase
	options  *usecases.PredefinedOptionUsecase
}

func newTestEnv(t *testing.T, policy usecases.LifecyclePolicy) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	talentRepo := repositories.NewTalentRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	languageRepo := repositories.NewLanguageRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	memberRepo := repositories.NewTeamMemberRepository(db)
	postingRepo := repositories.NewJobPostingRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	optionRepo := repositories.NewPredefinedOptionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	return &testEnv{
		ctx:         context.Background(),
		db:          db,
		talentRepo:  talentRepo,
		memberRepo:  memberRepo,
		matchRepo:   matchRepo,
		appRepo:     appRepo,
		postingRepo: postingRepo,
		talent:      usecases.NewTalentUsecase(talentRepo, skillRepo, languageRepo, memberRepo, appRepo, matchRepo, uow),
		teams:       usecases.NewTeamUsecase(teamRepo, memberRepo, talentRepo, postingRepo, appRepo, matchRepo, uow),
		postings:    usecases.NewJobPostingUsecase(postingRepo, teamRepo, skillRepo, talentRepo, memberRepo, nil),
		apps: usecases.NewApplicationUsecase(appRepo, matchRepo, postingRepo, teamRepo, memberRepo,
			talentRepo, skillRepo, languageRepo, uow, policy),
		matches: usecases.NewMatchUsecase(matchRepo, teamRepo, postingRepo, memberRepo, talentRepo, uow, policy),
		search:  usecases.NewTalentSearchUsecase(talentRepo, skillRepo, languageRepo, memberRepo),
		options: usecases.NewPredefinedOptionUsecase(optionRepo, uow, nil),
	}
}

func identityFor(subject string) *entities.Identity {
	return &entities.Identity{
		Subject:         subject,
		Issuer:          "https://auth.test",
		Name:            subject,
		Email:           subject + "@example.com",
		TokenIdentifier: entities.TokenIdentifierFor("https://auth.test", subject),
	}
}

func profileInput(first string) *entities.TalentProfileInput {
	return &entities.TalentProfileInput{
		FirstName:               first,
		LastName:                "Tester",
		Email:                   strings.ToLower(first) + "@example.com",
		Phone:                   "555-0100",
		LastFourSSN:             "1234",
		LegallyWorkInUS:         true,
		Over21:                  true,
		LivingArea:              "Capitol Hill/Madison Park",
		InterestedWorkingArea:   "Downtown/SLU",
		CommuteMethod:           []string{"Cycle or walk"},
		ServiceStylePreferences: []string{"Fine dining"},
		PositionPreferences:     []string{"Line cook"},
		ExperienceLevel:         "3-5 years",
		Availability:            entities.WeeklySchedule{Friday: []string{"Nights"}},
		DesiredHourlyWage:       null.Float64From(20),
		StartDatePreference:     "Immediately",
		Skills:                  []string{"Grill", "Knife skills"},
		Languages:               []string{"English"},
	}
}

// signUp creates a profile for subject; mutate may adjust the input first.
func (e *testEnv) signUp(t *testing.T, subject string, mutate func(*entities.TalentProfileInput)) (*entities.Identity, *entities.TalentProfile) {
	t.Helper()
	id := identityFor(subject)
	input := profileInput(subject)
	if mutate != nil {
		mutate(input)
	}
	profile, err := e.talent.SaveProfile(e.ctx, id, input)
	require.NoError(t, err)
	return id, profile
}

func (e *testEnv) createTeam(t *testing.T, owner *entities.Identity, name, location string) *entities.Team {
	t.Helper()
	team, err := e.teams.CreateTeam(e.ctx, owner, &entities.CreateTeamInput{
		Name:         name,
		Industry:     "Restaurant",
		Location:     location,
		ServiceStyle: "Fine dining",
		ContactEmail: strings.ToLower(name) + "@example.com",
	})
	require.NoError(t, err)
	return team
}

func postingInput(title string) *entities.JobPostingInput {
	return &entities.JobPostingInput{
		Title:              title,
		Description:        "Evening line",
		ServiceStyle:       "Fine dining",
		PositionType:       entities.PositionBOH,
		SpecificPosition:   "Line cook",
		ExperienceRequired: "3-5 years",
		Shifts:             entities.WeeklySchedule{Friday: []string{"Nights"}},
		CompensationType:   entities.CompensationHourly,
		CompensationRange:  entities.CompensationRange{Min: 18, Max: 22},
	}
}

func (e *testEnv) createPosting(t *testing.T, admin *entities.Identity, teamID uuid.UUID, input *entities.JobPostingInput) *entities.JobPosting {
	t.Helper()
	posting, err := e.postings.CreateJobPosting(e.ctx, admin, teamID, input)
	require.NoError(t, err)
	return posting
}

func (e *testEnv) apply(t *testing.T, id *entities.Identity, postingID uuid.UUID) uuid.UUID {
	t.Helper()
	res, err := e.apps.ApplyToJob(e.ctx, id, &entities.ApplyInput{JobPostingID: postingID})
	require.NoError(t, err)
	return res.ApplicationID
}

func (e *testEnv) decide(t *testing.T, admin *entities.Identity, appID uuid.UUID, status entities.ApplicationStatus) {
	t.Helper()
	_, err := e.apps.UpdateApplicationStatus(e.ctx, admin, appID, &entities.UpdateApplicationStatusInput{Status: status})
	require.NoError(t, err)
}

func (e *testEnv) talentID(t *testing.T, id *entities.Identity) uuid.UUID {
	t.Helper()
	talent, err := e.talentRepo.GetByTokenIdentifier(e.ctx, id.TokenIdentifier)
	require.NoError(t, err)
	return talent.ID
}

// scenario is owner A with team Z and hourly posting P (18-22), and applicant T.
type scenario struct {
	owner     *entities.Identity
	applicant *entities.Identity
	team      *entities.Team
	posting   *entities.JobPosting
}

func (e *testEnv) newScenario(t *testing.T) scenario {
	t.Helper()
	owner, _ := e.signUp(t, "owner", nil)
	applicant, _ := e.signUp(t, "applicant", nil)
	team := e.createTeam(t, owner, "Zinc", "Downtown/SLU")
	posting := e.createPosting(t, owner, team.ID, postingInput("Line Cook"))
	return scenario{owner: owner, applicant: applicant, team: team, posting: posting}
}
