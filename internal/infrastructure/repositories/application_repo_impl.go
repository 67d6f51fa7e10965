package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/infrastructure/models"
	"mise.backend/pkg/utils"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	if app.ID == uuid.Nil {
		app.ID = utils.GenerateUUIDv7()
	}
	m := &models.Application{
		ID:           app.ID,
		TalentID:     app.TalentID,
		JobPostingID: app.JobPostingID,
		Status:       string(app.Status),
		Notes:        app.Notes,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var m models.Application
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return applicationToEntity(&m), nil
}

func (r *ApplicationRepository) GetByTalentAndPosting(ctx context.Context, talentID, postingID uuid.UUID) (*entities.Application, error) {
	var m models.Application
	err := GetDB(ctx, r.db).Where("talent_id = ? AND job_posting_id = ?", talentID, postingID).First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return applicationToEntity(&m), nil
}

func (r *ApplicationRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.Application, error) {
	var ms []models.Application
	if err := GetDB(ctx, r.db).Where("talent_id = ?", talentID).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return applicationsToEntities(ms), nil
}

func (r *ApplicationRepository) ListByPostings(ctx context.Context, postingIDs []uuid.UUID, status entities.ApplicationStatus) ([]*entities.Application, error) {
	if len(postingIDs) == 0 {
		return []*entities.Application{}, nil
	}
	query := GetDB(ctx, r.db).Where("job_posting_id IN ?", postingIDs)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	var ms []models.Application
	if err := query.Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return applicationsToEntities(ms), nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app *entities.Application) error {
	now := time.Now()
	result := GetDB(ctx, r.db).Model(&models.Application{}).Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"status":     string(app.Status),
			"notes":      app.Notes,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	app.UpdatedAt = now
	return nil
}

func (r *ApplicationRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Where("id IN ?", ids).Delete(&models.Application{}).Error
}

func applicationToEntity(m *models.Application) *entities.Application {
	return &entities.Application{
		ID:           m.ID,
		TalentID:     m.TalentID,
		JobPostingID: m.JobPostingID,
		Status:       entities.ApplicationStatus(m.Status),
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func applicationsToEntities(ms []models.Application) []*entities.Application {
	items := make([]*entities.Application, 0, len(ms))
	for i := range ms {
		items = append(items, applicationToEntity(&ms[i]))
	}
	return items
}

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, match *entities.Match) error {
	if match.ID == uuid.Nil {
		match.ID = utils.GenerateUUIDv7()
	}
	m := &models.Match{
		ID:                 match.ID,
		ApplicationID:      match.ApplicationID,
		TalentID:           match.TalentID,
		TeamID:             match.TeamID,
		JobPostingID:       match.JobPostingID,
		StartDate:          match.StartDate,
		Position:           match.Position,
		CompensationType:   string(match.CompensationType),
		CompensationAmount: match.CompensationAmount,
		Status:             string(match.Status),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	match.CreatedAt = m.CreatedAt
	match.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Match, error) {
	var m models.Match
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return matchToEntity(&m), nil
}

func (r *MatchRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.Match, error) {
	return r.list(ctx, "talent_id = ?", talentID)
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Match, error) {
	return r.list(ctx, "team_id = ?", teamID)
}

func (r *MatchRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entities.Match, error) {
	return r.list(ctx, "application_id = ?", applicationID)
}

func (r *MatchRepository) list(ctx context.Context, cond string, arg interface{}) ([]*entities.Match, error) {
	var ms []models.Match
	if err := GetDB(ctx, r.db).Where(cond, arg).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Match, 0, len(ms))
	for i := range ms {
		items = append(items, matchToEntity(&ms[i]))
	}
	return items, nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MatchStatus) error {
	result := GetDB(ctx, r.db).Model(&models.Match{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) HasOtherActive(ctx context.Context, teamID, talentID, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Match{}).
		Where("team_id = ? AND talent_id = ? AND status = ? AND id <> ?",
			teamID, talentID, string(entities.MatchActive), excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MatchRepository) DeleteByApplications(ctx context.Context, applicationIDs []uuid.UUID) error {
	if len(applicationIDs) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Where("application_id IN ?", applicationIDs).Delete(&models.Match{}).Error
}

func matchToEntity(m *models.Match) *entities.Match {
	return &entities.Match{
		ID:                 m.ID,
		ApplicationID:      m.ApplicationID,
		TalentID:           m.TalentID,
		TeamID:             m.TeamID,
		JobPostingID:       m.JobPostingID,
		StartDate:          m.StartDate,
		Position:           m.Position,
		CompensationType:   entities.CompensationType(m.CompensationType),
		CompensationAmount: m.CompensationAmount,
		Status:             entities.MatchStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
