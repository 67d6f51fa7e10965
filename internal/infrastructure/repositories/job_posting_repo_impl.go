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

type JobPostingRepository struct {
	db *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) *JobPostingRepository {
	return &JobPostingRepository{db: db}
}

func (r *JobPostingRepository) Create(ctx context.Context, posting *entities.JobPosting) error {
	if posting.ID == uuid.Nil {
		posting.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(posting)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	posting.CreatedAt = m.CreatedAt
	posting.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *JobPostingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.JobPosting, error) {
	var m models.JobPosting
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m)
}

func (r *JobPostingRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.JobPosting, error) {
	if len(ids) == 0 {
		return []*entities.JobPosting{}, nil
	}
	var ms []models.JobPosting
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *JobPostingRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, activeOnly bool) ([]*entities.JobPosting, error) {
	query := GetDB(ctx, r.db).Where("team_id = ?", teamID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var ms []models.JobPosting
	if err := query.Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *JobPostingRepository) ListActive(ctx context.Context) ([]*entities.JobPosting, error) {
	var ms []models.JobPosting
	if err := GetDB(ctx, r.db).Where("is_active = ?", true).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *JobPostingRepository) Update(ctx context.Context, posting *entities.JobPosting) error {
	m := r.toModel(posting)
	updates := map[string]interface{}{
		"title":               m.Title,
		"description":         m.Description,
		"service_style":       m.ServiceStyle,
		"position_type":       m.PositionType,
		"specific_position":   m.SpecificPosition,
		"experience_required": m.ExperienceRequired,
		"required_skills":     m.RequiredSkills,
		"shifts":              m.Shifts,
		"compensation_type":   m.CompensationType,
		"compensation_min":    m.CompensationMin,
		"compensation_max":    m.CompensationMax,
		"is_active":           m.IsActive,
		"start_date":          m.StartDate,
		"updated_at":          time.Now(),
	}
	result := GetDB(ctx, r.db).Model(&models.JobPosting{}).Where("id = ?", posting.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *JobPostingRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.JobPosting{}).Error
}

func (r *JobPostingRepository) toEntities(ms []models.JobPosting) ([]*entities.JobPosting, error) {
	items := make([]*entities.JobPosting, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *JobPostingRepository) toEntity(m *models.JobPosting) (*entities.JobPosting, error) {
	p := &entities.JobPosting{
		ID:                 m.ID,
		TeamID:             m.TeamID,
		Title:              m.Title,
		Description:        m.Description,
		ServiceStyle:       m.ServiceStyle,
		PositionType:       entities.PositionType(m.PositionType),
		SpecificPosition:   m.SpecificPosition,
		ExperienceRequired: m.ExperienceRequired,
		CompensationType:   entities.CompensationType(m.CompensationType),
		CompensationRange:  entities.CompensationRange{Min: m.CompensationMin, Max: m.CompensationMax},
		IsActive:           m.IsActive,
		StartDate:          m.StartDate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if err := fromJSON(m.RequiredSkills, &p.RequiredSkills); err != nil {
		return nil, err
	}
	if err := fromJSON(m.Shifts, &p.Shifts); err != nil {
		return nil, err
	}
	if p.RequiredSkills == nil {
		p.RequiredSkills = []uuid.UUID{}
	}
	p.Shifts = p.Shifts.Normalized()
	return p, nil
}

func (r *JobPostingRepository) toModel(e *entities.JobPosting) *models.JobPosting {
	skills := e.RequiredSkills
	if skills == nil {
		skills = []uuid.UUID{}
	}
	return &models.JobPosting{
		ID:                 e.ID,
		TeamID:             e.TeamID,
		Title:              e.Title,
		Description:        e.Description,
		ServiceStyle:       e.ServiceStyle,
		PositionType:       string(e.PositionType),
		SpecificPosition:   e.SpecificPosition,
		ExperienceRequired: e.ExperienceRequired,
		RequiredSkills:     toJSON(skills),
		Shifts:             toJSON(e.Shifts.Normalized()),
		CompensationType:   string(e.CompensationType),
		CompensationMin:    e.CompensationRange.Min,
		CompensationMax:    e.CompensationRange.Max,
		IsActive:           e.IsActive,
		StartDate:          e.StartDate,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
