package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"mise.backend/internal/domain/entities"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/internal/infrastructure/models"
	"mise.backend/pkg/utils"
)

type TalentRepository struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) *TalentRepository {
	return &TalentRepository{db: db}
}

func (r *TalentRepository) Create(ctx context.Context, talent *entities.Talent) error {
	if talent.ID == uuid.Nil {
		talent.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(talent)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	talent.CreatedAt = m.CreatedAt
	talent.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TalentRepository) Update(ctx context.Context, talent *entities.Talent) error {
	m := r.toModel(talent)
	m.UpdatedAt = time.Now()
	result := GetDB(ctx, r.db).Model(&models.Talent{}).Where("id = ?", talent.ID).
		Select("*").Omit("id", "token_identifier", "created_at").Updates(m)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	talent.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TalentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Talent, error) {
	var m models.Talent
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m)
}

func (r *TalentRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Talent, error) {
	if len(ids) == 0 {
		return []*entities.Talent{}, nil
	}
	var ms []models.Talent
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *TalentRepository) GetByTokenIdentifier(ctx context.Context, tokenIdentifier string) (*entities.Talent, error) {
	var m models.Talent
	if err := GetDB(ctx, r.db).Where("token_identifier = ?", tokenIdentifier).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m)
}

func (r *TalentRepository) List(ctx context.Context) ([]*entities.Talent, error) {
	var ms []models.Talent
	if err := GetDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *TalentRepository) SetCurrentTeam(ctx context.Context, talentID uuid.UUID, teamID *uuid.UUID) error {
	result := GetDB(ctx, r.db).Model(&models.Talent{}).Where("id = ?", talentID).
		Updates(map[string]interface{}{"current_team_id": teamID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TalentRepository) ClearCurrentTeam(ctx context.Context, teamID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&models.Talent{}).Where("current_team_id = ?", teamID).
		Updates(map[string]interface{}{"current_team_id": nil, "updated_at": time.Now()}).Error
}

func (r *TalentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Talent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TalentRepository) toEntities(ms []models.Talent) ([]*entities.Talent, error) {
	items := make([]*entities.Talent, 0, len(ms))
	for i := range ms {
		item, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *TalentRepository) toEntity(m *models.Talent) (*entities.Talent, error) {
	t := &entities.Talent{
		ID:                    m.ID,
		TokenIdentifier:       m.TokenIdentifier,
		FirstName:             m.FirstName,
		LastName:              m.LastName,
		Email:                 m.Email,
		Phone:                 m.Phone,
		ProfilePictureURL:     m.ProfilePictureURL,
		LastFourSSN:           m.LastFourSSN,
		LegallyWorkInUS:       m.LegallyWorkInUS,
		InHospitalityIndustry: m.InHospitalityIndustry,
		Over21:                m.Over21,
		LivingArea:            m.LivingArea,
		InterestedWorkingArea: m.InterestedWorkingArea,
		ExperienceLevel:       m.ExperienceLevel,
		LastJobName:           m.LastJobName,
		LastJobPosition:       m.LastJobPosition,
		LastJobDuration:       m.LastJobDuration,
		LastJobLeaveReason:    m.LastJobLeaveReason,
		LastJobContactable:    m.LastJobContactable,
		DesiredHourlyWage:     m.DesiredHourlyWage,
		DesiredYearlySalary:   m.DesiredYearlySalary,
		StartDatePreference:   m.StartDatePreference,
		ProfileComplete:       m.ProfileComplete,
		CurrentTeamID:         m.CurrentTeamID,
		AdditionalNotes:       m.AdditionalNotes,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	for _, col := range []struct {
		data datatypes.JSON
		out  interface{}
	}{
		{m.CommuteMethod, &t.CommuteMethod},
		{m.ServiceStylePreferences, &t.ServiceStylePreferences},
		{m.PositionPreferences, &t.PositionPreferences},
		{m.Availability, &t.Availability},
	} {
		if err := fromJSON(col.data, col.out); err != nil {
			return nil, err
		}
	}
	t.Availability = t.Availability.Normalized()
	return t, nil
}

func (r *TalentRepository) toModel(e *entities.Talent) *models.Talent {
	return &models.Talent{
		ID:                      e.ID,
		TokenIdentifier:         e.TokenIdentifier,
		FirstName:               e.FirstName,
		LastName:                e.LastName,
		Email:                   e.Email,
		Phone:                   e.Phone,
		ProfilePictureURL:       e.ProfilePictureURL,
		LastFourSSN:             e.LastFourSSN,
		LegallyWorkInUS:         e.LegallyWorkInUS,
		InHospitalityIndustry:   e.InHospitalityIndustry,
		Over21:                  e.Over21,
		LivingArea:              e.LivingArea,
		InterestedWorkingArea:   e.InterestedWorkingArea,
		CommuteMethod:           toJSON(nonNilStrings(e.CommuteMethod)),
		ServiceStylePreferences: toJSON(nonNilStrings(e.ServiceStylePreferences)),
		PositionPreferences:     toJSON(nonNilStrings(e.PositionPreferences)),
		ExperienceLevel:         e.ExperienceLevel,
		Availability:            toJSON(e.Availability.Normalized()),
		LastJobName:             e.LastJobName,
		LastJobPosition:         e.LastJobPosition,
		LastJobDuration:         e.LastJobDuration,
		LastJobLeaveReason:      e.LastJobLeaveReason,
		LastJobContactable:      e.LastJobContactable,
		DesiredHourlyWage:       e.DesiredHourlyWage,
		DesiredYearlySalary:     e.DesiredYearlySalary,
		StartDatePreference:     e.StartDatePreference,
		ProfileComplete:         e.ProfileComplete,
		CurrentTeamID:           e.CurrentTeamID,
		AdditionalNotes:         e.AdditionalNotes,
		CreatedAt:               e.CreatedAt,
		UpdatedAt:               e.UpdatedAt,
	}
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
