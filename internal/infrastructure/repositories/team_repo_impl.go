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

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	if team.ID == uuid.Nil {
		team.ID = utils.GenerateUUIDv7()
	}
	m := r.toModel(team)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var m models.Team
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Team, error) {
	if len(ids) == 0 {
		return []*entities.Team{}, nil
	}
	var ms []models.Team
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TeamRepository) ListByLocation(ctx context.Context, location string) ([]*entities.Team, error) {
	var ms []models.Team
	if err := GetDB(ctx, r.db).Where("location = ?", location).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	updates := map[string]interface{}{
		"name":          team.Name,
		"description":   team.Description,
		"industry":      team.Industry,
		"size":          team.Size,
		"location":      team.Location,
		"address":       team.Address,
		"service_style": team.ServiceStyle,
		"contact_email": team.ContactEmail,
		"contact_phone": team.ContactPhone,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) toEntities(ms []models.Team) []*entities.Team {
	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	return &entities.Team{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Industry:     m.Industry,
		Size:         m.Size,
		Location:     m.Location,
		Address:      m.Address,
		ServiceStyle: m.ServiceStyle,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		OwnerID:      m.OwnerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Industry:     e.Industry,
		Size:         e.Size,
		Location:     e.Location,
		Address:      e.Address,
		ServiceStyle: e.ServiceStyle,
		ContactEmail: e.ContactEmail,
		ContactPhone: e.ContactPhone,
		OwnerID:      e.OwnerID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	if member.ID == uuid.Nil {
		member.ID = utils.GenerateUUIDv7()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	m := &models.TeamMember{
		ID:       member.ID,
		TalentID: member.TalentID,
		TeamID:   member.TeamID,
		Position: member.Position,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

func (r *TeamMemberRepository) GetByTeamAndTalent(ctx context.Context, teamID, talentID uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	err := GetDB(ctx, r.db).Where("team_id = ? AND talent_id = ?", teamID, talentID).First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return memberToEntity(&m), nil
}

func (r *TeamMemberRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := GetDB(ctx, r.db).Where("talent_id = ?", talentID).Order("joined_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return membersToEntities(ms), nil
}

func (r *TeamMemberRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := GetDB(ctx, r.db).Where("team_id = ?", teamID).Order("joined_at ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return membersToEntities(ms), nil
}

func (r *TeamMemberRepository) HasRoleInAnyTeam(ctx context.Context, talentID uuid.UUID, roles []entities.TeamRole) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	var count int64
	err := GetDB(ctx, r.db).Model(&models.TeamMember{}).
		Where("talent_id = ? AND role IN ?", talentID, names).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) DeleteByTalent(ctx context.Context, talentID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("talent_id = ?", talentID).Delete(&models.TeamMember{}).Error
}

func (r *TeamMemberRepository) DeleteByTeam(ctx context.Context, teamID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error
}

func memberToEntity(m *models.TeamMember) *entities.TeamMember {
	return &entities.TeamMember{
		ID:       m.ID,
		TalentID: m.TalentID,
		TeamID:   m.TeamID,
		Position: m.Position,
		Role:     entities.TeamRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func membersToEntities(ms []models.TeamMember) []*entities.TeamMember {
	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		items = append(items, memberToEntity(&ms[i]))
	}
	return items
}
