package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/infrastructure/models"
	"mise.backend/pkg/utils"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = utils.GenerateUUIDv7()
	}
	m := &models.Skill{ID: skill.ID, Name: skill.Name, Category: string(skill.Category)}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	skill.CreatedAt = m.CreatedAt
	return nil
}

func (r *SkillRepository) GetByNames(ctx context.Context, names []string) ([]*entities.Skill, error) {
	if len(names) == 0 {
		return []*entities.Skill{}, nil
	}
	var ms []models.Skill
	if err := GetDB(ctx, r.db).Where("name IN ?", names).Find(&ms).Error; err != nil {
		return nil, err
	}
	return skillsToEntities(ms), nil
}

func (r *SkillRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Skill, error) {
	if len(ids) == 0 {
		return []*entities.Skill{}, nil
	}
	var ms []models.Skill
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	return skillsToEntities(ms), nil
}

func (r *SkillRepository) ListTalentSkills(ctx context.Context, talentID uuid.UUID) ([]entities.Skill, error) {
	var ms []models.Skill
	err := GetDB(ctx, r.db).
		Table("skills").
		Select("skills.*").
		Joins("JOIN talent_skills ON talent_skills.skill_id = skills.id").
		Where("talent_skills.talent_id = ?", talentID).
		Order("talent_skills.added_at ASC, talent_skills.id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Skill, 0, len(ms))
	for i := range ms {
		items = append(items, *skillToEntity(&ms[i]))
	}
	return items, nil
}

func (r *SkillRepository) ReplaceTalentSkills(ctx context.Context, talentID uuid.UUID, skillIDs []uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("talent_id = ?", talentID).Delete(&models.TalentSkill{}).Error; err != nil {
		return err
	}
	seen := make(map[uuid.UUID]struct{}, len(skillIDs))
	links := make([]models.TalentSkill, 0, len(skillIDs))
	now := time.Now()
	for _, id := range skillIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, models.TalentSkill{
			ID:       utils.GenerateUUIDv7(),
			TalentID: talentID,
			SkillID:  id,
			AddedAt:  now,
		})
	}
	if len(links) == 0 {
		return nil
	}
	return translateError(db.Create(&links).Error)
}

func (r *SkillRepository) ListTalentIDsWithSkills(ctx context.Context, skillIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(skillIDs) == 0 {
		return []uuid.UUID{}, nil
	}
	var ids []uuid.UUID
	err := GetDB(ctx, r.db).Model(&models.TalentSkill{}).
		Where("skill_id IN ?", skillIDs).
		Distinct().
		Pluck("talent_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SkillRepository) DeleteTalentSkills(ctx context.Context, talentID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("talent_id = ?", talentID).Delete(&models.TalentSkill{}).Error
}

func skillToEntity(m *models.Skill) *entities.Skill {
	return &entities.Skill{
		ID:        m.ID,
		Name:      m.Name,
		Category:  entities.SkillCategory(m.Category),
		CreatedAt: m.CreatedAt,
	}
}

func skillsToEntities(ms []models.Skill) []*entities.Skill {
	items := make([]*entities.Skill, 0, len(ms))
	for i := range ms {
		items = append(items, skillToEntity(&ms[i]))
	}
	return items
}

type LanguageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{db: db}
}

func (r *LanguageRepository) Replace(ctx context.Context, talentID uuid.UUID, languages []string) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("talent_id = ?", talentID).Delete(&models.TalentLanguage{}).Error; err != nil {
		return err
	}
	if len(languages) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.TalentLanguage, 0, len(languages))
	for _, lang := range languages {
		rows = append(rows, models.TalentLanguage{
			ID:       utils.GenerateUUIDv7(),
			TalentID: talentID,
			Language: lang,
			AddedAt:  now,
		})
	}
	return db.Create(&rows).Error
}

func (r *LanguageRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]string, error) {
	var languages []string
	err := GetDB(ctx, r.db).Model(&models.TalentLanguage{}).
		Where("talent_id = ?", talentID).
		Order("added_at ASC, id ASC").
		Pluck("language", &languages).Error
	if err != nil {
		return nil, err
	}
	if languages == nil {
		languages = []string{}
	}
	return languages, nil
}

func (r *LanguageRepository) DeleteByTalent(ctx context.Context, talentID uuid.UUID) error {
	return GetDB(ctx, r.db).Where("talent_id = ?", talentID).Delete(&models.TalentLanguage{}).Error
}
