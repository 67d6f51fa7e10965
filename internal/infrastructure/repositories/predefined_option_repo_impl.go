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

type PredefinedOptionRepository struct {
	db *gorm.DB
}

func NewPredefinedOptionRepository(db *gorm.DB) *PredefinedOptionRepository {
	return &PredefinedOptionRepository{db: db}
}

func (r *PredefinedOptionRepository) Create(ctx context.Context, option *entities.PredefinedOption) error {
	if option.ID == uuid.Nil {
		option.ID = utils.GenerateUUIDv7()
	}
	m := &models.PredefinedOption{
		ID:          option.ID,
		Category:    option.Category,
		Value:       option.Value,
		DisplayName: option.DisplayName,
		IsActive:    option.IsActive,
		Order:       option.Order,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	option.CreatedAt = m.CreatedAt
	option.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PredefinedOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PredefinedOption, error) {
	var m models.PredefinedOption
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return optionToEntity(&m), nil
}

func (r *PredefinedOptionRepository) Update(ctx context.Context, option *entities.PredefinedOption) error {
	now := time.Now()
	result := GetDB(ctx, r.db).Model(&models.PredefinedOption{}).Where("id = ?", option.ID).
		Updates(map[string]interface{}{
			"value":        option.Value,
			"display_name": option.DisplayName,
			"is_active":    option.IsActive,
			"sort_order":   option.Order,
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	option.UpdatedAt = now
	return nil
}

func (r *PredefinedOptionRepository) ListByCategory(ctx context.Context, category string, activeOnly bool) ([]*entities.PredefinedOption, error) {
	query := GetDB(ctx, r.db).Where("category = ?", category)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var ms []models.PredefinedOption
	if err := query.Order("sort_order ASC, id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.PredefinedOption, 0, len(ms))
	for i := range ms {
		items = append(items, optionToEntity(&ms[i]))
	}
	return items, nil
}

func (r *PredefinedOptionRepository) MaxOrder(ctx context.Context, category string) (int, error) {
	var maxOrder int
	err := GetDB(ctx, r.db).Model(&models.PredefinedOption{}).
		Where("category = ?", category).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	if maxOrder < 0 {
		maxOrder = 0
	}
	return maxOrder, nil
}

func (r *PredefinedOptionRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := GetDB(ctx, r.db).Model(&models.PredefinedOption{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func optionToEntity(m *models.PredefinedOption) *entities.PredefinedOption {
	return &entities.PredefinedOption{
		ID:          m.ID,
		Category:    m.Category,
		Value:       m.Value,
		DisplayName: m.DisplayName,
		IsActive:    m.IsActive,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
