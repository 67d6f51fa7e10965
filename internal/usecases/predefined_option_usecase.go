package usecases

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mise.backend/internal/domain/entities"
	"mise.backend/internal/domain/repositories"
	"mise.backend/pkg/logger"
)

// OptionCache caches option lists by key. Implemented by redis.JSONCache.
type OptionCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// PredefinedOptionUsecase serves and maintains dropdown options
type PredefinedOptionUsecase struct {
	optionRepo repositories.PredefinedOptionRepository
	uow        repositories.UnitOfWork
	cache      OptionCache
}

// NewPredefinedOptionUsecase creates a new predefined option usecase. cache may be
// nil, in which case every read goes to the store.
func NewPredefinedOptionUsecase(optionRepo repositories.PredefinedOptionRepository, uow repositories.UnitOfWork, cache OptionCache) *PredefinedOptionUsecase {
	return &PredefinedOptionUsecase{optionRepo: optionRepo, uow: uow, cache: cache}
}

func optionCacheKey(category string, activeOnly bool) string {
	return category + ":" + strconv.FormatBool(activeOnly)
}

// GetOptions lists a category's options ordered by order.
func (u *PredefinedOptionUsecase) GetOptions(ctx context.Context, category string, activeOnly bool) ([]*entities.PredefinedOption, error) {
	key := optionCacheKey(category, activeOnly)
	if u.cache != nil {
		var cached []*entities.PredefinedOption
		hit, err := u.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn(ctx, "Option cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	options, err := u.optionRepo.ListByCategory(ctx, category, activeOnly)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, key, options); err != nil {
			logger.Warn(ctx, "Option cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return options, nil
}

// SearchOptions returns the category's options whose display name or value
// contains query, case-insensitively, ordered by order.
func (u *PredefinedOptionUsecase) SearchOptions(ctx context.Context, category, query string, activeOnly bool) ([]*entities.PredefinedOption, error) {
	options, err := u.GetOptions(ctx, category, activeOnly)
	if err != nil {
		return nil, err
	}
	matched := make([]*entities.PredefinedOption, 0, len(options))
	for _, o := range options {
		if o.Matches(query) {
			matched = append(matched, o)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Order < matched[j].Order })
	return matched, nil
}

// AddOption creates an option. Without an explicit order it goes last in its
// category. Options are active unless stated otherwise.
func (u *PredefinedOptionUsecase) AddOption(ctx context.Context, input *entities.CreatePredefinedOptionInput) (*entities.PredefinedOption, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	option := &entities.PredefinedOption{
		Category:    input.Category,
		Value:       input.Value,
		DisplayName: input.DisplayName,
		IsActive:    true,
	}
	if input.IsActive != nil {
		option.IsActive = *input.IsActive
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if input.Order != nil {
			option.Order = *input.Order
		} else {
			maxOrder, err := u.optionRepo.MaxOrder(txCtx, input.Category)
			if err != nil {
				return err
			}
			option.Order = maxOrder + 1
		}
		return u.optionRepo.Create(txCtx, option)
	})
	if err != nil {
		return nil, err
	}

	u.invalidate(ctx, option.Category)
	logger.Info(ctx, "Predefined option added",
		zap.String("option_id", option.ID.String()),
		zap.String("category", option.Category),
	)
	return option, nil
}

// UpdateOption patches an option. An empty patch is a no-op.
func (u *PredefinedOptionUsecase) UpdateOption(ctx context.Context, id uuid.UUID, input *entities.UpdatePredefinedOptionInput) (*entities.PredefinedOption, error) {
	option, err := u.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "option not found")
	}
	if input.IsEmpty() {
		return option, nil
	}
	if err := input.Apply(option); err != nil {
		return nil, err
	}
	if err := u.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}

	u.invalidate(ctx, option.Category)
	return option, nil
}

// GetCategories lists the distinct option categories.
func (u *PredefinedOptionUsecase) GetCategories(ctx context.Context) ([]string, error) {
	return u.optionRepo.ListCategories(ctx)
}

func (u *PredefinedOptionUsecase) invalidate(ctx context.Context, category string) {
	if u.cache == nil {
		return
	}
	keys := []string{optionCacheKey(category, true), optionCacheKey(category, false)}
	if err := u.cache.Delete(ctx, keys...); err != nil {
		logger.Warn(ctx, "Option cache invalidation failed", zap.String("category", category), zap.Error(err))
	}
}
