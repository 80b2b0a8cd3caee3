package service

import (
	"context"
	"encoding/json"

	"problem-bank/internal/cache"
	"problem-bank/internal/config"
	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/logger"

	"go.uber.org/zap"
)

// CategoryService exposes category listing and creation. The listing is
// served from Redis when possible; cache failures degrade to database reads.
type CategoryService interface {
	GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	AddCategory(ctx context.Context, req *dto.AddCategoryRequest) (*dto.CategoryResponse, error)
}

type categoryServiceImpl struct {
	categoryRepo domain.CategoryRepository
	cache        domain.Cache
	appConfig    *config.Config
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(categoryRepo domain.CategoryRepository, cacheAdapter domain.Cache, appConfig *config.Config) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		cache:        cacheAdapter,
		appConfig:    appConfig,
	}
}

func categoryListCacheKey() string {
	return cache.GenerateCacheKey("category", "list", "all")
}

// GetAllCategories returns all non-deleted categories, cache first.
func (s *categoryServiceImpl) GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	appLogger := logger.Get()
	key := categoryListCacheKey()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var response dto.CategoryListResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
		appLogger.Warn("Failed to unmarshal cached category list, falling back to DB", zap.String("key", key))
	} else if err != domain.ErrCacheMiss {
		appLogger.Warn("Category cache read failed, falling back to DB", zap.Error(err))
	}

	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := &dto.CategoryListResponse{
		Categories: make([]dto.CategoryResponse, len(categories)),
	}
	for i, c := range categories {
		response.Categories[i] = dto.CategoryResponse{
			UUID:       c.UUID,
			Name:       c.Name,
			CreateTime: c.CreateTime,
		}
	}

	if encoded, err := json.Marshal(response); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.appConfig.Cache.CategoryListTTL); err != nil {
			appLogger.Warn("Failed to cache category list", zap.Error(err))
		}
	}

	return response, nil
}

// AddCategory persists a new category and invalidates the cached listing.
// A duplicate name passes the repository's conflict error through.
func (s *categoryServiceImpl) AddCategory(ctx context.Context, req *dto.AddCategoryRequest) (*dto.CategoryResponse, error) {
	appLogger := logger.Get()

	category := &domain.Category{Name: req.Name}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, categoryListCacheKey()); err != nil {
		appLogger.Warn("Failed to invalidate category list cache", zap.Error(err))
	}

	appLogger.Info("Category created",
		zap.String("categoryUUID", category.UUID),
		zap.String("name", category.Name))

	return &dto.CategoryResponse{
		UUID:       category.UUID,
		Name:       category.Name,
		CreateTime: category.CreateTime,
	}, nil
}
