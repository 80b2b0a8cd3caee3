package service

import (
	"context"
	"encoding/json"

	"problem-bank/internal/cache"
	"problem-bank/internal/config"
	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/logger"
	"problem-bank/internal/util"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ProblemService exposes problem listing, detail with prev/next navigation,
// and creation.
type ProblemService interface {
	ListProblems(ctx context.Context, pagination dto.Pagination) (*dto.ProblemListResponse, error)
	GetProblemDetail(ctx context.Context, uuid string) (*dto.ProblemDetailResponse, error)
	AddProblem(ctx context.Context, req *dto.AddProblemRequest, createdBy string) (*dto.AddResourceResponse, error)
}

type problemServiceImpl struct {
	problemRepo domain.ProblemRepository
	cache       domain.Cache
	appConfig   *config.Config
}

// NewProblemService creates a new instance of ProblemService.
func NewProblemService(problemRepo domain.ProblemRepository, cacheAdapter domain.Cache, appConfig *config.Config) ProblemService {
	return &problemServiceImpl{
		problemRepo: problemRepo,
		cache:       cacheAdapter,
		appConfig:   appConfig,
	}
}

// NormalizePagination clamps a pagination request to sane bounds: page is
// 1-based, size defaults to 10 and is capped at 100.
func NormalizePagination(p dto.Pagination) dto.Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}

// ListProblems returns one page of problems, newest first, with count
// metadata. Total pages round up so a partial trailing page is counted.
func (s *problemServiceImpl) ListProblems(ctx context.Context, pagination dto.Pagination) (*dto.ProblemListResponse, error) {
	p := NormalizePagination(pagination)

	problems, total, err := s.problemRepo.ListProblems(ctx, util.PageOffset(p.Page, p.Size), p.Size)
	if err != nil {
		return nil, err
	}

	response := &dto.ProblemListResponse{
		Problems: make([]dto.ProblemSummary, len(problems)),
		PaginationInfo: dto.PaginationInfo{
			TotalItems: total,
			Page:       p.Page,
			Size:       p.Size,
			TotalPages: util.TotalPages(total, p.Size),
		},
	}
	for i, problem := range problems {
		response.Problems[i] = dto.ProblemSummary{
			UUID:        problem.UUID,
			Title:       problem.Title,
			ProblemType: problem.ProblemType,
			Difficulty:  problem.Difficulty,
			Categories:  problem.Categories,
			CreateTime:  problem.CreateTime,
		}
	}
	return response, nil
}

func problemDetailCacheKey(uuid string) string {
	return cache.GenerateCacheKey("problem", "detail", uuid)
}

// GetProblemDetail returns the full problem plus prev/next sibling uuids.
// The assembled detail is cached by uuid with a short TTL; adjacency can lag
// behind a fresh insert for at most that long.
func (s *problemServiceImpl) GetProblemDetail(ctx context.Context, uuid string) (*dto.ProblemDetailResponse, error) {
	appLogger := logger.Get()
	key := problemDetailCacheKey(uuid)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var response dto.ProblemDetailResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
		appLogger.Warn("Failed to unmarshal cached problem detail, falling back to DB", zap.String("key", key))
	} else if err != domain.ErrCacheMiss {
		appLogger.Warn("Problem cache read failed, falling back to DB", zap.Error(err))
	}

	problem, err := s.problemRepo.GetProblemByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if problem == nil {
		return nil, domain.NewNotFoundError("Problem not found")
	}

	adjacent, err := s.problemRepo.GetAdjacentUUIDs(ctx, problem.ID)
	if err != nil {
		return nil, err
	}

	response := &dto.ProblemDetailResponse{
		UUID:        problem.UUID,
		Title:       problem.Title,
		Description: problem.Description,
		ProblemType: problem.ProblemType,
		Difficulty:  problem.Difficulty,
		Categories:  problem.Categories,
		Answer:      problem.Answer,
		CreatedBy:   problem.CreatedBy,
		CreateTime:  problem.CreateTime,
		PrevUUID:    adjacent.Prev,
		NextUUID:    adjacent.Next,
	}

	if encoded, err := json.Marshal(response); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.appConfig.Cache.ProblemDetailTTL); err != nil {
			appLogger.Warn("Failed to cache problem detail", zap.Error(err))
		}
	}

	return response, nil
}

// AddProblem persists a new problem attributed to the authenticated creator.
// A duplicate title passes the repository's conflict error through.
func (s *problemServiceImpl) AddProblem(ctx context.Context, req *dto.AddProblemRequest, createdBy string) (*dto.AddResourceResponse, error) {
	appLogger := logger.Get()

	problem := &domain.Problem{
		Title:       req.Title,
		Description: req.Description,
		ProblemType: req.ProblemType,
		Difficulty:  req.Difficulty,
		Categories:  req.Categories,
		Answer:      req.Answer,
		CreatedBy:   createdBy,
	}
	if err := s.problemRepo.SaveProblem(ctx, problem); err != nil {
		return nil, err
	}

	appLogger.Info("Problem created",
		zap.String("problemUUID", problem.UUID),
		zap.String("title", problem.Title),
		zap.String("createdBy", createdBy))

	return &dto.AddResourceResponse{
		Message: "Problem created successfully",
		UUID:    problem.UUID,
	}, nil
}
