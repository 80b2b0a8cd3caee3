package service

import (
	"context"

	"problem-bank/internal/domain"
	"problem-bank/internal/dto"
	"problem-bank/internal/logger"
	"problem-bank/internal/util"

	"go.uber.org/zap"
)

// CourseService exposes course listing, detail and creation. Listings and
// detail lookups only surface published courses.
type CourseService interface {
	ListCourses(ctx context.Context, pagination dto.Pagination) (*dto.CourseListResponse, error)
	GetCourseDetail(ctx context.Context, uuid string) (*dto.CourseDetailResponse, error)
	AddCourse(ctx context.Context, req *dto.AddCourseRequest, createdBy string) (*dto.AddResourceResponse, error)
}

type courseServiceImpl struct {
	courseRepo domain.CourseRepository
}

// NewCourseService creates a new instance of CourseService.
func NewCourseService(courseRepo domain.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

// ListCourses returns one page of published courses, newest first.
func (s *courseServiceImpl) ListCourses(ctx context.Context, pagination dto.Pagination) (*dto.CourseListResponse, error) {
	p := NormalizePagination(pagination)

	courses, total, err := s.courseRepo.ListPublishedCourses(ctx, util.PageOffset(p.Page, p.Size), p.Size)
	if err != nil {
		return nil, err
	}

	response := &dto.CourseListResponse{
		Courses: make([]dto.CourseSummary, len(courses)),
		PaginationInfo: dto.PaginationInfo{
			TotalItems: total,
			Page:       p.Page,
			Size:       p.Size,
			TotalPages: util.TotalPages(total, p.Size),
		},
	}
	for i, course := range courses {
		response.Courses[i] = dto.CourseSummary{
			UUID:       course.UUID,
			Title:      course.Title,
			Categories: course.Categories,
			Difficulty: course.Difficulty,
			CreateTime: course.CreateTime,
		}
	}
	return response, nil
}

// GetCourseDetail returns a published course by uuid. Unpublished and
// soft-deleted courses are indistinguishable from missing ones.
func (s *courseServiceImpl) GetCourseDetail(ctx context.Context, uuid string) (*dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.GetPublishedCourseByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.NewNotFoundError("Course not found")
	}

	return &dto.CourseDetailResponse{
		UUID:        course.UUID,
		Title:       course.Title,
		Description: course.Description,
		Categories:  course.Categories,
		Difficulty:  course.Difficulty,
		CreatedBy:   course.CreatedBy,
		CreateTime:  course.CreateTime,
	}, nil
}

// AddCourse persists a new course attributed to the authenticated creator.
func (s *courseServiceImpl) AddCourse(ctx context.Context, req *dto.AddCourseRequest, createdBy string) (*dto.AddResourceResponse, error) {
	appLogger := logger.Get()

	course := &domain.Course{
		Title:       req.Title,
		Description: req.Description,
		Categories:  req.Categories,
		Difficulty:  req.Difficulty,
		CreatedBy:   createdBy,
		IsPublished: req.IsPublished,
	}
	if err := s.courseRepo.SaveCourse(ctx, course); err != nil {
		return nil, err
	}

	appLogger.Info("Course created",
		zap.String("courseUUID", course.UUID),
		zap.String("title", course.Title),
		zap.String("createdBy", createdBy))

	return &dto.AddResourceResponse{
		Message: "Course created successfully",
		UUID:    course.UUID,
	}, nil
}
