package service

import (
	"context"
	"testing"
	"time"

	"problem-bank/internal/domain"
	"problem-bank/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &MockCourseRepository{
		ListPublishedCoursesFunc: func(ctx context.Context, offset, limit int) ([]domain.Course, int64, error) {
			gotOffset, gotLimit = offset, limit
			return []domain.Course{
				{UUID: "course-uuid-1", Title: "Intro to Graphs", Categories: "algorithms", Difficulty: 2},
			}, 11, nil
		},
	}
	svc := NewCourseService(repo)

	resp, err := svc.ListCourses(context.Background(), dto.Pagination{Page: 3, Size: 5})
	require.NoError(t, err)

	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 5, gotLimit)
	assert.Len(t, resp.Courses, 1)
	assert.Equal(t, int64(11), resp.PaginationInfo.TotalItems)
	assert.Equal(t, 3, resp.PaginationInfo.TotalPages)
}

func TestGetCourseDetail(t *testing.T) {
	stored := &domain.Course{
		UUID:        "course-uuid-1",
		Title:       "Intro to Graphs",
		Description: "BFS, DFS and friends.",
		Categories:  "algorithms",
		Difficulty:  2,
		CreatedBy:   "alice@example.com",
		CreateTime:  time.Now(),
	}
	repo := &MockCourseRepository{
		GetPublishedCourseByUUIDFunc: func(ctx context.Context, uuid string) (*domain.Course, error) {
			if uuid == stored.UUID {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := NewCourseService(repo)

	resp, err := svc.GetCourseDetail(context.Background(), "course-uuid-1")
	require.NoError(t, err)
	assert.Equal(t, "Intro to Graphs", resp.Title)
	assert.Equal(t, "alice@example.com", resp.CreatedBy)
}

func TestGetCourseDetail_NotFound(t *testing.T) {
	// Unpublished and missing courses look the same to the caller.
	repo := &MockCourseRepository{
		GetPublishedCourseByUUIDFunc: func(ctx context.Context, uuid string) (*domain.Course, error) {
			return nil, nil
		},
	}
	svc := NewCourseService(repo)

	_, err := svc.GetCourseDetail(context.Background(), "course-uuid-draft")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestAddCourse(t *testing.T) {
	var saved *domain.Course
	repo := &MockCourseRepository{
		SaveCourseFunc: func(ctx context.Context, course *domain.Course) error {
			course.UUID = "course-uuid-new"
			saved = course
			return nil
		},
	}
	svc := NewCourseService(repo)

	resp, err := svc.AddCourse(context.Background(), &dto.AddCourseRequest{
		Title:       "Intro to Graphs",
		Description: "BFS, DFS and friends.",
		Categories:  "algorithms",
		Difficulty:  2,
		IsPublished: true,
	}, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "course-uuid-new", resp.UUID)

	require.NotNil(t, saved)
	assert.Equal(t, "alice@example.com", saved.CreatedBy)
	assert.True(t, saved.IsPublished)
}
