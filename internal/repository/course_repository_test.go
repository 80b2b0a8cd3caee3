package repository

import (
	"context"
	"testing"
	"time"

	"problem-bank/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseColumns = []string{
	"id", "uuid", "title", "description", "categories", "difficulty",
	"created_by", "is_published", "create_time", "del_flag",
}

func TestSaveCourse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO t_course`).
		WithArgs(sqlmock.AnyArg(), "Intro to Graphs", "BFS, DFS and friends.", "algorithms", 2, "alice@example.com", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "create_time"}).AddRow(int64(5), now))

	course := &domain.Course{
		Title:       "Intro to Graphs",
		Description: "BFS, DFS and friends.",
		Categories:  "algorithms",
		Difficulty:  2,
		CreatedBy:   "alice@example.com",
		IsPublished: true,
	}
	require.NoError(t, repo.SaveCourse(context.Background(), course))

	assert.Equal(t, int64(5), course.ID)
	assert.NotEmpty(t, course.UUID)
}

func TestListPublishedCourses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseDatabaseAdapter(db)

	rows := sqlmock.NewRows(courseColumns).
		AddRow(int64(5), "course-uuid-5", "Intro to Graphs", "desc", "algorithms", 2, "alice@example.com", true, time.Now(), false)

	// Drafts and soft-deleted rows are filtered in SQL, not in Go.
	mock.ExpectQuery(`FROM t_course WHERE del_flag = FALSE AND is_published = TRUE`).
		WithArgs(10, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM t_course WHERE del_flag = FALSE AND is_published = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	courses, total, err := repo.ListPublishedCourses(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, courses, 1)
	assert.Equal(t, "course-uuid-5", courses[0].UUID)
	assert.True(t, courses[0].IsPublished)
}

func TestGetPublishedCourseByUUID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseDatabaseAdapter(db)

	rows := sqlmock.NewRows(courseColumns).
		AddRow(int64(5), "course-uuid-5", "Intro to Graphs", "BFS, DFS and friends.", "algorithms", 2, "alice@example.com", true, time.Now(), false)

	mock.ExpectQuery(`FROM t_course WHERE uuid = \$1 AND del_flag = FALSE AND is_published = TRUE`).
		WithArgs("course-uuid-5").
		WillReturnRows(rows)

	course, err := repo.GetPublishedCourseByUUID(context.Background(), "course-uuid-5")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Intro to Graphs", course.Title)
}

func TestGetPublishedCourseByUUID_Hidden(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCourseDatabaseAdapter(db)

	mock.ExpectQuery(`FROM t_course WHERE uuid = \$1 AND del_flag = FALSE AND is_published = TRUE`).
		WithArgs("course-uuid-draft").
		WillReturnRows(sqlmock.NewRows(courseColumns))

	course, err := repo.GetPublishedCourseByUUID(context.Background(), "course-uuid-draft")
	require.NoError(t, err)
	assert.Nil(t, course)
}
