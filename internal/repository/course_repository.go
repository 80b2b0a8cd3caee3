package repository

import (
	"context"
	"database/sql"
	"errors"

	"problem-bank/internal/domain"
	"problem-bank/internal/repository/models"
	"problem-bank/internal/util"

	"github.com/jmoiron/sqlx"
)

// CourseDatabaseAdapter implements domain.CourseRepository using sqlx.
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCourseDatabaseAdapter creates a new instance of CourseDatabaseAdapter
func NewCourseDatabaseAdapter(db *sqlx.DB) domain.CourseRepository {
	return &CourseDatabaseAdapter{db: db}
}

// SaveCourse persists a new course.
func (r *CourseDatabaseAdapter) SaveCourse(ctx context.Context, course *domain.Course) error {
	course.UUID = util.NewUUID()

	query := `INSERT INTO t_course (uuid, title, description, categories, difficulty, created_by, is_published, del_flag)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
	          RETURNING id, create_time`

	err := r.db.QueryRowxContext(ctx, query,
		course.UUID, course.Title, course.Description, course.Categories,
		course.Difficulty, course.CreatedBy, course.IsPublished,
	).Scan(&course.ID, &course.CreateTime)
	if err != nil {
		return mapDBError(err, "Course could not be created")
	}
	return nil
}

// ListPublishedCourses returns one page of published, non-deleted courses
// ordered newest first and the total count matching that filter.
func (r *CourseDatabaseAdapter) ListPublishedCourses(ctx context.Context, offset, limit int) ([]domain.Course, int64, error) {
	var rows []models.Course
	listQuery := `SELECT id, uuid, title, description, categories, difficulty, created_by, is_published, create_time, del_flag
	              FROM t_course WHERE del_flag = FALSE AND is_published = TRUE
	              ORDER BY create_time DESC, id DESC
	              LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &rows, listQuery, limit, offset); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, 0, mapDBError(err, "")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM t_course WHERE del_flag = FALSE AND is_published = TRUE`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, mapDBError(err, "")
	}

	courses := make([]domain.Course, len(rows))
	for i := range rows {
		courses[i] = *toDomainCourse(&rows[i])
	}
	return courses, total, nil
}

// GetPublishedCourseByUUID retrieves a published, non-deleted course by
// public uuid. Returns (nil, nil) when no such course is visible.
func (r *CourseDatabaseAdapter) GetPublishedCourseByUUID(ctx context.Context, uuid string) (*domain.Course, error) {
	var row models.Course
	query := `SELECT id, uuid, title, description, categories, difficulty, created_by, is_published, create_time, del_flag
	          FROM t_course WHERE uuid = $1 AND del_flag = FALSE AND is_published = TRUE`

	if err := r.db.GetContext(ctx, &row, query, uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapDBError(err, "")
	}
	return toDomainCourse(&row), nil
}

func toDomainCourse(m *models.Course) *domain.Course {
	if m == nil {
		return nil
	}
	return &domain.Course{
		ID:          m.ID,
		UUID:        m.UUID,
		Title:       m.Title,
		Description: m.Description,
		Categories:  m.Categories,
		Difficulty:  m.Difficulty,
		CreatedBy:   m.CreatedBy,
		IsPublished: m.IsPublished,
		CreateTime:  m.CreateTime,
		DelFlag:     m.DelFlag.Valid && m.DelFlag.Bool,
	}
}
