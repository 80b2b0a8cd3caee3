package domain

import (
	"context"
	"time"
)

// Course is a published learning course. Unlike problems there is no title
// uniqueness; IsPublished gates visibility in listings and detail lookups.
type Course struct {
	ID          int64
	UUID        string
	Title       string
	Description string
	Categories  string
	Difficulty  int
	CreatedBy   string
	IsPublished bool
	CreateTime  time.Time
	DelFlag     bool
}

// CourseRepository defines the interface for course persistence.
// List and detail reads only surface published, non-deleted rows.
type CourseRepository interface {
	SaveCourse(ctx context.Context, course *Course) error
	ListPublishedCourses(ctx context.Context, offset, limit int) ([]Course, int64, error)
	GetPublishedCourseByUUID(ctx context.Context, uuid string) (*Course, error)
}
