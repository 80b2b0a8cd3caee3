package domain

import (
	"context"
	"time"
)

// Category is a problem category. Name is unique among non-deleted rows.
type Category struct {
	ID         int64
	UUID       string
	Name       string
	CreateTime time.Time
	DelFlag    bool
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]Category, error)
	SaveCategory(ctx context.Context, category *Category) error
}
