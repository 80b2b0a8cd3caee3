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

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all non-deleted categories, newest first.
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []models.Category
	query := `SELECT id, uuid, name, create_time, del_flag
	          FROM t_problem_category WHERE del_flag = FALSE
	          ORDER BY create_time DESC, id DESC`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, mapDBError(err, "")
	}

	domainCategories := make([]domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = *toDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

// SaveCategory persists a new category. A duplicate name surfaces as a
// conflict.
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	category.UUID = util.NewUUID()

	query := `INSERT INTO t_problem_category (uuid, name, del_flag)
	          VALUES ($1, $2, FALSE)
	          RETURNING id, create_time`

	err := r.db.QueryRowxContext(ctx, query, category.UUID, category.Name).
		Scan(&category.ID, &category.CreateTime)
	if err != nil {
		return mapDBError(err, "A category with this name already exists")
	}
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	if m == nil {
		return nil
	}
	return &domain.Category{
		ID:         m.ID,
		UUID:       m.UUID,
		Name:       m.Name,
		CreateTime: m.CreateTime,
		DelFlag:    m.DelFlag.Valid && m.DelFlag.Bool,
	}
}
