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

// ProblemDatabaseAdapter implements domain.ProblemRepository using sqlx.
type ProblemDatabaseAdapter struct {
	db *sqlx.DB
}

// NewProblemDatabaseAdapter creates a new instance of ProblemDatabaseAdapter
func NewProblemDatabaseAdapter(db *sqlx.DB) domain.ProblemRepository {
	return &ProblemDatabaseAdapter{db: db}
}

// SaveProblem persists a new problem. A duplicate title surfaces as a
// conflict.
func (r *ProblemDatabaseAdapter) SaveProblem(ctx context.Context, problem *domain.Problem) error {
	problem.UUID = util.NewUUID()

	query := `INSERT INTO t_problem (uuid, title, description, problem_type, difficulty, categories, answer, created_by, del_flag)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
	          RETURNING id, create_time`

	err := r.db.QueryRowxContext(ctx, query,
		problem.UUID, problem.Title, problem.Description, problem.ProblemType,
		problem.Difficulty, problem.Categories, problem.Answer, problem.CreatedBy,
	).Scan(&problem.ID, &problem.CreateTime)
	if err != nil {
		return mapDBError(err, "A problem with this title already exists")
	}
	return nil
}

// ListProblems returns one page of non-deleted problems ordered newest first
// and the total non-deleted count. The count runs on the same pool right
// after the page query; ordering before limit/offset keeps pages stable.
func (r *ProblemDatabaseAdapter) ListProblems(ctx context.Context, offset, limit int) ([]domain.Problem, int64, error) {
	var rows []models.Problem
	listQuery := `SELECT id, uuid, title, description, problem_type, difficulty, categories, answer, created_by, create_time, del_flag
	              FROM t_problem WHERE del_flag = FALSE
	              ORDER BY create_time DESC, id DESC
	              LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &rows, listQuery, limit, offset); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, 0, mapDBError(err, "")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM t_problem WHERE del_flag = FALSE`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, mapDBError(err, "")
	}

	problems := make([]domain.Problem, len(rows))
	for i := range rows {
		problems[i] = *toDomainProblem(&rows[i])
	}
	return problems, total, nil
}

// GetProblemByUUID retrieves a non-deleted problem by public uuid.
// Returns (nil, nil) when no such problem exists.
func (r *ProblemDatabaseAdapter) GetProblemByUUID(ctx context.Context, uuid string) (*domain.Problem, error) {
	var row models.Problem
	query := `SELECT id, uuid, title, description, problem_type, difficulty, categories, answer, created_by, create_time, del_flag
	          FROM t_problem WHERE uuid = $1 AND del_flag = FALSE`

	if err := r.db.GetContext(ctx, &row, query, uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapDBError(err, "")
	}
	return toDomainProblem(&row), nil
}

// GetAdjacentUUIDs resolves the prev/next siblings of the row with the given
// internal id: prev is the nearest larger id, next the nearest smaller one,
// both among non-deleted rows. This is adjacency in insertion order, not in
// any user-facing order.
func (r *ProblemDatabaseAdapter) GetAdjacentUUIDs(ctx context.Context, id int64) (*domain.AdjacentUUIDs, error) {
	adjacent := &domain.AdjacentUUIDs{}

	prevQuery := `SELECT uuid FROM t_problem WHERE id > $1 AND del_flag = FALSE ORDER BY id ASC LIMIT 1`
	if err := r.db.GetContext(ctx, &adjacent.Prev, prevQuery, id); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, mapDBError(err, "")
	}

	nextQuery := `SELECT uuid FROM t_problem WHERE id < $1 AND del_flag = FALSE ORDER BY id DESC LIMIT 1`
	if err := r.db.GetContext(ctx, &adjacent.Next, nextQuery, id); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, mapDBError(err, "")
	}

	return adjacent, nil
}

func toDomainProblem(m *models.Problem) *domain.Problem {
	if m == nil {
		return nil
	}
	return &domain.Problem{
		ID:          m.ID,
		UUID:        m.UUID,
		Title:       m.Title,
		Description: m.Description,
		ProblemType: m.ProblemType,
		Difficulty:  m.Difficulty,
		Categories:  m.Categories,
		Answer:      m.Answer,
		CreatedBy:   m.CreatedBy,
		CreateTime:  m.CreateTime,
		DelFlag:     m.DelFlag.Valid && m.DelFlag.Bool,
	}
}
