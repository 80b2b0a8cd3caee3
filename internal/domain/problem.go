package domain

import (
	"context"
	"time"
)

// Problem is a practice problem. Title is unique among non-deleted rows.
// Categories is a denormalized reference string, not a foreign key.
type Problem struct {
	ID          int64
	UUID        string
	Title       string
	Description string
	ProblemType int
	Difficulty  int
	Categories  string
	Answer      string
	CreatedBy   string
	CreateTime  time.Time
	DelFlag     bool
}

// AdjacentUUIDs carries the public identifiers of a problem's neighbors in
// insertion order: Prev is the nearest larger internal id, Next the nearest
// smaller one. Either side is empty at the edges.
type AdjacentUUIDs struct {
	Prev string
	Next string
}

// ProblemRepository defines the interface for problem persistence.
type ProblemRepository interface {
	SaveProblem(ctx context.Context, problem *Problem) error
	// ListProblems returns one page of non-deleted problems ordered newest
	// first, plus the total count matching the filter.
	ListProblems(ctx context.Context, offset, limit int) ([]Problem, int64, error)
	GetProblemByUUID(ctx context.Context, uuid string) (*Problem, error)
	// GetAdjacentUUIDs resolves prev/next siblings of the row with the given
	// internal id among non-deleted rows.
	GetAdjacentUUIDs(ctx context.Context, id int64) (*AdjacentUUIDs, error)
}
