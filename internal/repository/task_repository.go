package repository

import (
	"context"

	"taskflow/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	Update(ctx context.Context, update domain.TaskUpdate) error
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) error
}

// filtering options for tasks lists
type TaskFilter struct {
	Completed *bool
	Category  domain.Category

	// pagination
	Limit  int // max number of results (0 = no limit)
	Offset int // number of results to skip

	SearchQuery string // substring match on name and description

	// sorting
	SortBy    string // field to sort by: "created_at", "updated_at", "due_date", "name"
	SortOrder string // "asc" or "desc"
}
