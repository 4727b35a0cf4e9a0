package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskflow/internal/domain"
	"taskflow/internal/repository"
)

type TaskRepository struct {
	db *DB
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "id, name, description, completed, category, created_at, updated_at, due_date"

type dbTask struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	Category    string         `db:"category"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DueDate     sql.NullTime   `db:"due_date"`
}

// converts dbTask to a domain.Task
func (dt *dbTask) toTask() *domain.Task {
	task := &domain.Task{
		ID:        dt.ID,
		Name:      dt.Name,
		Completed: dt.Completed,
		Category:  domain.Category(dt.Category),
		CreatedAt: dt.CreatedAt,
		UpdatedAt: dt.UpdatedAt,
	}

	if dt.Description.Valid {
		desc := dt.Description.String
		task.Description = &desc
	}

	if dt.DueDate.Valid {
		due := dt.DueDate.Time
		task.DueDate = &due
	}

	return task
}

// insert a new task
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.Category == "" {
		task.Category = domain.CategoryInbox
	}

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidTask, err)
	}

	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}

	query := `
		INSERT INTO tasks (name, description, completed, category, created_at, updated_at, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		task.Name,
		nullStringPtr(task.Description),
		boolInt(task.Completed),
		task.Category,
		task.CreatedAt,
		task.UpdatedAt,
		nullTime(task.DueDate),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}

	task.ID = id
	return nil
}

// get a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE id = ?"

	var row dbTask
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return row.toTask(), nil
}

// count tasks with filtering (for pagination)
func (r *TaskRepository) Count(ctx context.Context, filter repository.TaskFilter) (int64, error) {
	query, args := r.buildWhereClause(filter, true)

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return count, nil
}

// get all tasks (with filters)
func (r *TaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]*domain.Task, error) {
	query, args := r.buildWhereClause(filter, false)
	query += r.buildOrderClause(filter)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)

		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	var rows []dbTask
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].toTask())
	}

	return tasks, nil
}

// constructs the WHERE clause with all filters
func (r *TaskRepository) buildWhereClause(filter repository.TaskFilter, isCount bool) (string, []interface{}) {
	var query string
	if isCount {
		query = "SELECT COUNT(*) FROM tasks WHERE 1=1"
	} else {
		query = "SELECT " + taskColumns + " FROM tasks WHERE 1=1"
	}

	args := make([]interface{}, 0)

	if filter.Completed != nil {
		query += " AND completed = ?"
		args = append(args, boolInt(*filter.Completed))
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	if filter.SearchQuery != "" {
		searchPattern := "%" + filter.SearchQuery + "%"
		query += ` AND (
			name LIKE ? COLLATE NOCASE OR
			COALESCE(description, '') LIKE ? COLLATE NOCASE
		)`
		args = append(args, searchPattern, searchPattern)
	}

	return query, args
}

// constructs the ORDER BY clause
func (r *TaskRepository) buildOrderClause(filter repository.TaskFilter) string {
	sortBy := filter.SortBy
	sortOrder := filter.SortOrder

	if sortBy == "" {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	validColumns := map[string]string{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"due_date":   "due_date",
		"name":       "name",
	}

	column, ok := validColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	// nulls last
	if column == "due_date" {
		return fmt.Sprintf(" ORDER BY due_date IS NULL, due_date %s, id %s", sortOrder, sortOrder)
	}

	return fmt.Sprintf(" ORDER BY %s %s, id %s", column, sortOrder, sortOrder)
}

// apply an edit of name and description
func (r *TaskRepository) Update(ctx context.Context, update domain.TaskUpdate) error {
	if err := update.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidTask, err)
	}

	query := `
		UPDATE tasks
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		update.Name,
		nullStringPtr(update.Description),
		time.Now(),
		update.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return expectOneRow(result, update.ID)
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	query := `UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, boolInt(completed), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return expectOneRow(result, id)
}

// remove a task
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return expectOneRow(result, id)
}

func expectOneRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}

	return nil
}
