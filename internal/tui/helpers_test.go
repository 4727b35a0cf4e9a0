package tui

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/domain"
	"taskflow/internal/repository"
)

// memRepo is an in-memory TaskRepository
type memRepo struct {
	mu          sync.Mutex
	tasks       map[int64]*domain.Task
	nextID      int64
	updates     []domain.TaskUpdate
	failUpdates int // fail this many Update calls before succeeding
	updateErr   error
}

func newMemRepo(tasks ...*domain.Task) *memRepo {
	r := &memRepo{tasks: make(map[int64]*domain.Task)}
	for _, t := range tasks {
		_ = r.Create(context.Background(), t)
	}
	return r
}

func (r *memRepo) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	task.ID = r.nextID
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, _ repository.TaskFilter) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) Count(ctx context.Context, f repository.TaskFilter) (int64, error) {
	tasks, err := r.List(ctx, f)
	return int64(len(tasks)), err
}

func (r *memRepo) Update(_ context.Context, u domain.TaskUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
	if err := u.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidTask, err)
	}
	if r.failUpdates > 0 {
		r.failUpdates--
		return r.updateErr
	}
	t, ok := r.tasks[u.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Name = u.Name
	t.Description = u.Description
	t.UpdatedAt = time.Now()
	return nil
}

func (r *memRepo) SetCompleted(_ context.Context, id int64, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Completed = completed
	return nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// runCmd executes cmd and flattens batches. Only use it on commands that
// cannot block.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, runCmd(c)...)
	}
	return out
}

func sampleTask(id int64, name, desc string) *domain.Task {
	return &domain.Task{
		ID:          id,
		Name:        name,
		Description: domain.StringPtr(desc),
		Category:    domain.CategoryErrand,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
