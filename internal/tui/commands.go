package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/domain"
	"taskflow/internal/keyboard"
	"taskflow/internal/repository"
)

// Message types for async operations

// tasksLoadedMsg is sent when tasks are successfully loaded
type tasksLoadedMsg struct {
	tasks []*domain.Task
}

// taskUpdatedMsg is sent once an overlay edit has been persisted
type taskUpdatedMsg struct {
	update domain.TaskUpdate
}

// taskCompletedMsg is sent when a completion toggle has been persisted
type taskCompletedMsg struct {
	taskID    int64
	completed bool
}

// taskDeletedMsg is sent when a task is successfully deleted
type taskDeletedMsg struct {
	taskID int64
}

// keyboardMsg carries a visibility change to the overlay session that
// subscribed for it
type keyboardMsg struct {
	session    string
	visibility keyboard.Visibility
}

// overlayClosedMsg tells the list screen the overlay went away
type overlayClosedMsg struct {
	taskID int64
}

// errMsg wraps errors from async operations
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

// pause between persist attempts; tests set it to zero
var retryDelay = 150 * time.Millisecond

// Bubble Tea commands for async operations

// fetchTasksCmd fetches tasks based on the current filter
func fetchTasksCmd(ctx context.Context, repo repository.TaskRepository, filter repository.TaskFilter) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.List(ctx, filter)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// updateTaskCmd persists an overlay edit. It is fire-and-forget from the
// overlay's side: the overlay has already returned to viewing.
func updateTaskCmd(ctx context.Context, repo repository.TaskRepository, update domain.TaskUpdate, retries int) tea.Cmd {
	return func() tea.Msg {
		var err error
		for attempt := 0; attempt <= retries; attempt++ {
			if attempt > 0 {
				time.Sleep(retryDelay * time.Duration(attempt))
			}

			err = repo.Update(ctx, update)
			if err == nil {
				return taskUpdatedMsg{update: update}
			}

			// retrying will not bring the task back or fix the edit
			if errors.Is(err, domain.ErrTaskNotFound) || errors.Is(err, domain.ErrInvalidTask) {
				break
			}
		}
		return errMsg{fmt.Errorf("failed to save task %d: %w", update.ID, err)}
	}
}

func setCompletedCmd(ctx context.Context, repo repository.TaskRepository, taskID int64, completed bool) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SetCompleted(ctx, taskID, completed); err != nil {
			return errMsg{err}
		}
		return taskCompletedMsg{taskID: taskID, completed: completed}
	}
}

// deleteTaskCmd deletes a task from the database
func deleteTaskCmd(ctx context.Context, repo repository.TaskRepository, taskID int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Delete(ctx, taskID); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{taskID: taskID}
	}
}

// waitForKeyboardCmd blocks until the subscription delivers a change. It
// yields nil once the subscription is released.
func waitForKeyboardCmd(sub *keyboard.Subscription, session string) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-sub.C()
		if !ok {
			return nil
		}
		return keyboardMsg{session: session, visibility: v}
	}
}

// refreshCmd is a convenience wrapper for fetching tasks after an operation
func (m *Model) refreshCmd() tea.Cmd {
	return fetchTasksCmd(m.ctx, m.repo, m.filter)
}
