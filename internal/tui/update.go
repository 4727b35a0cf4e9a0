package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/animate"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		// the terminal lost focus, which hides the keyboard
		m.keyboard.Dismiss()
		return m, nil

	case tea.FocusMsg:
		return m, nil

	case animate.FrameMsg, animate.DoneMsg, keyboardMsg:
		return m, m.overlay.update(msg)

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.loading = false
		m.err = nil
		m.updateTableRows()
		return m, m.overlay.sync(msg.tasks)

	case taskUpdatedMsg:
		m.message = fmt.Sprintf("Saved task #%d", msg.update.ID)
		m.err = nil
		return m, m.refreshCmd()

	case taskCompletedMsg:
		if msg.completed {
			m.message = fmt.Sprintf("Task #%d marked complete", msg.taskID)
		} else {
			m.message = fmt.Sprintf("Task #%d reopened", msg.taskID)
		}
		m.err = nil
		return m, m.refreshCmd()

	case taskDeletedMsg:
		m.message = fmt.Sprintf("Task #%d deleted", msg.taskID)
		m.err = nil
		return m, m.refreshCmd()

	case overlayClosedMsg:
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		m.log.Error().Err(msg.err).Msg("task operation failed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Batch(m.overlay.close(), tea.Quit)
	}

	if m.overlay.active() {
		return m, m.overlay.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.message = ""
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Open):
		task := m.selectedTask()
		if task == nil {
			return m, nil
		}
		m.message = ""
		return m, m.overlay.open(task)

	case key.Matches(msg, m.keys.ToggleDone):
		task := m.selectedTask()
		if task == nil {
			return m, nil
		}
		return m, setCompletedCmd(m.ctx, m.repo, task.ID, !task.Completed)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
