package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"taskflow/internal/config"
	"taskflow/internal/display"
	"taskflow/internal/domain"
	"taskflow/internal/keyboard"
	"taskflow/internal/repository"
	"taskflow/internal/theme"
)

// Options carries the knobs NewModel needs beyond the repository and theme.
type Options struct {
	Filter        repository.TaskFilter
	Overlay       config.OverlayConfig
	UpdateRetries int
	Keyboard      *keyboard.Signal // defaults to keyboard.Default()
	Logger        zerolog.Logger
}

type Model struct {
	repo   repository.TaskRepository
	tasks  []*domain.Task
	filter repository.TaskFilter

	table    table.Model
	keys     keyMap
	help     help.Model
	overlay  overlayModel
	keyboard *keyboard.Signal

	err      error
	width    int
	height   int
	showHelp bool
	loading  bool
	message  string

	theme  *theme.Theme
	styles *theme.Styles
	log    zerolog.Logger

	ctx context.Context
}

func NewModel(repo repository.TaskRepository, themeObj *theme.Theme, styles *theme.Styles, opts Options) Model {
	columns := []table.Column{
		{Title: "", Width: 2},
		{Title: "Name", Width: 40},
		{Title: "Category", Width: 14},
		{Title: "Due", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(themeObj.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(themeObj.SelectedFg)).
		Background(lipgloss.Color(themeObj.SelectedBg)).
		Bold(true)
	t.SetStyles(s)

	filter := opts.Filter
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	kb := opts.Keyboard
	if kb == nil {
		kb = keyboard.Default()
	}

	ctx := context.Background()
	retries := opts.UpdateRetries
	hooks := overlayHooks{
		persist: func(update domain.TaskUpdate) tea.Cmd {
			return updateTaskCmd(ctx, repo, update, retries)
		},
		setCompleted: func(taskID int64, completed bool) tea.Cmd {
			return setCompletedCmd(ctx, repo, taskID, completed)
		},
		remove: func(taskID int64) tea.Cmd {
			return deleteTaskCmd(ctx, repo, taskID)
		},
	}

	return Model{
		repo:     repo,
		tasks:    []*domain.Task{},
		filter:   filter,
		table:    t,
		keys:     defaultKeyMap(),
		help:     newHelp(styles),
		overlay:  newOverlayModel(opts.Overlay, kb, styles, hooks, opts.Logger),
		keyboard: kb,
		loading:  true,
		theme:    themeObj,
		styles:   styles,
		log:      opts.Logger,
		ctx:      ctx,
	}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func newHelp(styles *theme.Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.TUIHelp.Bold(true)
	h.Styles.ShortDesc = styles.TUIHelp
	h.Styles.ShortSeparator = styles.TUIHelp
	h.Styles.FullKey = styles.TUIHelp.Bold(true)
	h.Styles.FullDesc = styles.TUIHelp
	h.Styles.FullSeparator = styles.TUIHelp
	return h
}

// selectedTask returns the task under the table cursor, if any.
func (m Model) selectedTask() *domain.Task {
	if len(m.tasks) == 0 {
		return nil
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tasks) {
		return nil
	}
	return m.tasks[idx]
}

func (m *Model) updateTableRows() {
	rows := make([]table.Row, 0, len(m.tasks))
	for _, task := range m.tasks {
		rows = append(rows, table.Row{
			display.GetCompletionIcon(task.Completed),
			display.Truncate(task.Name, 40),
			display.CategoryLabel(task.Category),
			display.FormatDueDate(task.DueDate),
		})
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// title, status line and help
	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)

	nameWidth := width - 2 - 14 - 12 - 8
	if nameWidth < 20 {
		nameWidth = 20
	}
	m.table.SetColumns([]table.Column{
		{Title: "", Width: 2},
		{Title: "Name", Width: nameWidth},
		{Title: "Category", Width: 14},
		{Title: "Due", Width: 12},
	})

	m.overlay.setSize(width, height)
}
