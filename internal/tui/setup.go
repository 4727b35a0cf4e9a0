package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskflow/internal/config"
	"taskflow/internal/display"
	"taskflow/internal/domain"
	"taskflow/internal/theme"
)

// SetupModel is the first-run theme picker
type SetupModel struct {
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	keys          keyMap
	save          func(name string) error
	width         int
	height        int
	quitting      bool
	confirmed     bool
	err           error
}

// NewSetupModel creates a new setup model that stores the chosen theme in
// the config file.
func NewSetupModel() SetupModel {
	return newSetupModel(config.UpdateTheme)
}

func newSetupModel(save func(name string) error) SetupModel {
	themes := theme.ListThemes()
	currentTheme, _ := theme.GetTheme(themes[0])

	return SetupModel{
		themes:       themes,
		currentTheme: currentTheme,
		keys:         defaultKeyMap(),
		save:         save,
		width:        100,
		height:       30,
	}
}

// Selected is the theme under the cursor.
func (m SetupModel) Selected() string {
	return m.themes[m.selectedIndex]
}

func (m SetupModel) Confirmed() bool {
	return m.confirmed
}

// Err reports a failure to store the selection.
func (m SetupModel) Err() error {
	return m.err
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.currentTheme, _ = theme.GetTheme(m.Selected())
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				m.currentTheme, _ = theme.GetTheme(m.Selected())
			}
			return m, nil

		case key.Matches(msg, m.keys.Open):
			// a failed save still finishes setup with the chosen theme
			m.err = m.save(m.Selected())
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Setup cancelled.\n"
	}

	// create styles for the current theme
	styles := theme.NewStyles(m.currentTheme)

	// calculate dimensions with safety checks
	leftWidth := m.width / 3
	if leftWidth < 30 {
		leftWidth = 30
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	// ensure minimum dimensions
	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	// render left side (theme list)
	leftContent := m.renderThemeList(styles, leftWidth)

	// render right side (preview)
	rightContent := m.renderPreview(styles, rightWidth)

	// combine left and right with lipgloss
	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1).
		Render(leftContent)

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1).
		Render(rightContent)

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// header
	header := styles.TUITitle.Render("TaskFlow Initial Setup")
	subtitle := styles.TUISubtitle.Render("Select a theme to get started")

	// footer
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderThemeList(styles *theme.Styles, width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Available Themes")

	b.WriteString(title)
	b.WriteString("\n\n")

	for i, themeName := range m.themes {
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
		}

		line := fmt.Sprintf("%s%s", prefix, themeName)

		if i == m.selectedIndex {
			// highlight selected theme
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true).
				Width(width - 4).
				Render(line)
		} else {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.TextSecondary)).
				Width(width - 4).
				Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m SetupModel) renderPreview(styles *theme.Styles, width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Preview")

	b.WriteString(title)
	b.WriteString("\n\n")

	// create sample tasks
	desc := "Renew before the trip"
	sampleTasks := []*domain.Task{
		{
			ID:          1,
			Name:        "Book passport appointment",
			Description: &desc,
			Category:    domain.CategoryErrand,
			CreatedAt:   time.Now(),
			DueDate:     timePtr(time.Now().Add(2 * 24 * time.Hour)),
		},
		{
			ID:        2,
			Name:      "Review quarterly plan",
			Category:  domain.CategoryWork,
			CreatedAt: time.Now(),
		},
		{
			ID:        3,
			Name:      "Call grandma",
			Category:  domain.CategoryPersonal,
			Completed: true,
			CreatedAt: time.Now(),
		},
	}

	// render sample tasks
	for i, task := range sampleTasks {
		if i > 0 {
			// add separator with safety check
			sepWidth := width - 4
			if sepWidth < 1 {
				sepWidth = 1
			}
			sep := strings.Repeat("─", sepWidth)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.Separator)).
				Render(sep))
			b.WriteString("\n")
		}

		b.WriteString(m.renderTaskPreview(styles, task, width))
	}

	return b.String()
}

func (m SetupModel) renderTaskPreview(styles *theme.Styles, task *domain.Task, width int) string {
	var b strings.Builder

	// name with completion icon
	icon := styles.GetCompletionStyle(task.Completed).Render(display.GetCompletionIcon(task.Completed))
	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.currentTheme.TextPrimary)).
		Bold(true)
	b.WriteString(icon + " " + nameStyle.Render(display.Truncate(task.Name, width-6)))
	b.WriteString("\n")

	// category and due date
	infoLine := "  " + styles.GetCategoryStyle(task.Category).Render(display.CategoryLabel(task.Category))
	if task.DueDate != nil {
		infoLine += " | " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextMuted)).
			Render(display.FormatDueDate(task.DueDate))
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	if desc := task.DescriptionText(); desc != "" {
		b.WriteString("  ")
		b.WriteString(styles.FieldMuted.Render(display.Truncate(desc, width-6)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	return b.String()
}

func timePtr(t time.Time) *time.Time {
	return &t
}
