package tui

import (
	"fmt"
	"strings"
)

// renders the UI
func (m Model) View() string {
	if m.loading {
		return m.styles.TUITitle.Render("Loading...") + "\n"
	}

	var b strings.Builder

	// title
	b.WriteString(m.styles.TUITitle.Render("  TaskFlow  "))
	b.WriteString("  ")
	b.WriteString(m.styles.TUISubtitle.Render(fmt.Sprintf("%d tasks", len(m.tasks))))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Info.Render("No tasks found. Add one with `taskflow add`."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	// the overlay covers the list while open
	return m.overlay.view(b.String())
}

func (m Model) renderStatusBar() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.message != "" {
		return m.styles.Success.Render(m.message)
	}
	return m.styles.StatusLine.Render("")
}

func (m Model) renderHelp() string {
	if m.showHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
