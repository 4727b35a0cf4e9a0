package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskflow/internal/domain"
)

func GetCompletionIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}

func GetCategoryIcon(category domain.Category) string {
	switch category {
	case domain.CategoryWork:
		return "■"
	case domain.CategoryPersonal:
		return "♥"
	case domain.CategoryErrand:
		return "➜"
	case domain.CategoryInbox:
		return "▪"
	default:
		return "?"
	}
}

// icon plus name, e.g. "■ work"
func CategoryLabel(category domain.Category) string {
	if category == "" {
		category = domain.CategoryInbox
	}
	return GetCategoryIcon(category) + " " + string(category)
}

func FormatDueDate(dueDate *time.Time) string {
	return formatDueDate(dueDate, time.Now())
}

func formatDueDate(dueDate *time.Time, now time.Time) string {
	if dueDate == nil {
		return "-"
	}

	diff := dueDate.Sub(now)

	// overdue
	if diff < 0 {
		days := int(-diff.Hours() / 24)
		if days == 0 {
			return "TODAY!"
		}
		return fmt.Sprintf("-%dd", days)
	}

	days := int(diff.Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("%dd", days)
	}

	return dueDate.Format("2006-01-02")
}

// Truncate shortens s to width terminal cells, ending in an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
