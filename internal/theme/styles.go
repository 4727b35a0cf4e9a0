package theme

import (
	"taskflow/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	StatusLine  lipgloss.Style
	Backdrop    lipgloss.Style

	// overlay
	OverlayPanel   lipgloss.Style
	OverlayHeader  lipgloss.Style
	OverlayMenu    lipgloss.Style
	OverlayBack    lipgloss.Style
	SaveEnabled    lipgloss.Style
	SaveDisabled   lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldValue     lipgloss.Style
	FieldMuted     lipgloss.Style
	CompletedText  lipgloss.Style
	OpenText       lipgloss.Style
	CategoryInbox  lipgloss.Style
	CategoryWork   lipgloss.Style
	CategoryPerson lipgloss.Style
	CategoryErrand lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TextPrimary)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		StatusLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Backdrop: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Backdrop)),

		// overlay
		OverlayPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 2),

		OverlayHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TextPrimary)),

		OverlayMenu: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		OverlayBack: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),

		SaveEnabled: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.Primary)).
			Padding(0, 1),

		SaveDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		FieldValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		FieldMuted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Italic(true),

		CompletedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Completed)),

		OpenText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Open)),

		CategoryInbox: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CategoryInbox)),

		CategoryWork: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CategoryWork)),

		CategoryPerson: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CategoryPersonal)),

		CategoryErrand: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CategoryErrand)),
	}
}

func (s *Styles) GetCategoryStyle(category domain.Category) lipgloss.Style {
	switch category {
	case domain.CategoryWork:
		return s.CategoryWork
	case domain.CategoryPersonal:
		return s.CategoryPerson
	case domain.CategoryErrand:
		return s.CategoryErrand
	default:
		return s.CategoryInbox
	}
}

func (s *Styles) GetCompletionStyle(completed bool) lipgloss.Style {
	if completed {
		return s.CompletedText
	}
	return s.OpenText
}
