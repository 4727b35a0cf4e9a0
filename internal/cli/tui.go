package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskflow/internal/keyboard"
	"taskflow/internal/tui"
)

var (
	// tui command flags
	tuiCategory  string
	tuiCompleted bool
	tuiOpen      bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI",
	Long: `Launch the interactive task list.

Keyboard shortcuts:
  List:
    ↑/k     Move up
    ↓/j     Move down
    Enter   Open task details
    c       Toggle complete
    r       Refresh
    q       Quit
    ?       Toggle help

  Task details:
    e / d   Edit name / description
    m       Menu (complete, delete)
    Esc     Close

  Editing:
    Ctrl+S  Save
    Tab     Switch field
    Ctrl+B  Back
    Ctrl+K  Hide keyboard
    Esc     Cancel edit

Examples:
  taskflow tui
  taskflow tui --open --category work`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVarP(&tuiCategory, "category", "c", "", "Filter by category (inbox, work, personal, errand)")
	tuiCmd.Flags().BoolVar(&tuiCompleted, "completed", false, "Only completed tasks")
	tuiCmd.Flags().BoolVar(&tuiOpen, "open", false, "Only open tasks")

	tuiCmd.MarkFlagsMutuallyExclusive("completed", "open")
}

func runTUI(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter(tuiCategory, tuiCompleted, tuiOpen)
	if err != nil {
		return err
	}

	themeObj, styles := loadStyles()

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	model := tui.NewModel(repo, themeObj, styles, tui.Options{
		Filter:        filter,
		Overlay:       cfg.Overlay,
		UpdateRetries: cfg.UpdateRetries,
		Keyboard:      keyboard.Default(),
		Logger:        logger.With().Str("component", "tui").Logger(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
