package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskflow/internal/config"
	"taskflow/internal/theme"
	"taskflow/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage application theme",
	Long: `Manage application theme settings.

Run without arguments to launch the interactive theme selector TUI.
Use subcommands for direct theme management.

Examples:
  taskflow theme              # Launch interactive TUI
  taskflow theme set dracula  # Set theme directly
  taskflow theme list         # List available themes
  taskflow theme show         # Show current theme`,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set application theme",
	Long: `Set the application theme.

Available themes:
  - default
  - dark
  - light
  - dracula

Examples:
  taskflow theme set dracula
  taskflow theme set light`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  `List all available themes.`,
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the currently selected theme and its color palette.`,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// launches theme selector
func runThemeTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run theme TUI: %w", err)
	}

	sm, ok := final.(tui.SetupModel)
	if !ok || !sm.Confirmed() {
		return nil
	}
	if err := sm.Err(); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	logger.Info().Str("theme", sm.Selected()).Msg("theme changed")
	fmt.Println()
	fmt.Printf("✓ Theme set to '%s'\n", sm.Selected())
	fmt.Println()

	return nil
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !theme.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found. Run 'taskflow theme list' to see available themes", themeName)
	}

	if err := config.UpdateTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}
	logger.Info().Str("theme", themeName).Msg("theme changed")

	fmt.Printf("✓ Theme set to '%s'\n", themeName)
	return nil
}

// lists all available themes
func runThemeList(cmd *cobra.Command, args []string) error {
	currentTheme, styles := loadStyles()
	themeName := currentTheme.Name

	// get all themes
	themes := theme.ListThemes()

	fmt.Println()
	fmt.Println(styles.Header.Render(" Available Themes "))
	fmt.Println()

	for _, name := range themes {
		prefix := "  "
		if name == themeName {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Printf("%s%s\n", prefix, name)
	}

	fmt.Println()
	return nil
}

// displays current theme details
func runThemeShow(cmd *cobra.Command, args []string) error {
	themeObj, styles := loadStyles()
	themeName := themeObj.Name

	fmt.Println()
	fmt.Println(styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", themeName)))
	fmt.Println()

	fmt.Println(styles.Info.Render("Color Palette:"))
	fmt.Println()

	colors := []struct {
		name  string
		color string
	}{
		{"Primary", themeObj.Primary},
		{"Success", themeObj.Success},
		{"Error", themeObj.Error},
		{"Warning", themeObj.Warning},
		{"Text", themeObj.TextPrimary},
		{"Border", themeObj.BorderColor},
		{"Inbox", themeObj.CategoryInbox},
		{"Work", themeObj.CategoryWork},
		{"Personal", themeObj.CategoryPersonal},
		{"Errand", themeObj.CategoryErrand},
	}

	for _, c := range colors {
		name, color := c.name, c.color
		colorSample := lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color(color)).
			Render("  ████  ")
		fmt.Printf("  %-12s %s %s\n", name+":", colorSample, color)
	}

	fmt.Println()
	return nil
}
