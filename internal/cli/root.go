package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"taskflow/internal/config"
	"taskflow/internal/logging"
	"taskflow/internal/repository/sqlite"
	"taskflow/internal/theme"
	"taskflow/internal/tui"
)

var (
	// global flags
	configPath string
	logLevel   string
	logFile    string

	// set up by the root pre-run for every subcommand
	cfg      *config.Config
	logger   = zerolog.Nop()
	closeLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "TaskFlow - tasks in your terminal",
	Long: `TaskFlow keeps a simple list of tasks in a local database.

Open the interactive list with 'taskflow tui', select a task and press
enter to see its details. From the detail sheet you can edit the name and
description in place.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd); err != nil {
			return err
		}
		// the theme commands are how a theme gets chosen
		if cmd.Name() == "theme" || (cmd.Parent() != nil && cmd.Parent().Name() == "theme") {
			return nil
		}
		return checkAndRunSetup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.taskflow/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default ~/.taskflow/taskflow.log)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loads config, applies flag overrides and starts logging
func setup(cmd *cobra.Command) error {
	if configPath != "" {
		config.SetConfigFile(configPath)
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	l, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logger = l
	closeLog = closer
	log.Logger = l

	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("db", cfg.DBPath).
		Msg("starting")

	return nil
}

// resolves the configured theme, falling back to the default one
func loadStyles() (*theme.Theme, *theme.Styles) {
	var name string
	if cfg != nil {
		name = cfg.ThemeName
	}

	themeObj, ok := theme.Resolve(name)
	if !ok {
		logger.Warn().Str("theme", name).Msg("unknown theme, using default")
	}

	return themeObj, theme.NewStyles(themeObj)
}

func openRepository() (*sqlite.DB, *sqlite.TaskRepository, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, sqlite.NewTaskRepository(db), nil
}

func displayWelcome() {
	_, styles := loadStyles()

	title := styles.Title.Render(`
		------------------------------------------------------

		                T A S K F L O W

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("One list, one task at a time")

	fmt.Println()
	fmt.Println(title)
	fmt.Println(subtitle)
	fmt.Println()
	fmt.Println("Run 'taskflow --help' to see available commands.")
	fmt.Println()
}

// checks if initial setup is needed and runs it
func checkAndRunSetup() error {
	if cfg.ThemeName != "" {
		return nil
	}

	fmt.Println()
	fmt.Println("Welcome to TaskFlow! Let's set up your theme.")
	fmt.Println()

	p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup: %w", err)
	}

	sm, ok := final.(tui.SetupModel)
	if !ok || !sm.Confirmed() {
		return nil
	}
	if err := sm.Err(); err != nil {
		logger.Error().Err(err).Msg("failed to save theme")
		fmt.Printf("Warning: failed to save theme: %v\n", err)
	}

	cfg.ThemeName = sm.Selected()
	fmt.Println()
	fmt.Printf("✓ Theme configured: '%s'\n", cfg.ThemeName)
	fmt.Println()

	return nil
}
