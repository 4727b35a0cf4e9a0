package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskflow/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task",
	Long: `Show every field of a single task.

Examples:
  taskflow show 3`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	_, styles := loadStyles()

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	task, err := repo.GetByID(context.Background(), id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Task #%d not found", id)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	displayTask(task, styles)
	return nil
}
