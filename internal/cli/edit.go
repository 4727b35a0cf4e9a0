package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskflow/internal/domain"
	"taskflow/internal/overlay"
)

var (
	editName             string
	editDescription      string
	editClearDescription bool
)

var errNothingToSave = errors.New("nothing to save")

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task's name or description",
	Long: `Edit the name and/or description of a task.

The same rules as the detail sheet in the TUI apply: values are trimmed,
the name cannot be empty, and an edit that changes nothing is refused.

Examples:
  taskflow edit 3 --name "Buy oat milk"
  taskflow edit 3 --description "Two cartons"
  taskflow edit 3 --clear-description`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New name")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().BoolVar(&editClearDescription, "clear-description", false, "Remove the description")

	editCmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	editCmd.MarkFlagsOneRequired("name", "description", "clear-description")
}

// buildEdit applies the requested changes on top of task and returns the
// update to persist. Unset fields keep the task's current value.
func buildEdit(task *domain.Task, name *string, description *string) (domain.TaskUpdate, error) {
	newName := task.Name
	if name != nil {
		newName = *name
	}
	newDesc := task.DescriptionText()
	if description != nil {
		newDesc = *description
	}

	if strings.TrimSpace(newName) == "" {
		return domain.TaskUpdate{}, errors.New("task name cannot be empty")
	}

	update := domain.NewTaskUpdate(task.ID, newName, newDesc)
	if !overlay.IsSaveEligible(task, update.Name, update.DescriptionText()) {
		return domain.TaskUpdate{}, errNothingToSave
	}
	if err := update.Validate(); err != nil {
		return domain.TaskUpdate{}, err
	}

	return update, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	ctx := context.Background()

	task, err := repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Task #%d not found", id)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	var name, description *string
	if cmd.Flags().Changed("name") {
		name = &editName
	}
	if cmd.Flags().Changed("description") {
		description = &editDescription
	}
	if editClearDescription {
		empty := ""
		description = &empty
	}

	update, err := buildEdit(task, name, description)
	if errors.Is(err, errNothingToSave) {
		fmt.Println(styles.Info.Render(fmt.Sprintf("Task #%d already has these values, nothing to save.", id)))
		return nil
	}
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	if err := repo.Update(ctx, update); err != nil {
		logger.Error().Err(err).Int64("task", id).Msg("update task")
		return fmt.Errorf("failed to update task: %w", err)
	}
	logger.Info().Int64("task", id).Msg("task updated")

	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to reload task: %w", err)
	}

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Task #%d updated", id)))
	displayTask(updated, styles)

	return nil
}
