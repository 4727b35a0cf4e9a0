package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"taskflow/internal/display"
	"taskflow/internal/domain"
	"taskflow/internal/repository"
)

var (
	// delete flags
	deleteForce     bool
	deleteCompleted bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [task-id...]",
	Short: "Delete tasks",
	Long: `Delete tasks by ID, or every completed task with --completed.
The tasks are listed with their category and due date and you are asked
to confirm unless you pass --force.

Examples:
  taskflow delete 1
  taskflow delete 1 2 3
  taskflow delete --completed
  taskflow delete 5 --force`,
	Args: func(cmd *cobra.Command, args []string) error {
		if deleteCompleted && len(args) > 0 {
			return errors.New("task IDs cannot be combined with --completed")
		}
		if !deleteCompleted && len(args) == 0 {
			return errors.New("requires at least one task ID or --completed")
		}
		return nil
	},
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
	deleteCmd.Flags().BoolVar(&deleteCompleted, "completed", false, "Delete every completed task")
}

func runDelete(cmd *cobra.Command, args []string) error {
	var ids []int64
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	_, styles := loadStyles()
	out := cmd.OutOrStdout()

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	tasks, missing, err := lookupTasks(ctx, repo, ids, deleteCompleted)
	if err != nil {
		return err
	}
	for _, id := range missing {
		fmt.Fprintln(out, styles.Error.Render(fmt.Sprintf("✗ Task #%d not found", id)))
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, styles.Info.Render("Nothing to delete."))
		return nil
	}

	if !deleteForce {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Error.Render(fmt.Sprintf("⚠  About to delete %s:", pluralTasks(len(tasks)))))
		for _, task := range tasks {
			fmt.Fprintln(out, "   "+deleteSummary(task))
		}
		fmt.Fprintln(out)

		ok, err := confirm(cmd.InOrStdin(), out, styles.Subtitle.Render("   Are you sure? (y/N): "))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, styles.Info.Render("Deletion cancelled."))
			return nil
		}
	}

	var deleted int
	for _, task := range tasks {
		if err := repo.Delete(ctx, task.ID); err != nil {
			logger.Warn().Err(err).Int64("task", task.ID).Msg("delete task")
			fmt.Fprintln(out, styles.Error.Render(fmt.Sprintf("✗ #%d %s: %v", task.ID, task.Name, err)))
			continue
		}
		deleted++
	}

	if deleted > 0 {
		fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("✓ Deleted %s", pluralTasks(deleted))))
	}
	return nil
}

// resolves ids to tasks, or loads every completed task
func lookupTasks(ctx context.Context, repo repository.TaskRepository, ids []int64, completed bool) ([]*domain.Task, []int64, error) {
	if completed {
		done := true
		tasks, err := repo.List(ctx, repository.TaskFilter{Completed: &done})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list completed tasks: %w", err)
		}
		return tasks, nil, nil
	}

	var tasks []*domain.Task
	var missing []int64
	for _, id := range ids {
		task, err := repo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrTaskNotFound) {
			missing = append(missing, id)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get task %d: %w", id, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, missing, nil
}

// one line per task in the confirmation list
func deleteSummary(task *domain.Task) string {
	line := fmt.Sprintf("#%d %s [%s]", task.ID, display.Truncate(task.Name, 40), display.CategoryLabel(task.Category))
	if task.DueDate != nil {
		line += " due " + display.FormatDueDate(task.DueDate)
	}
	if task.Completed {
		line += " (done)"
	}
	return line
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
