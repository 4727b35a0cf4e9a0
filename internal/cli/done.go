package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskflow/internal/domain"
)

var doneUndo bool

var doneCmd = &cobra.Command{
	Use:   "done [task-id...]",
	Short: "Mark tasks complete",
	Long: `Mark one or more tasks complete, or open again with --undo.

Examples:
  taskflow done 4
  taskflow done 4 5 6
  taskflow done 4 --undo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)

	doneCmd.Flags().BoolVarP(&doneUndo, "undo", "u", false, "Mark the tasks open instead")
}

func runDone(cmd *cobra.Command, args []string) error {
	var taskIDs []int64
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return err
		}
		taskIDs = append(taskIDs, id)
	}

	_, styles := loadStyles()

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	completed := !doneUndo

	verb := "completed"
	if doneUndo {
		verb = "reopened"
	}

	for _, id := range taskIDs {
		err := repo.SetCompleted(ctx, id, completed)
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Task #%d not found", id)))
		case err != nil:
			logger.Error().Err(err).Int64("task", id).Msg("set completed")
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Task #%d: %v", id, err)))
		default:
			fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Task #%d %s", id, verb)))
		}
	}

	return nil
}
