package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskflow/internal/domain"
)

var (
	// flags
	addDescription string
	addCategory    string
	addDueDate     string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a new task to your task list.

Examples:
  taskflow add "Buy milk"
  taskflow add "Renew passport" --category errand --due-date 2026-12-01
  taskflow add "Quarterly review" -c work -d "Slides for Thursday"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description of your task")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", string(domain.CategoryInbox), "Category (inbox, work, personal, errand)")
	addCmd.Flags().StringVar(&addDueDate, "due-date", "", "Due date (YYYY-MM-DD format)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	_, styles := loadStyles()

	task := domain.NewTask(strings.TrimSpace(strings.Join(args, " ")))
	task.Description = domain.StringPtr(strings.TrimSpace(addDescription))

	category, err := domain.ParseCategory(addCategory)
	if err != nil {
		return err
	}
	task.Category = category

	if addDueDate != "" {
		dueDate, err := domain.ParseDueDate(addDueDate)
		if err != nil {
			fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Invalid due date format: %v", err)))
			fmt.Println(styles.Info.Render("  Use YYYY-MM-DD format (e.g., 2026-12-31)"))
			return nil
		}
		task.DueDate = dueDate
	}

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Create(context.Background(), task); err != nil {
		logger.Error().Err(err).Msg("create task")
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to create task: %v", err)))
		return nil
	}

	logger.Info().Int64("task", task.ID).Msg("task created")

	fmt.Println()
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Task #%d created successfully!", task.ID)))
	displayTask(task, styles)

	return nil
}
