package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"taskflow/internal/display"
	"taskflow/internal/domain"
	"taskflow/internal/repository"
	"taskflow/internal/theme"
)

var (
	// list command flags
	listCategory  string
	listCompleted bool
	listOpen      bool
	listSearch    string
	listSort      string
	listOrder     string
	listLimit     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering.

Examples:
  taskflow list
  taskflow list --open
  taskflow list --category work --sort due_date --order asc
  taskflow list --search milk`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category (inbox, work, personal, errand)")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Only completed tasks")
	listCmd.Flags().BoolVar(&listOpen, "open", false, "Only open tasks")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Match name or description")
	listCmd.Flags().StringVar(&listSort, "sort", "created_at", "Sort by (created_at, updated_at, due_date, name)")
	listCmd.Flags().StringVar(&listOrder, "order", "desc", "Sort order (asc, desc)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum number of tasks (0 = all)")

	listCmd.MarkFlagsMutuallyExclusive("completed", "open")
}

// builds the category and completion part of a filter
func buildFilter(categoryName string, completedOnly, openOnly bool) (repository.TaskFilter, error) {
	var filter repository.TaskFilter

	if categoryName != "" {
		category, err := domain.ParseCategory(categoryName)
		if err != nil {
			return filter, err
		}
		filter.Category = category
	}

	switch {
	case completedOnly:
		completed := true
		filter.Completed = &completed
	case openOnly:
		completed := false
		filter.Completed = &completed
	}

	return filter, nil
}

func runList(cmd *cobra.Command, args []string) error {
	themeObj, styles := loadStyles()

	filter, err := buildFilter(listCategory, listCompleted, listOpen)
	if err != nil {
		return err
	}
	filter.SearchQuery = listSearch
	filter.SortBy = listSort
	filter.SortOrder = listOrder
	filter.Limit = listLimit

	db, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks, err := repo.List(context.Background(), filter)
	if err != nil {
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ Failed to list tasks: %v", err)))
		return nil
	}

	if len(tasks) == 0 {
		fmt.Println()
		fmt.Println(styles.Info.Render("No tasks found."))
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(renderTasksTable(tasks, themeObj, styles))
	fmt.Println()
	fmt.Printf("Total: %d task(s)\n", len(tasks))
	fmt.Println()

	return nil
}

func renderTasksTable(tasks []*domain.Task, themeObj *theme.Theme, styles *theme.Styles) string {
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(themeObj.BorderColor))).
		Headers("ID", "", "Name", "Category", "Due").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			task := tasks[row]
			switch col {
			case 1:
				return cell.Inherit(styles.GetCompletionStyle(task.Completed))
			case 3:
				return cell.Inherit(styles.GetCategoryStyle(task.Category))
			}
			return cell
		})

	for _, task := range tasks {
		t.Row(
			fmt.Sprintf("%d", task.ID),
			display.GetCompletionIcon(task.Completed),
			display.Truncate(task.Name, 40),
			display.CategoryLabel(task.Category),
			display.FormatDueDate(task.DueDate),
		)
	}

	return t.Render()
}
