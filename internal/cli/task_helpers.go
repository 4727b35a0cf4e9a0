package cli

import (
	"fmt"
	"strconv"

	"taskflow/internal/display"
	"taskflow/internal/domain"
	"taskflow/internal/theme"
)

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID: %s", arg)
	}
	return id, nil
}

// prints the fields of a task, one per line
func displayTask(task *domain.Task, styles *theme.Styles) {
	fmt.Println()

	status := "open"
	if task.Completed {
		status = "completed"
	}

	fmt.Printf("  %s #%d\n", styles.Info.Render("ID:"), task.ID)
	fmt.Printf("  %s %s\n", styles.Info.Render("Name:"), task.Name)

	if desc := task.DescriptionText(); desc != "" {
		fmt.Printf("  %s %s\n", styles.Info.Render("Description:"), desc)
	}

	fmt.Printf("  %s %s\n", styles.Info.Render("Category:"),
		styles.GetCategoryStyle(task.Category).Render(display.CategoryLabel(task.Category)))
	fmt.Printf("  %s %s\n", styles.Info.Render("Status:"),
		styles.GetCompletionStyle(task.Completed).Render(display.GetCompletionIcon(task.Completed)+" "+status))

	if task.DueDate != nil {
		fmt.Printf("  %s %s\n", styles.Info.Render("Due Date:"), task.DueDate.Format("2006-01-02"))
	}

	fmt.Println()
}
