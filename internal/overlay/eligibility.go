package overlay

import "taskflow/internal/domain"

// IsSaveEligible reports whether the edited name and description form a
// saveable change to task. The name must be non-empty and at least one field
// must differ from the snapshot; an absent description compares as "".
func IsSaveEligible(task *domain.Task, name, description string) bool {
	if task == nil || len(name) == 0 {
		return false
	}

	return name != task.Name || description != task.DescriptionText()
}
