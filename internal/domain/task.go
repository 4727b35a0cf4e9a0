package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("validation failed")
)

// task category, shown as the indicator in the detail header
type Category string

const (
	CategoryInbox    Category = "inbox"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryErrand   Category = "errand"
)

type Task struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	Category    Category   `db:"category" json:"category"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
}

// TaskUpdate is the payload of an edit made from the detail overlay or the CLI.
// A nil Description clears the stored description.
type TaskUpdate struct {
	ID          int64
	Name        string
	Description *string
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("task name cannot be empty")
	}

	if len(t.Name) > 200 {
		return errors.New("task name cannot exceed 200 characters")
	}

	if t.Description != nil && len(*t.Description) > 1000 {
		return errors.New("task description cannot exceed 1000 characters")
	}

	if t.Category != "" && !isValidCategory(t.Category) {
		return errors.New("invalid category: must be inbox, work, personal, or errand")
	}

	return nil
}

// returns the description, treating an absent one as empty
func (t *Task) DescriptionText() string {
	if t == nil || t.Description == nil {
		return ""
	}
	return *t.Description
}

// create a new task
func NewTask(name string) *Task {
	now := time.Now()
	return &Task{
		Name:      name,
		Category:  CategoryInbox,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTaskUpdate trims name and description. An empty trimmed description
// becomes absent.
func NewTaskUpdate(id int64, name, description string) TaskUpdate {
	u := TaskUpdate{
		ID:   id,
		Name: strings.TrimSpace(name),
	}
	if d := strings.TrimSpace(description); d != "" {
		u.Description = &d
	}
	return u
}

// returns the description, treating an absent one as empty
func (u TaskUpdate) DescriptionText() string {
	if u.Description == nil {
		return ""
	}
	return *u.Description
}

func (u TaskUpdate) Validate() error {
	t := Task{Name: u.Name, Description: u.Description}
	return t.Validate()
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !isValidCategory(c) {
		return "", errors.New("invalid category: must be inbox, work, personal, or errand")
	}
	return c, nil
}

func isValidCategory(c Category) bool {
	switch c {
	case CategoryInbox, CategoryWork, CategoryPersonal, CategoryErrand:
		return true
	default:
		return false
	}
}

// parses a date string in various formats
func ParseDueDate(dateStr string) (*time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"02-01-2006",
		"02/01/2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return &t, nil
		}
	}

	return nil, errors.New("unable to parse date: " + dateStr)
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
