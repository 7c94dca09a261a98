package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

func IsValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func IsValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of billable (or unbillable, price 0) client work.
// Status has no enforced transition order: any state is reachable from
// any other via direct edit.
type Task struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	ClientID    string       `json:"client_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Deadline    time.Time    `json:"deadline"`
	Price       float64      `json:"price"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	Documents []Document `json:"documents,omitempty"`
}

// IsOverdue reports whether the task is past deadline and not completed.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Deadline.Before(now) && t.Status != TaskCompleted
}
