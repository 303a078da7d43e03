package model

import (
	"context"
	"time"
)

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, filter TaskFilter) ([]Task, error)
}

// TaskStatus enumerates task lifecycle states. Any state may move to any other.
type TaskStatus string

const (
	// TaskStatusPending is the status of a task nobody has started.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusInProgress is the status of a task being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusCompleted is the status of a finished task.
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskStatuses returns every legal status in declaration order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}
}

// Valid reports whether s is one of the legal statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a unit of work owned by exactly one user.
// UserID is fixed at creation. Owner is filled by stores on reads.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	UserID      int64
	Owner       UserSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Task) IsPending() bool    { return t.Status == TaskStatusPending }
func (t Task) IsInProgress() bool { return t.Status == TaskStatusInProgress }
func (t Task) IsCompleted() bool  { return t.Status == TaskStatusCompleted }

// TaskFilter narrows task queries. Nil fields do not constrain.
// Stores return matching tasks newest first.
type TaskFilter struct {
	UserID *int64
	Status *TaskStatus
}

// PendingTasks matches tasks in the pending status.
func PendingTasks() TaskFilter { return TaskFilter{}.WithStatus(TaskStatusPending) }

// InProgressTasks matches tasks in the in_progress status.
func InProgressTasks() TaskFilter { return TaskFilter{}.WithStatus(TaskStatusInProgress) }

// CompletedTasks matches tasks in the completed status.
func CompletedTasks() TaskFilter { return TaskFilter{}.WithStatus(TaskStatusCompleted) }

// TasksOfUser matches tasks owned by userID.
func TasksOfUser(userID int64) TaskFilter { return TaskFilter{}.ForUser(userID) }

// WithStatus returns a copy of f also constrained to status.
func (f TaskFilter) WithStatus(status TaskStatus) TaskFilter {
	f.Status = &status
	return f
}

// ForUser returns a copy of f also constrained to tasks owned by userID.
func (f TaskFilter) ForUser(userID int64) TaskFilter {
	f.UserID = &userID
	return f
}
