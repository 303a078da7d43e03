package service

import (
	"context"
	"errors"
	"time"

	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/validation"
)

// Task implements task use cases on top of the task and user stores.
type Task struct {
	taskStore model.TaskStore
	userStore model.UserStore
	logger    *logger.Logger
	now       func() time.Time
}

// NewTask creates a Task service.
func NewTask(taskStore model.TaskStore, userStore model.UserStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		userStore: userStore,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Task) userExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create validates input and stores a new task owned by input's user_id.
func (s *Task) Create(ctx context.Context, input map[string]any) (model.Task, error) {
	s.logger.Debug("Task service: creating task")

	values, fields, err := validation.Validate(ctx, validation.TaskCreateRules(s.userExists), input)
	if err != nil {
		s.logger.Error("Task service: failed to validate task", "error", err)
		return model.Task{}, apierror.NewErrPersistence("Failed to create task", err)
	}
	if fields != nil {
		s.logger.Debug("Task service: task rejected", "errors", fields.Count())
		return model.Task{}, apierror.NewErrValidation(fields)
	}

	title, _ := values.String(validation.FieldTitle)
	description, _ := values.NullableString(validation.FieldDescription)
	status, _ := values.String(validation.FieldStatus)
	userID, _ := values.Int64(validation.FieldUserID)
	now := s.now()

	task, err := s.taskStore.Create(ctx, model.Task{
		Title:       title,
		Description: description,
		Status:      model.TaskStatus(status),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error("Task service: failed to create task", "user_id", userID, "error", err)
		return model.Task{}, apierror.NewErrPersistence("Failed to create task", err)
	}

	s.logger.Info("Task service: task created", "task_id", task.ID, "user_id", task.UserID)
	return task, nil
}

// Update applies the fields present in input to task id. A missing task is
// reported before the input is looked at.
func (s *Task) Update(ctx context.Context, id int64, input map[string]any) (model.Task, error) {
	s.logger.Debug("Task service: updating task", "task_id", id)

	task, err := s.taskStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierror.NewErrTaskNotFound()
	}
	if err != nil {
		s.logger.Error("Task service: failed to get task", "task_id", id, "error", err)
		return model.Task{}, apierror.NewErrPersistence("Failed to update task", err)
	}

	values, fields, err := validation.Validate(ctx, validation.TaskUpdateRules(), input)
	if err != nil {
		return model.Task{}, apierror.NewErrPersistence("Failed to update task", err)
	}
	if fields != nil {
		return model.Task{}, apierror.NewErrValidation(fields)
	}

	if title, ok := values.String(validation.FieldTitle); ok {
		task.Title = title
	}
	if description, present := values.NullableString(validation.FieldDescription); present {
		task.Description = description
	}
	if status, ok := values.String(validation.FieldStatus); ok {
		task.Status = model.TaskStatus(status)
	}
	task.UpdatedAt = s.now()

	updated, err := s.taskStore.Update(ctx, task)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierror.NewErrTaskNotFound()
	}
	if err != nil {
		s.logger.Error("Task service: failed to update task", "task_id", id, "error", err)
		return model.Task{}, apierror.NewErrPersistence("Failed to update task", err)
	}

	s.logger.Info("Task service: task updated", "task_id", id, "status", updated.Status)
	return updated, nil
}

// Delete removes task id.
func (s *Task) Delete(ctx context.Context, id int64) error {
	err := s.taskStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrTaskNotFound()
	}
	if err != nil {
		s.logger.Error("Task service: failed to delete task", "task_id", id, "error", err)
		return apierror.NewErrPersistence("Failed to delete task", err)
	}

	s.logger.Info("Task service: task deleted", "task_id", id)
	return nil
}

// Find returns the tasks matching filter, newest first.
func (s *Task) Find(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	tasks, err := s.taskStore.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Task service: failed to find tasks", "error", err)
		return nil, apierror.NewErrPersistence("Failed to retrieve tasks", err)
	}
	return tasks, nil
}
