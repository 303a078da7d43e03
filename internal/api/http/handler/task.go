package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// TaskService defines task use cases.
type TaskService interface {
	Create(ctx context.Context, input map[string]any) (model.Task, error)
	Update(ctx context.Context, id int64, input map[string]any) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

// Task is the HTTP handler for task endpoints.
type Task struct {
	service TaskService
	writer  *response.Writer
	logger  *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(service TaskService, writer *response.Writer, logger *logger.Logger) *Task {
	return &Task{service: service, writer: writer, logger: logger}
}

// Create handles POST /tasks.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	task, err := h.service.Create(r.Context(), decodeInput(r))
	if err != nil {
		h.writer.Error(w, r, err)
		return
	}

	h.writer.Success(w, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// Update handles PUT /tasks/{id}.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writer.Error(w, r, apierror.NewErrTaskNotFound())
		return
	}

	task, err := h.service.Update(r.Context(), id, decodeInput(r))
	if err != nil {
		h.writer.Error(w, r, err)
		return
	}

	h.writer.Success(w, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// Delete handles DELETE /tasks/{id}.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writer.Error(w, r, apierror.NewErrTaskNotFound())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writer.Error(w, r, err)
		return
	}

	h.logger.Debug("Task handler: task deleted", "task_id", id)
	h.writer.Success(w, http.StatusOK, nil, "Task deleted successfully")
}
