package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/validation"
)

// UserService defines user use cases.
type UserService interface {
	List(ctx context.Context) ([]model.UserWithTaskCount, error)
	Tasks(ctx context.Context, userID int64, query map[string]any) (model.User, []model.Task, error)
	Create(ctx context.Context, input map[string]any) (model.User, error)
}

// User is the HTTP handler for user endpoints.
type User struct {
	service UserService
	writer  *response.Writer
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, writer *response.Writer, logger *logger.Logger) *User {
	return &User{service: service, writer: writer, logger: logger}
}

// List handles GET /users.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.writer.Error(w, r, err)
		return
	}

	out := make([]userListResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userListResponse{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			CreatedAt:  u.CreatedAt.UTC(),
			TasksCount: u.TasksCount,
		})
	}

	h.writer.Success(w, http.StatusOK, out, "Users retrieved successfully")
}

// Tasks handles GET /users/{id}/tasks.
func (h *User) Tasks(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writer.Error(w, r, apierror.NewErrUserNotFound())
		return
	}

	query := map[string]any{}
	if q := r.URL.Query(); q.Has(validation.FieldStatus) {
		query[validation.FieldStatus] = q.Get(validation.FieldStatus)
	}

	user, tasks, err := h.service.Tasks(r.Context(), id, query)
	if err != nil {
		h.writer.Error(w, r, err)
		return
	}

	out := userTasksResponse{User: toOwnerResponse(user.Summary()), Tasks: make([]userTaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, userTaskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt.UTC(),
			UpdatedAt:   t.UpdatedAt.UTC(),
		})
	}

	h.writer.Success(w, http.StatusOK, out, "User tasks retrieved successfully")
}

// Create handles POST /users.
func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Create(r.Context(), decodeInput(r))
	if err != nil {
		h.writer.Error(w, r, err)
		return
	}

	h.logger.Debug("User handler: user created", "user_id", user.ID)
	h.writer.Success(w, http.StatusCreated, toUserResponse(user), "User created successfully")
}
