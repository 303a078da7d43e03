// Package handler exposes the task and user use cases over HTTP.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// decodeInput reads a JSON object body. Anything else, including an empty
// or malformed body, reads as no input.
func decodeInput(r *http.Request) map[string]any {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var input map[string]any
	if err := dec.Decode(&input); err != nil || input == nil {
		return map[string]any{}
	}
	return input
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NotImplemented answers routes that exist but have no behavior.
func NotImplemented(writer *response.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writer.Error(w, r, apierror.NewErrNotImplemented())
	}
}

type ownerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type taskResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Status      string        `json:"status"`
	UserID      int64         `json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	User        ownerResponse `json:"user"`
}

type userTaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userListResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	TasksCount int64     `json:"tasks_count"`
}

type userTasksResponse struct {
	User  ownerResponse      `json:"user"`
	Tasks []userTaskResponse `json:"tasks"`
}

func toOwnerResponse(s model.UserSummary) ownerResponse {
	return ownerResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}

func toTaskResponse(t model.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
		User:        toOwnerResponse(t.Owner),
	}
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}
