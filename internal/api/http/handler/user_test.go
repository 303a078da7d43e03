package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/mocks"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/testutil"
)

func TestUser_List(t *testing.T) {
	t.Parallel()

	svc := mocks.NewUserService(t)
	svc.On("List", mock.Anything).Return([]model.UserWithTaskCount{
		{User: model.User{ID: 1, Name: "Juan Pérez", Email: "juan@example.com", Password: "hash", CreatedAt: stamp}, TasksCount: 3},
	}, nil)

	h := NewUser(svc, newWriter(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Users retrieved successfully",
		"data": [{"id":1,"name":"Juan Pérez","email":"juan@example.com","created_at":"2026-10-17T12:00:00Z","tasks_count":3}]
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestUser_List_Empty(t *testing.T) {
	t.Parallel()

	svc := mocks.NewUserService(t)
	svc.On("List", mock.Anything).Return(nil, nil)

	h := NewUser(svc, newWriter(), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.JSONEq(t, `{"success":true,"data":[],"message":"Users retrieved successfully"}`, rec.Body.String())
}

func TestUser_Tasks(t *testing.T) {
	t.Parallel()

	owner := model.User{ID: 2, Name: "María García", Email: "maria@example.com"}
	task := sampleTask()

	t.Run("ok", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("Tasks", mock.Anything, int64(2), map[string]any{}).Return(owner, []model.Task{task}, nil)

		h := NewUser(svc, newWriter(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Tasks(rec, withID(httptest.NewRequest(http.MethodGet, "/users/2/tasks", nil), "2"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "User tasks retrieved successfully",
			"data": {
				"user": {"id":2,"name":"María García","email":"maria@example.com"},
				"tasks": [{"id":5,"title":"Diseñar interfaz de usuario","description":"Crear mockups","status":"pending","created_at":"2026-10-17T12:00:00Z","updated_at":"2026-10-17T12:00:00Z"}]
			}
		}`, rec.Body.String())
	})

	t.Run("status filter passed through", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("Tasks", mock.Anything, int64(2), map[string]any{"status": "completed"}).Return(owner, nil, nil)

		h := NewUser(svc, newWriter(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Tasks(rec, withID(httptest.NewRequest(http.MethodGet, "/users/2/tasks?status=completed", nil), "2"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"tasks":[]`)
	})

	t.Run("missing user", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		svc.On("Tasks", mock.Anything, int64(99), map[string]any{}).Return(model.User{}, nil, apierror.NewErrUserNotFound())

		h := NewUser(svc, newWriter(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Tasks(rec, withID(httptest.NewRequest(http.MethodGet, "/users/99/tasks", nil), "99"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"User not found"}`, rec.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewUser(mocks.NewUserService(t), newWriter(), testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Tasks(rec, withID(httptest.NewRequest(http.MethodGet, "/users/x/tasks", nil), "x"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUser_Create(t *testing.T) {
	t.Parallel()

	created := model.User{ID: 3, Name: "Nuevo Usuario", Email: "nuevo@example.com", Password: "$2a$10$hash", CreatedAt: stamp, UpdatedAt: stamp}

	svc := mocks.NewUserService(t)
	svc.On("Create", mock.Anything, map[string]any{"name": "Nuevo Usuario", "email": "nuevo@example.com"}).Return(created, nil).Once()
	svc.On("Create", mock.Anything, mock.Anything).Return(model.User{}, apierror.NewErrPersistence("Failed to create user", errors.New("db"))).Once()

	h := NewUser(svc, newWriter(), testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Nuevo Usuario","email":"nuevo@example.com"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "User created successfully",
		"data": {"id":3,"name":"Nuevo Usuario","email":"nuevo@example.com","created_at":"2026-10-17T12:00:00Z","updated_at":"2026-10-17T12:00:00Z"}
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	rec = httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to create user"}`, rec.Body.String())
}
