package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/testutil"
	"github.com/dtroode/tasktracker-server/internal/validation"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriter_Success(t *testing.T) {
	t.Parallel()

	rw := NewWriter(testutil.MakeNoopLogger(), false)
	rec := httptest.NewRecorder()

	rw.Success(rec, http.StatusCreated, map[string]any{"id": 1}, "Task created successfully")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":1},"message":"Task created successfully"}`, rec.Body.String())
}

func TestWriter_Success_KeepsEmptyList(t *testing.T) {
	t.Parallel()

	rw := NewWriter(testutil.MakeNoopLogger(), false)
	rec := httptest.NewRecorder()

	rw.Success(rec, http.StatusOK, []any{}, "Users retrieved successfully")

	assert.JSONEq(t, `{"success":true,"data":[],"message":"Users retrieved successfully"}`, rec.Body.String())
}

func TestWriter_Error(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	cause := errors.New(`pq: relation "tasks" does not exist`)
	_, errs, err := validation.Validate(req.Context(), validation.TaskUpdateRules(), map[string]any{"status": "x"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		expose   bool
		err      error
		wantCode int
		wantJSON string
	}{
		{
			name:     "not found",
			err:      apierror.NewErrTaskNotFound(),
			wantCode: http.StatusNotFound,
			wantJSON: `{"success":false,"message":"Task not found"}`,
		},
		{
			name:     "validation",
			err:      apierror.NewErrValidation(errs),
			wantCode: http.StatusUnprocessableEntity,
			wantJSON: `{"success":false,"message":"El estado debe ser uno de: pending, in_progress, completed.","errors":{"status":["El estado debe ser uno de: pending, in_progress, completed."]}}`,
		},
		{
			name:     "persistence hidden",
			err:      apierror.NewErrPersistence("Failed to create task", cause),
			wantCode: http.StatusInternalServerError,
			wantJSON: `{"success":false,"message":"Failed to create task"}`,
		},
		{
			name:     "persistence exposed",
			expose:   true,
			err:      apierror.NewErrPersistence("Failed to create task", cause),
			wantCode: http.StatusInternalServerError,
			wantJSON: `{"success":false,"message":"Failed to create task","error":"pq: relation \"tasks\" does not exist"}`,
		},
		{
			name:     "server misconfigured never carries a cause",
			expose:   true,
			err:      apierror.NewErrAPITokenNotConfigured(),
			wantCode: http.StatusInternalServerError,
			wantJSON: `{"success":false,"message":"API token not configured on server"}`,
		},
		{
			name:     "unknown error",
			expose:   true,
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantJSON: `{"success":false,"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewWriter(testutil.MakeNoopLogger(), tt.expose).Error(rec, req, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantJSON, rec.Body.String())
			assert.Equal(t, false, decode(t, rec)["success"])
		})
	}
}
