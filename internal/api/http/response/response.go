// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/validation"
)

const msgInternalError = "Internal server error"

// Envelope is the body of every response.
type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message"`
	Errors  validation.Errors `json:"errors,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// Writer renders envelopes. Persistence causes are only echoed to clients
// when exposeErrors is set.
type Writer struct {
	logger       *logger.Logger
	exposeErrors bool
}

// NewWriter creates a Writer.
func NewWriter(logger *logger.Logger, exposeErrors bool) *Writer {
	return &Writer{logger: logger, exposeErrors: exposeErrors}
}

// Success writes a successful envelope with data and message.
func (rw *Writer) Success(w http.ResponseWriter, status int, data any, message string) {
	rw.write(w, status, Envelope{Success: true, Data: data, Message: message})
}

// Error translates err into a failed envelope.
func (rw *Writer) Error(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := apierror.As(err)
	if !ok {
		rw.logger.Error("unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
		rw.write(w, http.StatusInternalServerError, Envelope{Message: msgInternalError})
		return
	}

	body := Envelope{Message: apiErr.Message, Errors: apiErr.Fields}
	if apiErr.HTTPCode >= http.StatusInternalServerError {
		rw.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "kind", apiErr.Kind, "error", err)
		if rw.exposeErrors && apiErr.Cause != nil {
			body.Error = apiErr.Cause.Error()
		}
	}
	rw.write(w, apiErr.HTTPCode, body)
}

func (rw *Writer) write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rw.logger.Error("failed to encode response", "error", err)
	}
}
