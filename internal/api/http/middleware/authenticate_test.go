package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/testutil"
)

const testToken = "s3cr3t-token"

func TestExtractCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "abc", want: "abc"},
		{header: "Bearer", want: ""},
		{header: "bearer abc", want: "bearer abc"},
		{header: "Bearer  abc", want: " abc"},
		{header: "Token abc", want: "Token abc"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCredential(tt.header))
		})
	}
}

func TestAuthenticate_Authorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		header   string
		present  bool
		wantKind apierror.Kind
	}{
		{name: "missing header", token: testToken, wantKind: apierror.KindAuthMissing},
		{name: "blank header", token: testToken, present: true, wantKind: apierror.KindAuthMissing},
		{name: "empty bearer payload", token: testToken, header: "Bearer", present: true, wantKind: apierror.KindAuthEmpty},
		{name: "server token unset", header: "Bearer anything", present: true, wantKind: apierror.KindAuthServerMisconfigured},
		{name: "wrong token", token: testToken, header: "Bearer nope", present: true, wantKind: apierror.KindAuthInvalid},
		{name: "prefix of token", token: testToken, header: "s3cr3t", present: true, wantKind: apierror.KindAuthInvalid},
		{name: "lowercase scheme is verbatim", token: testToken, header: "bearer " + testToken, present: true, wantKind: apierror.KindAuthInvalid},
		{name: "bearer format", token: testToken, header: "Bearer " + testToken, present: true},
		{name: "raw format", token: testToken, header: testToken, present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthenticate(tt.token, nil, testutil.MakeNoopLogger())
			err := m.Authorize(tt.header, tt.present)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apierror.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		token       string
		header      *string
		wantCode    int
		wantMessage string
		wantNext    bool
	}{
		{name: "no header", token: testToken, wantCode: http.StatusUnauthorized, wantMessage: "Authorization header is required"},
		{name: "empty bearer", token: testToken, header: ptr("Bearer "), wantCode: http.StatusUnauthorized, wantMessage: "API token is required"},
		{name: "wrong token", token: testToken, header: ptr("Bearer wrong"), wantCode: http.StatusUnauthorized, wantMessage: "Invalid API token"},
		{name: "not configured", header: ptr("Bearer " + testToken), wantCode: http.StatusInternalServerError, wantMessage: "API token not configured on server"},
		{name: "bearer ok", token: testToken, header: ptr("Bearer " + testToken), wantCode: http.StatusNoContent, wantNext: true},
		{name: "raw ok", token: testToken, header: ptr(testToken), wantCode: http.StatusNoContent, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg := testutil.MakeNoopLogger()
			m := NewAuthenticate(tt.token, response.NewWriter(lg, false), lg)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
			if tt.header != nil {
				req.Header.Set("Authorization", *tt.header)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantMessage != "" {
				assert.JSONEq(t, `{"success":false,"message":"`+tt.wantMessage+`"}`, rec.Body.String())
			}
		})
	}
}

func TestAuthenticate_NeverLogsToken(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := logger.NewWithWriter(-4, &buf)
	m := NewAuthenticate(testToken, response.NewWriter(lg, true), lg)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/1", nil)
	req.Header.Set("Authorization", "Bearer almost-"+testToken)
	rec := httptest.NewRecorder()
	m.Handle(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), testToken)
	assert.NotContains(t, rec.Body.String(), testToken)
}

func ptr(s string) *string { return &s }
