package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
)

const bearerPrefix = "Bearer "

// ErrorWriter renders a failed request.
type ErrorWriter interface {
	Error(w http.ResponseWriter, r *http.Request, err error)
}

// Authenticate checks the Authorization header against a single shared API
// token. It keeps no per-request state.
type Authenticate struct {
	token  string
	errors ErrorWriter
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware accepting token.
func NewAuthenticate(token string, errors ErrorWriter, logger *logger.Logger) *Authenticate {
	return &Authenticate{token: token, errors: errors, logger: logger}
}

// ExtractCredential returns the credential carried by an Authorization header
// value. A "Bearer " prefix is stripped, any other value is used verbatim.
func ExtractCredential(header string) string {
	if header == strings.TrimSpace(bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}

// Authorize decides whether header grants access. present tells a missing
// header apart from an empty one.
func (m *Authenticate) Authorize(header string, present bool) error {
	if !present || header == "" {
		return apierror.NewErrMissingAuthorizationHeader()
	}

	credential := ExtractCredential(header)
	if credential == "" {
		return apierror.NewErrEmptyAPIToken()
	}

	if m.token == "" {
		return apierror.NewErrAPITokenNotConfigured()
	}

	if !tokensEqual(credential, m.token) {
		return apierror.NewErrInvalidAPIToken()
	}

	return nil
}

// Handle wraps next with the token check.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values, present := r.Header[http.CanonicalHeaderKey("Authorization")]
		header := ""
		if present && len(values) > 0 {
			header = values[0]
		}

		if err := m.Authorize(header, present); err != nil {
			m.logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "reason", err.Error())
			m.errors.Error(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// tokensEqual compares digests so the comparison time depends on neither
// the content nor the length of the credential.
func tokensEqual(credential, token string) bool {
	a := sha256.Sum256([]byte(credential))
	b := sha256.Sum256([]byte(token))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
