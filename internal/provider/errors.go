package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// ErrorType classifies a backend failure.
type ErrorType string

const (
	ErrorTypeAPIError      ErrorType = "api_error"
	ErrorTypeRateLimit     ErrorType = "rate_limit"
	ErrorTypeAuth          ErrorType = "auth_error"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeTimeout       ErrorType = "timeout"
	ErrorTypeEmptyResponse ErrorType = "empty_response"
)

// ErrEmptyResponse is returned when the backend answers without any text.
var ErrEmptyResponse = errors.New("model returned no text")

// ClassifiedError wraps a backend error with its classification.
type ClassifiedError struct {
	Type       ErrorType
	Backend    string
	Message    string
	StatusCode int
	Original   error
}

func (e *ClassifiedError) Error() string {
	if e.Backend == "" {
		return e.Message
	}
	return e.Backend + ": " + e.Message
}

func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

// ClassifyError classifies an error from a backend. statusCode is the HTTP
// status when one is known and 0 otherwise.
func ClassifyError(backend string, err error, statusCode int, responseBody string) *ClassifiedError {
	if err == nil {
		return nil
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce
	}

	msg := err.Error()
	if responseBody != "" && !strings.Contains(msg, responseBody) {
		msg = msg + " " + responseBody
	}
	lowerMsg := strings.ToLower(msg)

	classified := &ClassifiedError{
		Backend:    backend,
		StatusCode: statusCode,
		Original:   err,
	}

	switch {
	case errors.Is(err, ErrEmptyResponse):
		classified.Type = ErrorTypeEmptyResponse
		classified.Message = err.Error()

	case errors.Is(err, context.DeadlineExceeded):
		classified.Type = ErrorTypeTimeout
		classified.Message = "request timed out"

	case statusCode == 429 || strings.Contains(lowerMsg, "rate_limit") ||
		strings.Contains(lowerMsg, "quota") || strings.Contains(lowerMsg, "resource_exhausted"):
		classified.Type = ErrorTypeRateLimit
		classified.Message = fmt.Sprintf("rate limited: %s", err.Error())

	case statusCode == 401 || statusCode == 403 ||
		strings.Contains(lowerMsg, "authentication") || strings.Contains(lowerMsg, "permission") ||
		strings.Contains(lowerMsg, "credentials"):
		classified.Type = ErrorTypeAuth
		if statusCode != 0 {
			classified.Message = fmt.Sprintf("authentication error (%d): %s", statusCode, err.Error())
		} else {
			classified.Message = fmt.Sprintf("authentication error: %s", err.Error())
		}

	case statusCode == 404:
		classified.Type = ErrorTypeNotFound
		classified.Message = fmt.Sprintf("model or endpoint not found: %s", err.Error())

	case statusCode >= 500:
		classified.Type = ErrorTypeAPIError
		classified.Message = fmt.Sprintf("server error (%d): %s", statusCode, err.Error())

	default:
		classified.Type = ErrorTypeAPIError
		classified.Message = err.Error()
	}

	return classified
}

// withHint classifies err and attaches a user-facing hint for the failure
// kinds that have an obvious remedy.
func withHint(backend string, err error, statusCode int, responseBody string) error {
	ce := ClassifyError(backend, err, statusCode, responseBody)
	if hint := hintFor(ce); hint != "" {
		return cerr.WithHint(ce, hint)
	}
	return ce
}

func hintFor(ce *ClassifiedError) string {
	switch ce.Type {
	case ErrorTypeAuth:
		if ce.Backend == VertexBackendName {
			if ce.StatusCode == 403 || strings.Contains(strings.ToLower(ce.Message), "permission") {
				return "check that the Vertex AI API is enabled for the project and your account has access"
			}
			return "run: gcloud auth application-default login"
		}
		if ce.StatusCode == 403 {
			return "check that your API key has permission to use this model"
		}
		return `check your API key or run "git-commit-ai config"`
	case ErrorTypeRateLimit:
		return "check your API usage and quota"
	case ErrorTypeTimeout:
		return "the model did not answer in time; check your network connection"
	}
	return ""
}

// Hints returns the user hints attached to err, if any.
func Hints(err error) []string {
	return cerr.GetAllHints(err)
}
