package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"satoru/internal/errors"
)

// ErrReauthRequired means the session is gone and the user has to sign in again.
var ErrReauthRequired = errors.New("re-authentication required")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// DetailMessage returns the server's field or detail text when present, else the message.
func (e *APIError) DetailMessage() string {
	switch details := e.Details.(type) {
	case string:
		if details != "" {
			return details
		}
	case map[string]any:
		for _, v := range details {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}

	if e.Message != "" {
		return e.Message
	}

	return http.StatusText(e.StatusCode)
}

type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	// Some endpoints answer with a bare {"detail": "..."}.
	Detail string `json:"detail"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}

	switch {
	case env.Error != nil:
		apiErr.Code = env.Error.Code
		if env.Error.Message != "" {
			apiErr.Message = env.Error.Message
		}
		apiErr.Details = env.Error.Details
	case env.Detail != "":
		apiErr.Message = env.Detail
	}

	return apiErr
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}
