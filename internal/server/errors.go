// errors.go - Structured error responses
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"mth5meta/internal/metadict"
	"mth5meta/internal/transcode"
	"mth5meta/internal/xmltree"
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewUnsupportedMediaError creates a 415 error for an unreadable body type
func NewUnsupportedMediaError(contentType string) *APIError {
	return &APIError{
		Status:  http.StatusUnsupportedMediaType,
		Code:    "UNSUPPORTED_MEDIA_TYPE",
		Message: fmt.Sprintf("cannot read request body of type %q", contentType),
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// FromTransformError maps a transform failure to a 400 with a specific code.
func FromTransformError(err error) *APIError {
	code := "BAD_REQUEST"

	switch {
	case errors.Is(err, metadict.ErrStructuralConflict):
		code = "STRUCTURAL_CONFLICT"
	case errors.Is(err, metadict.ErrAmbiguousKey):
		code = "AMBIGUOUS_KEY"
	case errors.Is(err, transcode.ErrRootCount), errors.Is(err, transcode.ErrRootNotMapping):
		code = "INVALID_ROOT"
	case errors.Is(err, transcode.ErrInvalidTag), errors.Is(err, transcode.ErrUnsupportedValue):
		code = "INVALID_DOCUMENT"
	case errors.Is(err, transcode.ErrCoerce):
		code = "TYPE_MISMATCH"
	case errors.Is(err, xmltree.ErrNoRoot), errors.Is(err, xmltree.ErrMultipleRoots):
		code = "INVALID_XML"
	}

	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: err.Error(),
	}
}

// ErrorHandler renders every handler error as an APIError.
// Usage: e.HTTPErrorHandler = server.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		apiErr  *APIError
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{
			Status:  httpErr.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", httpErr.Message),
		}
	default:
		apiErr = &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "UNKNOWN_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		}
	}

	if err := c.JSON(apiErr.Status, apiErr); err != nil {
		c.Logger().Error(err)
	}
}
