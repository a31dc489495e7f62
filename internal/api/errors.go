package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/storage"
)

// ConflictStatus is the status used for conflicts with existing records,
// such as deleting a port that voyages still reference. Existing clients
// expect 400 here rather than 409.
var ConflictStatus = http.StatusBadRequest

// APIError represents a structured API error with HTTP status code.
type APIError struct {
	Code       int                    `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	FieldError map[string]string      `json:"field_errors,omitempty"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// NewAPIError creates a new API error.
func NewAPIError(code int, message string, details string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common error constructors
func BadRequestError(message, details string) *APIError {
	return NewAPIError(http.StatusBadRequest, message, details)
}

func NotFoundError(resource string, id uint) *APIError {
	return &APIError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s with ID %d not found.", resource, id),
		Context: map[string]interface{}{"id": id},
	}
}

func ValidationError(message string, fieldErrors map[string]string) *APIError {
	return &APIError{
		Code:       http.StatusBadRequest,
		Message:    message,
		FieldError: fieldErrors,
	}
}

func InternalError(message, details string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message, details)
}

func ConflictError(message, details string) *APIError {
	return NewAPIError(ConflictStatus, message, details)
}

// IDMismatchError reports a PUT whose body id differs from the path id.
func IDMismatchError(resource string, pathID, bodyID uint) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("ID mismatch between URL and %s data.", resource),
		Context: map[string]interface{}{"path_id": pathID, "body_id": bodyID},
	}
}

// storageError translates a storage failure for the given resource into an
// APIError. Unknown failures become internal errors.
func storageError(err error, resource string, id uint) *APIError {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return NotFoundError(resource, id)
	case errors.Is(err, storage.ErrPortInUse):
		apiErr := ConflictError(
			fmt.Sprintf("Cannot delete Port ID %d because it is referenced by existing Voyages.", id),
			err.Error(),
		)
		apiErr.Context = map[string]interface{}{"id": id}
		return apiErr
	case errors.Is(err, storage.ErrInvalidPortReference):
		return ValidationError("Invalid Departure or Arrival Port ID provided.", map[string]string{
			"departurePortId": "must reference an existing port",
			"arrivalPortId":   "must reference an existing port",
		})
	default:
		return InternalError(fmt.Sprintf("Failed to access %s records", resource), err.Error())
	}
}

// NewHTTPErrorHandler returns an Echo error handler that renders APIError
// bodies and logs server-side failures.
func NewHTTPErrorHandler(log *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if log != nil && statusOf(err) >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err.Error(),
			)
		}
		HTTPErrorHandler(err, c)
	}
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}

// HTTPErrorHandler is a custom error handler for Echo.
func HTTPErrorHandler(err error, c echo.Context) {
	// Don't send response if already sent
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	var he *echo.HTTPError
	code := http.StatusInternalServerError

	if errors.As(err, &he) {
		code = he.Code
		apiErr = &APIError{
			Code:    code,
			Message: getHTTPMessage(code),
			Details: fmt.Sprintf("%v", he.Message),
		}
	} else if errors.As(err, &apiErr) {
		code = apiErr.Code
	} else {
		apiErr = &APIError{
			Code:    code,
			Message: "Internal server error",
			Details: err.Error(),
		}
	}

	// Don't expose internal errors in production
	if code == http.StatusInternalServerError && !c.Echo().Debug {
		apiErr.Details = "An internal error occurred. Please try again later."
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, apiErr)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

// getHTTPMessage returns a user-friendly message for HTTP status codes.
func getHTTPMessage(code int) string {
	messages := map[int]string{
		http.StatusBadRequest:           "Bad request",
		http.StatusNotFound:             "Resource not found",
		http.StatusMethodNotAllowed:     "Method not allowed",
		http.StatusConflict:             "Conflict",
		http.StatusUnsupportedMediaType: "Unsupported media type",
		http.StatusUnprocessableEntity:  "Unprocessable entity",
		http.StatusTooManyRequests:      "Too many requests",
		http.StatusInternalServerError:  "Internal server error",
		http.StatusServiceUnavailable:   "Service unavailable",
	}

	if msg, ok := messages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}
