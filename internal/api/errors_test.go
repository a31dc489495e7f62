package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"evalgo.org/maritime/internal/storage"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		apiError *APIError
		want     string
	}{
		{
			name: "error with details",
			apiError: &APIError{
				Code:    400,
				Message: "Bad Request",
				Details: "Invalid JSON format",
			},
			want: "Bad Request: Invalid JSON format",
		},
		{
			name: "error without details",
			apiError: &APIError{
				Code:    404,
				Message: "Not Found",
			},
			want: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apiError.Error(); got != tt.want {
				t.Errorf("APIError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBadRequestError(t *testing.T) {
	err := BadRequestError("Invalid input", "Field 'name' is required")

	if err.Code != http.StatusBadRequest {
		t.Errorf("BadRequestError().Code = %v, want %v", err.Code, http.StatusBadRequest)
	}
	if err.Message != "Invalid input" {
		t.Errorf("BadRequestError().Message = %v, want %v", err.Message, "Invalid input")
	}
	if err.Details != "Field 'name' is required" {
		t.Errorf("BadRequestError().Details = %v, want %v", err.Details, "Field 'name' is required")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("Ship", 42)

	if err.Code != http.StatusNotFound {
		t.Errorf("NotFoundError().Code = %v, want %v", err.Code, http.StatusNotFound)
	}
	if err.Message != "Ship with ID 42 not found." {
		t.Errorf("NotFoundError().Message = %v, want %v", err.Message, "Ship with ID 42 not found.")
	}
	if err.Context == nil {
		t.Error("NotFoundError().Context is nil, want non-nil")
	}
	if id, ok := err.Context["id"].(uint); !ok || id != 42 {
		t.Errorf("NotFoundError().Context['id'] = %v, want 42", err.Context["id"])
	}
}

func TestValidationError(t *testing.T) {
	fieldErrors := map[string]string{
		"name":  "Name is required",
		"email": "Invalid email format",
	}
	err := ValidationError("Validation failed", fieldErrors)

	if err.Code != http.StatusBadRequest {
		t.Errorf("ValidationError().Code = %v, want %v", err.Code, http.StatusBadRequest)
	}
	if err.Message != "Validation failed" {
		t.Errorf("ValidationError().Message = %v, want %v", err.Message, "Validation failed")
	}
	if len(err.FieldError) != 2 {
		t.Errorf("ValidationError().FieldError length = %v, want 2", len(err.FieldError))
	}
	if err.FieldError["name"] != "Name is required" {
		t.Errorf("ValidationError().FieldError['name'] = %v, want 'Name is required'", err.FieldError["name"])
	}
}

func TestInternalError(t *testing.T) {
	err := InternalError("Database connection failed", "Connection timeout")

	if err.Code != http.StatusInternalServerError {
		t.Errorf("InternalError().Code = %v, want %v", err.Code, http.StatusInternalServerError)
	}
	if err.Message != "Database connection failed" {
		t.Errorf("InternalError().Message = %v, want %v", err.Message, "Database connection failed")
	}
	if err.Details != "Connection timeout" {
		t.Errorf("InternalError().Details = %v, want %v", err.Details, "Connection timeout")
	}
}

func TestConflictError(t *testing.T) {
	err := ConflictError("Resource conflict", "Port is referenced")

	if err.Code != http.StatusBadRequest {
		t.Errorf("ConflictError().Code = %v, want %v", err.Code, http.StatusBadRequest)
	}
	if err.Message != "Resource conflict" {
		t.Errorf("ConflictError().Message = %v, want %v", err.Message, "Resource conflict")
	}
	if err.Details != "Port is referenced" {
		t.Errorf("ConflictError().Details = %v, want %v", err.Details, "Port is referenced")
	}
}

func TestIDMismatchError(t *testing.T) {
	err := IDMismatchError("ship", 1, 2)

	if err.Code != http.StatusBadRequest {
		t.Errorf("IDMismatchError().Code = %v, want %v", err.Code, http.StatusBadRequest)
	}
	if err.Message != "ID mismatch between URL and ship data." {
		t.Errorf("IDMismatchError().Message = %v", err.Message)
	}
}

func TestStorageError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      fmt.Errorf("voyage 7: %w", storage.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "Voyage with ID 7 not found.",
		},
		{
			name:     "port in use",
			err:      fmt.Errorf("port 7: %w", storage.ErrPortInUse),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Cannot delete Port ID 7 because it is referenced by existing Voyages.",
		},
		{
			name:     "invalid port reference",
			err:      storage.ErrInvalidPortReference,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid Departure or Arrival Port ID provided.",
		},
		{
			name:     "other",
			err:      errors.New("disk on fire"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to access Voyage records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storageError(tt.err, "Voyage", 7)
			if got.Code != tt.wantCode {
				t.Errorf("storageError().Code = %v, want %v", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("storageError().Message = %v, want %v", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestHTTPErrorHandlerHidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(InternalError("Failed", "secret stack trace"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %v, want %v", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "secret stack trace") {
		t.Errorf("body leaks internal details: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandlerEchoError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), c)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %v, want %v", rec.Code, http.StatusMethodNotAllowed)
	}
	if !strings.Contains(rec.Body.String(), "Method not allowed") {
		t.Errorf("body = %s, want friendly message", rec.Body.String())
	}
}

func TestGetHTTPMessage(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{"Bad Request", http.StatusBadRequest, "Bad request"},
		{"Not Found", http.StatusNotFound, "Resource not found"},
		{"Internal Server Error", http.StatusInternalServerError, "Internal server error"},
		{"Unknown Code", 999, http.StatusText(999)}, // Falls back to http.StatusText for unknown codes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getHTTPMessage(tt.code); got != tt.want {
				t.Errorf("getHTTPMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}
