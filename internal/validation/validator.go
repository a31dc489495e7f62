// Package validation validates ship, port and voyage records before they
// reach the store.
//
// Struct constraints (required fields, length limits, speed range) are
// declared as go-playground/validator tags on the models. The voyage date
// and instants are checked by hand.
//
// # Usage Example
//
//	v := validation.New()
//	result := v.ValidateShip(&ship)
//	if !result.Valid {
//	    for _, err := range result.Errors {
//	        fmt.Printf("%s: %s\n", err.Field, err.Message)
//	    }
//	}
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"evalgo.org/maritime/models"
)

// Record kinds accepted by ValidateDocument.
const (
	KindShip   = "ship"
	KindPort   = "port"
	KindVoyage = "voyage"
)

// ErrUnknownKind is returned by ValidateDocument for an unsupported record kind.
var ErrUnknownKind = errors.New("unknown record kind")

// Validator validates maritime records.
type Validator struct {
	structValidator *validator.Validate
}

// ValidationError represents a single validation error with field-level details.
// It includes the field name, error message, and optionally the invalid value.
type ValidationError struct {
	// Field is the JSON name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult represents the complete result of a validation operation.
// It indicates whether validation passed and includes any errors found.
type ValidationResult struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid is true)
	Errors []ValidationError `json:"errors,omitempty"`
}

// Fields returns the errors keyed by field name. When a field failed more
// than once the first message wins.
func (r *ValidationResult) Fields() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// Error joins all messages, so a failed result can travel as an error.
func (r *ValidationResult) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return strings.Join(msgs, "; ")
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	sv := validator.New(validator.WithRequiredStructEnabled())
	sv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{structValidator: sv}
}

// ValidateShip checks name and max speed.
func (v *Validator) ValidateShip(ship *models.Ship) *ValidationResult {
	return result(v.structErrors(ship))
}

// ValidatePort checks name and country.
func (v *Validator) ValidatePort(port *models.Port) *ValidationResult {
	return result(v.structErrors(port))
}

// ValidateVoyage checks the port references and that the date and both
// instants are set. Whether the ports exist is left to the store, and
// start before end is deliberately not required.
func (v *Validator) ValidateVoyage(voyage *models.Voyage) *ValidationResult {
	errs := v.structErrors(voyage)

	if voyage.Date().IsZero() {
		errs = append(errs, ValidationError{Field: "voyageDate", Message: "Voyage date is required"})
	}
	if voyage.VoyageStart.IsZero() {
		errs = append(errs, ValidationError{Field: "voyageStart", Message: "Voyage start is required"})
	}
	if voyage.VoyageEnd.IsZero() {
		errs = append(errs, ValidationError{Field: "voyageEnd", Message: "Voyage end is required"})
	}

	return result(errs)
}

// ValidateDocument parses a JSON document of the given kind and validates it.
// Malformed JSON yields an invalid result rather than an error.
func (v *Validator) ValidateDocument(kind string, data []byte) (*ValidationResult, error) {
	switch strings.ToLower(kind) {
	case KindShip:
		var ship models.Ship
		if err := json.Unmarshal(data, &ship); err != nil {
			return invalidJSON(err), nil
		}
		models.TrimShip(&ship)
		return v.ValidateShip(&ship), nil
	case KindPort:
		var port models.Port
		if err := json.Unmarshal(data, &port); err != nil {
			return invalidJSON(err), nil
		}
		models.TrimPort(&port)
		return v.ValidatePort(&port), nil
	case KindVoyage:
		var voyage models.Voyage
		if err := json.Unmarshal(data, &voyage); err != nil {
			return invalidJSON(err), nil
		}
		return v.ValidateVoyage(&voyage), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (v *Validator) structErrors(s interface{}) []ValidationError {
	err := v.structValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "document", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
			Value:   fe.Value(),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
	}
}

func invalidJSON(err error) *ValidationResult {
	return &ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Field:   "document",
				Message: fmt.Sprintf("Invalid JSON: %v", err),
			},
		},
	}
}

func result(errs []ValidationError) *ValidationResult {
	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
