package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// itemValidate is shared by all validations; validator caches struct metadata.
var itemValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a write-time rule violation on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the write-time rules for an item: Text must be present and
// non-empty. It returns nil or a *ValidationError.
func (n NewItem) Validate() error {
	err := itemValidate.Struct(n)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: jsonName(fe.Field()), Reason: reason(fe.Tag())}
	}
	return &ValidationError{Field: "item", Reason: err.Error()}
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func jsonName(field string) string {
	switch field {
	case "Text":
		return "text"
	case "IsMarked":
		return "isMarked"
	default:
		return field
	}
}

func reason(tag string) string {
	if tag == "required" {
		return "please enter a text"
	}
	return "failed " + tag + " check"
}
