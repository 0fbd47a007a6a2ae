package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// Get returns the shared struct validator.
func Get() *Validator {
	once.Do(func() {
		instance = &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
	})
	return instance
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// Struct validates s with the shared validator and flattens any field errors
// into a single readable error.
func Struct(s interface{}) error {
	err := Get().ValidateStruct(s)
	if err == nil {
		return nil
	}
	fields := FormatValidationError(err)
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)
	return errors.New(strings.Join(parts, "; "))
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "min":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "gtefield":
			errs[field] = fmt.Sprintf("must be >= %s", strings.ToLower(e.Param()))
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}
