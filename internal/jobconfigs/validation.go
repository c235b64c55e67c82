package jobconfigs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSearchConfig reports every problem with cfg rather than stopping at
// the first one.
func ValidateSearchConfig(cfg SearchConfig) ValidationResult {
	errs := []string{}
	if err := validate.Struct(cfg); err != nil {
		errs = append(errs, describe(err)...)
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(describe(err), "; "))
	}
	return nil
}

func describe(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		msg := fieldMessage(fe)
		if _, ok := seen[msg]; ok {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Keywords":
		return "At least one keyword is required"
	case "MaxResults":
		return "Max results must be between 1 and 1000"
	case "FetchFrequencyHours":
		return "Fetch frequency must be between 1 and 168 hours"
	}
	if strings.Contains(fe.StructNamespace(), ".Keywords[") {
		return "At least one keyword is required"
	}
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
