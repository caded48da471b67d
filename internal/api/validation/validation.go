package validation

import (
	"errors"
	"sort"
	"strconv"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldErrors flattens an ozzo validation result into FieldErrors ordered by
// field. Nested struct and slice errors become dotted and indexed paths.
func fieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	var errs []FieldError
	flatten("", verrs, &errs)
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

func flatten(prefix string, verrs ozzo.Errors, out *[]FieldError) {
	for key, ferr := range verrs {
		field := key
		switch {
		case prefix == "":
		case isIndex(key):
			field = prefix + "[" + key + "]"
		default:
			field = prefix + "." + key
		}

		var nested ozzo.Errors
		if errors.As(ferr, &nested) {
			flatten(field, nested, out)
			continue
		}
		*out = append(*out, FieldError{Field: field, Message: key + " " + ferr.Error()})
	}
}

func isIndex(key string) bool {
	_, err := strconv.Atoi(key)
	return err == nil
}
