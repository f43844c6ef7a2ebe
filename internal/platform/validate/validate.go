// Copyright (c) 2026 Kinotek. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/kinotek/internal/platform/apperr"
	"github.com/taibuivan/kinotek/pkg/date"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Min fails if the value is below min.
func (v *Validator) Min(field string, value, min int) *Validator {
	if value < min {
		v.add(field, fmt.Sprintf("Must be at least %d", min))
	}
	return v
}

// Email fails if the value does not contain an "@".
// The product contract asks only for this minimal shape check, not full RFC 5322.
func (v *Validator) Email(field, value string) *Validator {
	if !strings.Contains(value, "@") {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// NoWhitespace fails if the value contains any Unicode whitespace.
func (v *Validator) NoWhitespace(field, value string) *Validator {
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		v.add(field, "Must not contain whitespace")
	}
	return v
}

// DateRequired fails if the date is unset.
func (v *Validator) DateRequired(field string, value date.Date) *Validator {
	if value.IsZero() {
		v.add(field, "This field is required")
	}
	return v
}

// DateNotBefore fails if the date is set and falls strictly before min.
func (v *Validator) DateNotBefore(field string, value, min date.Date) *Validator {
	if !value.IsZero() && value.Before(min) {
		v.add(field, fmt.Sprintf("Must not be before %s", min))
	}
	return v
}

// DateNotAfter fails if the date is set and falls strictly after max.
func (v *Validator) DateNotAfter(field string, value, max date.Date) *Validator {
	if !value.IsZero() && value.After(max) {
		v.add(field, fmt.Sprintf("Must not be after %s", max))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("duration", film.Duration < 0, "Must not be negative")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
