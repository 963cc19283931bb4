// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Package validation provides struct validation using go-playground/validator v10.
// It exposes a thread-safe singleton validator instance so struct metadata is
// cached across calls.
//
// Example usage:
//
//	type Options struct {
//	    MaxResults    int     `validate:"min=0,max=100"`
//	    MinConfidence float64 `validate:"min=0,max=1"`
//	}
//
//	if err := validation.ValidateStruct(&opts); err != nil {
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError represents a single field validation failure.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the struct field name that failed validation.
func (e *FieldError) Field() string { return e.field }

// Tag returns the validation tag that failed.
func (e *FieldError) Tag() string { return e.tag }

// Param returns the tag parameter (e.g. "10" for "max=10").
func (e *FieldError) Param() string { return e.param }

// Error returns a human-readable error message.
func (e *FieldError) Error() string { return e.message }

// StructValidationError is a collection of field validation failures.
type StructValidationError struct {
	errors []FieldError
}

// Errors returns the individual field errors.
func (ve *StructValidationError) Errors() []FieldError { return ve.errors }

// Error implements the error interface.
func (ve *StructValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].Error())
	}
	return strings.Join(messages, "; ")
}

// getValidator returns the singleton validator, creating it on first use.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct against its `validate` tags.
// Returns nil on success, a *StructValidationError on failure.
func ValidateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("invalid validation target: %w", err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &StructValidationError{errors: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.errors = append(ve.errors, FieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: buildMessage(fe),
		})
	}
	return ve
}

// buildMessage produces a readable message for common validation tags.
func buildMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}
