package models

import (
	"fmt"
	"sort"
	"strings"
)

type ErrorNotFound struct {
	Resource string
}

func (e ErrorNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrorForbidden marks an ownership failure. Handlers answer it with a
// redirect instead of an error page.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorValidation struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) ErrorValidation {
	return ErrorValidation{Fields: map[string][]string{field: {message}}}
}

func (e ErrorValidation) Add(field, message string) ErrorValidation {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func (e ErrorValidation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type ErrorInternalServer struct {
	Err error
}

func (e ErrorInternalServer) Error() string {
	return "internal server error: " + e.Err.Error()
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Err
}
