// Package models defines the request and response shapes exchanged with the
// CareerForge REST API.
//
// Response types implement Validator. The API client calls Validate after
// decoding a 2xx body, so a payload missing a required field fails at the
// boundary instead of surfacing as zero values in a view.
package models

import "fmt"

// Validator is implemented by every response type.
type Validator interface {
	Validate() error
}

// FieldError reports a required field absent from a decoded response.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

func need(field string, ok bool) error {
	if ok {
		return nil
	}
	return &FieldError{Field: field}
}

func firstErr(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
