package services

import "strings"

// ValidationError carries every violated field of a payload, never just
// the first one found.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
