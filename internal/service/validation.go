package service

import "fmt"

// ValidationError rejects a write before it reaches the store and names the
// offending field so handlers can echo it back.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const phoneFormatMessage = "phone number must be in E.164 format (e.g., +11234567890)"
