package entities

// ValidationResult represents the outcome of a descriptor validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError identifies a single offending field.
type ValidationError struct {
	Field   string
	Message string

	// Err carries the typed load error behind the message, when one
	// exists, so callers can distinguish error kinds with errors.As.
	Err error `json:"-"`
}

// Add records an error and marks the result invalid.
func (r *ValidationResult) Add(field, message string, err error) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Err: err})
}
