package entities

// ValidationResult contains the outcome of validating a configuration document.
type ValidationResult struct {
	Errors []ValidationError `json:"errors,omitempty"`
	Valid  bool              `json:"valid"`
}

// ValidationError describes one rule a document failed.
type ValidationError struct {
	// Field is the JSON pointer or struct namespace of the offending value.
	Field string `json:"field"`

	// Message is the human-readable reason.
	Message string `json:"message"`
}
