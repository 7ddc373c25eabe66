package validator

// Validator validates a struct and returns an error describing violations.
type Validator interface {
	// Validate checks data against its validation tags.
	Validate(data any) error
}
