package apperror

import "fmt"

// NotFoundError is returned when a requested resource does not exist.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func NewNotFound(resource, field string, value interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%v'", e.Resource, e.Field, e.Value)
}

// ValidationError carries every failing field of a payload, keyed by the
// field's JSON name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// BadRequestError reports input that could not be interpreted at all, such as
// a malformed JSON body or a non-numeric path id.
type BadRequestError struct {
	Message string
	Err     error
}

func NewBadRequest(message string, err error) *BadRequestError {
	return &BadRequestError{Message: message, Err: err}
}

func (e *BadRequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BadRequestError) Unwrap() error {
	return e.Err
}
