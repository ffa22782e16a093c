package pipeline

import (
	"errors"
	"fmt"

	"ecomclean/internal/cleaning"
)

// ErrorType classifies a pipeline error.
type ErrorType string

const (
	ErrorTypeSchema    ErrorType = "schema"
	ErrorTypeExecution ErrorType = "execution"
)

// PipelineError attributes a failure to the table whose cleaner raised
// it. Failures are isolated per table; sibling tables keep cleaning.
type PipelineError struct {
	Type    ErrorType `json:"type"`
	Table   string    `json:"table,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e == nil {
		return "unknown pipeline error"
	}
	if e.Table != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Table, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// WrapTableError wraps a cleaner failure with table attribution. Schema
// violations keep their type so callers can distinguish contract errors
// from unexpected ones.
func WrapTableError(table string, err error) *PipelineError {
	if err == nil {
		return nil
	}
	errType := ErrorTypeExecution
	if cleaning.IsSchemaError(err) {
		errType = ErrorTypeSchema
	}
	return &PipelineError{
		Type:    errType,
		Table:   table,
		Message: err.Error(),
		Cause:   err,
	}
}

// ErrorList aggregates per-table errors from one run.
type ErrorList struct {
	Errors []*PipelineError `json:"errors"`
}

// Error implements the error interface.
func (e *ErrorList) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("multiple errors: %d errors occurred", len(e.Errors))
	}
}

// Add appends a non-nil error to the list.
func (e *ErrorList) Add(err *PipelineError) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// HasErrors reports whether any error was collected.
func (e *ErrorList) HasErrors() bool {
	return len(e.Errors) > 0
}

// ByTable returns the error recorded for a table, or nil.
func (e *ErrorList) ByTable(table string) *PipelineError {
	for _, err := range e.Errors {
		if err.Table == table {
			return err
		}
	}
	return nil
}

// IsSchemaError reports whether err is (or wraps) a schema violation.
func IsSchemaError(err error) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Type == ErrorTypeSchema
	}
	return cleaning.IsSchemaError(err)
}
