package cleaning

import (
	"errors"
	"fmt"
)

// SchemaError reports a required column missing entirely from a table.
// It is fatal to that table's cleaner but never to sibling tables.
type SchemaError struct {
	Table  string
	Column string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q is missing required column %q", e.Table, e.Column)
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
