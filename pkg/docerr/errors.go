// Package docerr provides the error types returned while generating documentation.
//
// Every fatal condition of a generation run maps to one sentinel error so callers can
// branch with errors.Is, or pull the details out with errors.As:
//
//	_, err := gen.Generate(opts)
//	var schemaErr *docerr.SchemaError
//	if errors.As(err, &schemaErr) {
//	    for _, v := range schemaErr.Violations {
//	        fmt.Println(v)
//	    }
//	}
package docerr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSchemaViolation indicates the collection document failed structural validation.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrMissingField indicates a field required for a record's identity is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrSubstitution indicates environment substitution broke a serialized value.
	ErrSubstitution = errors.New("substitution corrupted value")

	// ErrIO indicates a file could not be read, written or copied.
	ErrIO = errors.New("io failure")
)

// Violation is a single schema constraint the document does not satisfy.
type Violation struct {
	// Path is the location of the offending value, e.g. "item.0.request"
	Path string
	// Message describes the failed constraint
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// SchemaError reports a document that does not conform to the collection schema.
type SchemaError struct {
	// Source is the file path or identifier of the document
	Source string
	// Violations lists every failed constraint, in validator order
	Violations []Violation
	// Cause is set when the document could not be evaluated at all (e.g. malformed JSON)
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema violation"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if len(e.Violations) > 0 {
		parts := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			parts[i] = v.String()
		}
		msg += ": " + strings.Join(parts, "; ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// MissingFieldError reports an absent field that the run cannot do without.
type MissingFieldError struct {
	// Field is the dotted path of the missing field, e.g. "info.name"
	Field string
}

// Error returns a human-readable error message.
func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// Is reports whether target matches this error type.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// SubstitutionError reports substituted text that no longer decodes into its original shape.
type SubstitutionError struct {
	// Shape names the Go type the text was decoded back into
	Shape string
	// Cause is the decoding error
	Cause error
}

// Error returns a human-readable error message.
func (e *SubstitutionError) Error() string {
	msg := "substitution corrupted value"
	if e.Shape != "" {
		msg += " of type " + e.Shape
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SubstitutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SubstitutionError) Is(target error) bool {
	return target == ErrSubstitution
}

// IOError reports a file system failure together with the offending path.
type IOError struct {
	// Op is the attempted operation: "read", "write", "copy" or "mkdir"
	Op string
	// Path is the file or directory involved
	Path string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := fmt.Sprintf("failed to %s %s", e.Op, e.Path)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
