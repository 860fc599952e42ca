package apperr

import "fmt"

// Kind captures the taxonomy of subtuner errors, mirrored from the teacher's
// internal/services.ErrorKind.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindParsing       Kind = "parsing"
	KindWriting       Kind = "writing"
	KindNotFound      Kind = "not_found"
	KindValidation    Kind = "validation"
)

// Error provides structured error context for failures outside the
// optimization pipeline: which operation failed, on which file, and why.
type Error struct {
	Kind      Kind
	Operation string
	Path      string
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	detail := e.Operation
	if e.Path != "" {
		detail = fmt.Sprintf("%s %s", detail, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", detail, e.Cause)
	}
	return detail
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ErrorKind satisfies the teacher's ErrorClassifier interface shape so CLI
// logging can categorize failures without a type switch.
func (e *Error) ErrorKind() string {
	if e == nil {
		return ""
	}
	return string(e.Kind)
}

// New wraps cause with the given kind, operation label, and file path.
func New(kind Kind, operation, path string, cause error) *Error {
	return &Error{Kind: kind, Operation: operation, Path: path, Cause: cause}
}

// Configuration wraps a configuration validation failure.
func Configuration(operation string, cause error) *Error {
	return New(KindConfiguration, operation, "", cause)
}

// Parsing wraps a codec parse failure.
func Parsing(path string, cause error) *Error {
	return New(KindParsing, "parse", path, cause)
}

// Writing wraps a codec write failure.
func Writing(path string, cause error) *Error {
	return New(KindWriting, "write", path, cause)
}
