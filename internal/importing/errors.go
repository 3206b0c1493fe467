// Package importing turns raw delimited text (or vCard streams) into ordered
// contact records for bulk signature creation.
package importing

// ErrorKind classifies why an import produced no records.
type ErrorKind string

// The import error taxonomy. Every failure is locally recoverable: the caller
// shows the message and lets the user retry.
const (
	ErrEmptyInput        ErrorKind = "empty_input"
	ErrNoHeaders         ErrorKind = "no_headers"
	ErrMissingNameColumn ErrorKind = "missing_name_column"
	ErrNoValidRows       ErrorKind = "no_valid_rows"
)

// ImportError carries a user-facing message; Error() is surfaced verbatim.
type ImportError struct {
	Kind    ErrorKind
	Message string
}

func (e *ImportError) Error() string {
	return e.Message
}

// IsKind reports whether err is an ImportError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	importErr, ok := err.(*ImportError)
	return ok && importErr.Kind == kind
}
