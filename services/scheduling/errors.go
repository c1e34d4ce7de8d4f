package scheduling

import (
	"errors"
	"fmt"
)

// ErrSuperseded marks a computation whose query was replaced by a newer
// one before it finished. Its result is discarded, never cached.
var ErrSuperseded = errors.New("availability computation superseded by a newer query")

// FetchError wraps a failure of one of the upstream read interfaces. It
// is fatal to the computation; no partial result is produced.
type FetchError struct {
	Source string // "facility events", "bookings", "roster", ...
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetchError(source string, err error) error {
	return &FetchError{Source: source, Err: err}
}

// SchemaError marks a data-contract violation: a field the read interfaces
// guarantee came back missing or unusable. Callers surface it as a data
// integrity problem, not a retryable fetch failure.
type SchemaError struct {
	Source string
	Field  string
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation in %s: field %q %s", e.Source, e.Field, e.Detail)
}

func NewSchemaError(source, field, detail string) error {
	return &SchemaError{Source: source, Field: field, Detail: detail}
}
