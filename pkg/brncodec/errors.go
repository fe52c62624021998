package brncodec

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/kbrn/pkg/brn"
)

// ErrUnexpectedType is returned when a pipeline hands a value of the wrong
// type to a converter, e.g. a BSON int32 where a string is expected.
var ErrUnexpectedType = errors.New("unexpected type for business registration number")

// DecodeError reports a failed conversion from text to brn.BRN.
type DecodeError struct {
	// Pipeline names the host library, e.g. "bson" or "pgx".
	Pipeline string
	Input    string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Pipeline == "" {
		return fmt.Sprintf("brncodec: decode %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("brncodec: %s: decode %q: %v", e.Pipeline, e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind returns the parse failure kind, or 0 when Err is not a parse failure.
func (e *DecodeError) Kind() brn.Kind {
	k, _ := brn.KindOf(e.Err)
	return k
}

// EncodeError reports a value that could not be rendered.
type EncodeError struct {
	Pipeline string
	Err      error
}

func (e *EncodeError) Error() string {
	if e.Pipeline == "" {
		return fmt.Sprintf("brncodec: encode: %v", e.Err)
	}
	return fmt.Sprintf("brncodec: %s: encode: %v", e.Pipeline, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
