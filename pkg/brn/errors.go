package brn

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned when the input does not have the shape of a BRN:
	// it is empty, has the wrong number of digits, contains other characters
	// or places separators outside the 3-2-5 group boundaries.
	ErrMalformed = errors.New("malformed business registration number")

	// ErrChecksumMismatch is returned when the input is 10 digits but the last
	// one does not match the checksum of the first nine.
	ErrChecksumMismatch = errors.New("business registration number checksum mismatch")
)

// Kind classifies a parse failure.
type Kind uint8

const (
	// KindMalformed means the input has the wrong shape.
	KindMalformed Kind = iota + 1
	// KindChecksumMismatch means the shape is right but the check digit is wrong.
	KindChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindChecksumMismatch:
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}

// ParseError describes why an input could not be turned into a BRN.
type ParseError struct {
	Input  string
	Kind   Kind
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("brn: %s: %q", e.sentinel(), e.Input)
	}
	return fmt.Sprintf("brn: %s: %q: %s", e.sentinel(), e.Input, e.Reason)
}

// Unwrap returns ErrMalformed or ErrChecksumMismatch depending on Kind.
func (e *ParseError) Unwrap() error {
	return e.sentinel()
}

func (e *ParseError) sentinel() error {
	if e.Kind == KindChecksumMismatch {
		return ErrChecksumMismatch
	}
	return ErrMalformed
}

func malformed(input, reason string) error {
	return &ParseError{Input: input, Kind: KindMalformed, Reason: reason}
}

func checksumMismatch(input string, want, got byte) error {
	return &ParseError{
		Input:  input,
		Kind:   KindChecksumMismatch,
		Reason: fmt.Sprintf("check digit is %c, expected %c", got, want),
	}
}

// KindOf extracts the failure kind from err.
// The second result is false when err does not come from this package.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	switch {
	case errors.Is(err, ErrChecksumMismatch):
		return KindChecksumMismatch, true
	case errors.Is(err, ErrMalformed):
		return KindMalformed, true
	}
	return 0, false
}

func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

func IsChecksumMismatch(err error) bool {
	return errors.Is(err, ErrChecksumMismatch)
}
