package brn

import (
	"fmt"
	"log/slog"
	"strings"
)

// BRN is a validated Korean Business Registration Number.
//
// Values are immutable and comparable with ==. The zero value stands for
// "no number" and is never returned by a successful Parse.
type BRN struct {
	digits string
}

// Digits returns the canonical 10 digit form without separators.
func (b BRN) Digits() string {
	return b.digits
}

// IsZero reports whether b is the zero value.
func (b BRN) IsZero() bool {
	return b.digits == ""
}

// Prefix returns digits 1-3, the code of the registering tax office.
func (b BRN) Prefix() string {
	return b.slice(0, PrefixLength)
}

// ClassCode returns digits 4-5 which encode the business entity type.
func (b BRN) ClassCode() string {
	return b.slice(PrefixLength, PrefixLength+ClassLength)
}

// Serial returns digits 6-9.
func (b BRN) Serial() string {
	return b.slice(PrefixLength+ClassLength, BodyLength)
}

// Suffix returns digits 6-10: the serial followed by the check digit.
func (b BRN) Suffix() string {
	return b.slice(PrefixLength+ClassLength, Length)
}

// Body returns the nine digits covered by the checksum.
func (b BRN) Body() string {
	return b.slice(0, BodyLength)
}

// CheckDigit returns the tenth digit, or 0 for the zero value.
func (b BRN) CheckDigit() byte {
	if b.IsZero() {
		return 0
	}
	return b.digits[BodyLength]
}

// EntityType classifies the business by its class code.
func (b BRN) EntityType() EntityType {
	if b.IsZero() {
		return EntityUndefined
	}
	return EntityTypeOf(b.ClassCode())
}

// Equal reports whether both numbers have the same digits.
func (b BRN) Equal(other BRN) bool {
	return b.digits == other.digits
}

// Compare orders numbers lexicographically by digits. The zero value sorts first.
func (b BRN) Compare(other BRN) int {
	return strings.Compare(b.digits, other.digits)
}

// String returns the grouped DDD-DD-DDDDD form.
func (b BRN) String() string {
	return b.Format(true)
}

func (b BRN) GoString() string {
	return fmt.Sprintf("brn.BRN{%q}", b.Format(true))
}

// LogValue implements slog.LogValuer.
func (b BRN) LogValue() slog.Value {
	return slog.StringValue(b.Format(true))
}

func (b BRN) slice(from, to int) string {
	if b.IsZero() {
		return ""
	}
	return b.digits[from:to]
}
