package brn

import (
	"strings"
)

// Parse validates raw and returns the BRN it denotes.
//
// Surrounding whitespace is trimmed. The remaining text must be 10 digits,
// optionally split 3-2-5 by a single kind of separator ('-' or ' ').
// Shape problems yield a *ParseError of KindMalformed, a wrong check digit
// yields KindChecksumMismatch.
func Parse(raw string) (BRN, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return BRN{}, malformed(raw, "empty input")
	}

	digits, ok := stripSeparators(s)
	if !ok {
		return BRN{}, malformed(raw, "expected DDDDDDDDDD, DDD-DD-DDDDD or DDD DD DDDDD")
	}

	return fromCanonical(raw, digits)
}

// MustParse is like Parse but panics on error.
// Intended for package level variables and tests.
func MustParse(raw string) BRN {
	b, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return b
}

// FromDigits accepts only the canonical 10 digit form, without trimming.
func FromDigits(digits string) (BRN, error) {
	if len(digits) != Length || !allDigits(digits) {
		return BRN{}, malformed(digits, "expected exactly 10 digits")
	}
	return fromCanonical(digits, digits)
}

// ParseOptional parses raw when it is present. A nil raw yields an invalid
// NullBRN and no error; an empty string is still malformed.
func ParseOptional(raw *string) (NullBRN, error) {
	if raw == nil {
		return NullBRN{}, nil
	}
	b, err := Parse(*raw)
	if err != nil {
		return NullBRN{}, err
	}
	return NullBRN{BRN: b, Valid: true}, nil
}

// WithCheckDigit builds a BRN from its first nine digits by appending the
// computed check digit.
func WithCheckDigit(body string) (BRN, error) {
	c, err := CheckDigit(body)
	if err != nil {
		return BRN{}, err
	}
	return BRN{digits: body + string(c)}, nil
}

// Normalize returns the canonical digits of raw.
func Normalize(raw string) (string, error) {
	b, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return b.Digits(), nil
}

// Valid reports whether raw parses without error.
func Valid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// ValidFormat reports whether raw has an accepted shape, ignoring the checksum.
func ValidFormat(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false
	}
	_, ok := stripSeparators(s)
	return ok
}

func fromCanonical(input, digits string) (BRN, error) {
	want := checkDigit(digits[:BodyLength])
	if got := digits[BodyLength]; got != want {
		return BRN{}, checksumMismatch(input, want, got)
	}
	return BRN{digits: digits}, nil
}

// stripSeparators returns the 10 digits of s when s is plain or grouped 3-2-5.
func stripSeparators(s string) (string, bool) {
	switch len(s) {
	case Length:
		if allDigits(s) {
			return s, true
		}
	case GroupedLength:
		first, second := PrefixLength, PrefixLength+1+ClassLength
		sep := s[first]
		if !isSeparator(sep) || s[second] != sep {
			return "", false
		}
		prefix, class, suffix := s[:first], s[first+1:second], s[second+1:]
		if allDigits(prefix) && allDigits(class) && allDigits(suffix) {
			return prefix + class + suffix, true
		}
	}
	return "", false
}
