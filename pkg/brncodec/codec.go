package brncodec

import (
	"github.com/dmitrymomot/kbrn/pkg/brn"
)

// Encode returns the wire form of v: the ungrouped 10 digits.
// The zero value is rejected with an *EncodeError wrapping brn.ErrMalformed.
func Encode(v brn.BRN) (string, error) {
	return encode("", v)
}

// Decode parses text into a BRN.
func Decode(text string) (brn.BRN, error) {
	return decode("", text)
}

// DecodeOptional decodes text, treating the empty string as absent.
func DecodeOptional(text string) (brn.NullBRN, error) {
	if text == "" {
		return brn.NullBRN{}, nil
	}
	v, err := decode("", text)
	if err != nil {
		return brn.NullBRN{}, err
	}
	return brn.NullBRN{BRN: v, Valid: true}, nil
}

func encode(pipeline string, v brn.BRN) (string, error) {
	text, err := v.MarshalText()
	if err != nil {
		return "", &EncodeError{Pipeline: pipeline, Err: err}
	}
	return string(text), nil
}

func decode(pipeline, text string) (brn.BRN, error) {
	v, err := brn.Parse(text)
	if err != nil {
		return brn.BRN{}, &DecodeError{Pipeline: pipeline, Input: text, Err: err}
	}
	return v, nil
}
