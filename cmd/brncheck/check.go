package main

import (
	"strings"

	"github.com/dmitrymomot/kbrn/pkg/brn"
	"github.com/dmitrymomot/kbrn/pkg/sanitizer"
)

// result is one output line.
type result struct {
	Input      string `json:"input"`
	BRN        string `json:"brn,omitempty"`
	EntityType string `json:"entity_type,omitempty"`
	CheckDigit string `json:"check_digit,omitempty"`
	Error      string `json:"error,omitempty"`
	Kind       string `json:"kind,omitempty"`

	err error
	brn brn.BRN
}

func (r result) ok() bool { return r.err == nil }

func (r result) text() string {
	if !r.ok() {
		return r.Input + "\tERROR\t" + r.Kind
	}
	if r.CheckDigit != "" {
		return r.Input + "\t" + r.CheckDigit + "\t" + r.BRN
	}
	return r.Input + "\t" + r.BRN + "\t" + r.EntityType
}

// checker turns raw input into results.
type checker struct {
	grouped    bool
	checkDigit bool
}

func (c checker) check(raw string) result {
	r := result{Input: strings.TrimSpace(raw)}
	input := sanitizer.BRNInput(raw)

	var (
		b   brn.BRN
		err error
	)
	if c.checkDigit {
		// "120-81-4752" and "120 81 4752" are accepted as bodies
		b, err = brn.WithCheckDigit(sanitizer.RemoveChars(input, "- "))
	} else {
		b, err = brn.Parse(input)
	}
	if err != nil {
		r.err = err
		r.Error = err.Error()
		if kind, ok := brn.KindOf(err); ok {
			r.Kind = kind.String()
		}
		return r
	}

	r.brn = b
	r.BRN = b.Format(c.grouped)
	if c.checkDigit {
		r.CheckDigit = string(b.CheckDigit())
	} else {
		r.EntityType = b.EntityType().String()
	}
	return r
}
