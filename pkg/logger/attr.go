package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/kbrn/pkg/brn"
	"github.com/dmitrymomot/kbrn/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorKind records the brn error kind under the key "error_kind".
// Errors that did not come from brn produce an empty Attr.
func ErrorKind(err error) slog.Attr {
	kind, ok := brn.KindOf(err)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("error_kind", kind.String())
}

// BRN records a registration number in grouped form under key.
// The zero value produces an empty Attr.
func BRN(key string, v brn.BRN) slog.Attr {
	if v.IsZero() {
		return slog.Attr{}
	}
	return slog.String(key, v.Format(true))
}

// BRNInput records raw user input under the key "brn_input" with the serial
// and check digit masked. Blank input produces an empty Attr.
func BRNInput(raw string) slog.Attr {
	masked := sanitizer.MaskBRN(raw)
	if masked == "" {
		return slog.Attr{}
	}
	return slog.String("brn_input", masked)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
