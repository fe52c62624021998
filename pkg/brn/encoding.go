package brn

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
)

var (
	_ encoding.TextMarshaler   = BRN{}
	_ encoding.TextUnmarshaler = (*BRN)(nil)
	_ json.Marshaler           = BRN{}
	_ json.Unmarshaler         = (*BRN)(nil)
	_ driver.Valuer            = BRN{}
	_ sql.Scanner              = (*BRN)(nil)
)

// MarshalText returns the canonical digits. The zero value cannot be encoded.
func (b BRN) MarshalText() ([]byte, error) {
	if b.IsZero() {
		return nil, malformed("", "zero value")
	}
	return []byte(b.digits), nil
}

// UnmarshalText parses text with Parse. b is left untouched on error.
func (b *BRN) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b BRN) MarshalJSON() ([]byte, error) {
	text, err := b.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a JSON string only. null is rejected as malformed;
// use *BRN or NullBRN for optional fields.
func (b *BRN) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || string(data) == "null" {
		return malformed(string(data), "expected a JSON string")
	}
	return b.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer.
func (b BRN) Value() (driver.Value, error) {
	text, err := b.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan implements sql.Scanner. NULL is rejected as malformed; scan nullable
// columns into NullBRN.
func (b *BRN) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return b.UnmarshalText([]byte(v))
	case []byte:
		return b.UnmarshalText(v)
	case nil:
		return malformed("", "NULL")
	default:
		return malformed(fmt.Sprint(v), fmt.Sprintf("cannot scan %T", src))
	}
}
