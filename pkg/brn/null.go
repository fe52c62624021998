package brn

import (
	"bytes"
	"database/sql/driver"
)

// NullBRN is a BRN that may be absent, in the manner of sql.NullString.
// Absence is only ever signalled by null (JSON, SQL) or empty text; a present
// value that fails to parse is an error, never absent.
type NullBRN struct {
	BRN   BRN
	Valid bool
}

// NullFrom wraps a BRN; the zero BRN becomes an invalid NullBRN.
func NullFrom(b BRN) NullBRN {
	return NullBRN{BRN: b, Valid: !b.IsZero()}
}

// Ptr returns a pointer to the BRN or nil when absent.
func (n NullBRN) Ptr() *BRN {
	if !n.Valid {
		return nil
	}
	b := n.BRN
	return &b
}

func (n NullBRN) MarshalText() ([]byte, error) {
	if !n.Valid {
		return []byte{}, nil
	}
	return n.BRN.MarshalText()
}

func (n *NullBRN) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*n = NullBRN{}
		return nil
	}
	var b BRN
	if err := b.UnmarshalText(text); err != nil {
		return err
	}
	*n = NullBRN{BRN: b, Valid: true}
	return nil
}

func (n NullBRN) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.BRN.MarshalJSON()
}

func (n *NullBRN) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullBRN{}
		return nil
	}
	var b BRN
	if err := b.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = NullBRN{BRN: b, Valid: true}
	return nil
}

func (n NullBRN) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.BRN.Value()
}

func (n *NullBRN) Scan(src any) error {
	if src == nil {
		*n = NullBRN{}
		return nil
	}
	var b BRN
	if err := b.Scan(src); err != nil {
		return err
	}
	*n = NullBRN{BRN: b, Valid: true}
	return nil
}
