package binder

import (
	"net/http"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Types implementing encoding.TextUnmarshaler, e.g. brn.BRN
//   - Slices of the above for multi-value parameters
//   - Pointers for optional fields
//
// Example:
//
//	type LookupRequest struct {
//		BRN      brn.BRN   `query:"brn"`
//		Related  []brn.BRN `query:"related"` // ?related=a&related=b or ?related=a,b
//		Verbose  *bool     `query:"verbose"` // Optional
//		Internal string    `query:"-"`       // Skipped
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
