// Package binder binds HTTP request data to Go structs.
//
// Four binders are available, each returning a func(r *http.Request, v any) error:
//
//   - Query(): URL query parameters, `query:"name"` tags
//   - Form(): urlencoded and multipart form values, `form:"name"` tags
//   - Path(extractor): router path parameters, `path:"name"` tags
//   - JSON(): request body, standard `json` tags, strict mode
//
// Besides basic kinds, pointers and slices, any field whose type implements
// encoding.TextUnmarshaler is bound through UnmarshalText. That is how
// business registration numbers are bound:
//
//	type InvoiceRequest struct {
//	    Seller brn.BRN    `query:"seller"`
//	    Buyer  *brn.BRN   `query:"buyer"`   // optional
//	    Extra  []brn.BRN  `query:"extra"`   // ?extra=a&extra=b or ?extra=a,b
//	}
//
//	var req InvoiceRequest
//	if err := binder.Query()(r, &req); err != nil {
//	    switch {
//	    case errors.Is(err, brn.ErrChecksumMismatch):
//	        // wrong check digit
//	    case errors.Is(err, binder.ErrInvalidQuery):
//	        // anything else
//	    }
//	}
//
// # Error Handling
//
// Binding errors wrap both the binder sentinel (ErrInvalidQuery,
// ErrInvalidForm, ErrInvalidPath, ErrInvalidJSON) and the field error, so
// errors.Is works against either.
package binder
