// Package sanitizer cleans user input before it is parsed or logged.
//
// The string helpers (Trim, RemoveControlChars, RemoveChars) are plain
// func(string) string values, so they combine with the generic Apply and
// Compose helpers into reusable pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.FoldWidth,
//	    sanitizer.Trim,
//	)
//	out := clean(in)
//
// # Registration numbers
//
// Numbers typed on Korean keyboards or pasted from documents often arrive
// with fullwidth digits (１２０), a fullwidth hyphen or an en dash. BRNInput
// maps these to ASCII and trims the result, without touching the digits:
//
//	b, err := brn.Parse(sanitizer.BRNInput(raw))
//
// brn.Parse itself stays strict. Anything BRNInput does not recognise is left
// for Parse to reject.
//
// MaskBRN hides the serial and check digit of a number before it is written
// to logs or shown back to a user, e.g. "120-81-*****".
package sanitizer
