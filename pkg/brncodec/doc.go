// Package brncodec plugs brn.BRN into document (de)serialization pipelines.
//
// The core conversion is two plain functions: Encode renders the canonical,
// ungrouped 10 digit form and Decode parses text with brn.Parse. Everything
// else in this package wires those two functions into a concrete library by
// explicit registration; nothing is discovered at runtime.
//
// # Pipelines
//
//   - BSON (go.mongodb.org/mongo-driver/v2): RegisterBSON / NewBSONRegistry
//   - PostgreSQL (github.com/jackc/pgx/v5): RegisterPgx
//
// encoding/json, gopkg.in/yaml.v3 and github.com/caarlos0/env/v11 need no
// registration: they call the encoding.TextMarshaler, encoding.TextUnmarshaler
// and json.Marshaler methods defined on brn.BRN, which delegate to the same
// parse and format path.
//
// # Error Handling
//
// Decode failures are reported as *DecodeError. It unwraps to the underlying
// *brn.ParseError, so both
//
//	errors.Is(err, brn.ErrMalformed)
//	errors.Is(err, brn.ErrChecksumMismatch)
//
// keep working after the error has travelled through the host library.
//
// The package holds no state and is safe for concurrent use.
package brncodec
