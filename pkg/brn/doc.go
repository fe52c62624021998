// Package brn parses, validates and formats Korean Business Registration
// Numbers (사업자등록번호, BRN).
//
// A BRN is a 10 digit identifier laid out as three groups, 3-2-5:
//
//	120-81-47521
//	│   │  │   └ check digit
//	│   │  └ serial (4 digits)
//	│   └ class code: business entity type
//	└ prefix: registering tax office
//
// The tenth digit is a weighted checksum over the first nine. Validation is
// purely structural; nothing here asserts that the business actually exists.
//
// # Usage
//
//	n, err := brn.Parse("120-81-47521")
//	if err != nil {
//	    switch {
//	    case brn.IsMalformed(err):
//	        // wrong shape: length, characters or separators
//	    case brn.IsChecksumMismatch(err):
//	        // right shape, wrong check digit
//	    }
//	}
//	n.Digits()          // "1208147521"
//	n.Format(true)      // "120-81-47521"
//	n.EntityType()      // brn.ForProfitCorporateHQ
//
// # Accepted input
//
// Parse trims surrounding whitespace and accepts exactly three shapes:
// "1208147521", "120-81-47521" and "120 81 47521". Separators must sit on the
// 3-2-5 group boundaries and both must be the same character.
//
// # Encoding
//
// BRN implements encoding.TextMarshaler, encoding.TextUnmarshaler,
// json.Marshaler, json.Unmarshaler, sql.Scanner and driver.Valuer. The wire
// form is always the ungrouped 10 digit string so that round trips are byte
// stable regardless of display preference. Use *BRN or NullBRN for optional
// values; a required BRN never decodes from null or an empty string.
//
// # Error Handling
//
// Every failure is a *ParseError carrying a Kind. ParseError unwraps to
// ErrMalformed or ErrChecksumMismatch so callers can use errors.Is:
//
//	if errors.Is(err, brn.ErrChecksumMismatch) { ... }
//
// All functions are pure and safe for concurrent use.
package brn
