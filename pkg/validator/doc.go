// Package validator provides rule-based validation with translation-ready
// error messages, including rules for Korean business registration numbers.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and returns ValidationErrors
// listing every failure, or nil.
//
//	err := validator.Apply(
//	    validator.Required("name", req.Name),
//	    validator.MaxLenString("name", req.Name, 100),
//	    validator.ValidBRN("brn", req.BRN),
//	    validator.OptionalBRN("parent_brn", req.ParentBRN),
//	    validator.BRNEntityType("brn", req.BRN, brn.ForProfitCorporateHQ, brn.ForProfitCorporateBranch),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// # Registration numbers
//
// ValidBRN reports a shape problem under "validation.brn" and a wrong check
// digit under "validation.brn_checksum", so the message can say which part the
// user has to fix. OptionalBRN passes blank input. BRNEntityType restricts the
// class code, e.g. to corporations only; its "allowed" translation value lists
// the accepted entity type names.
//
// Input is parsed as given. Run it through sanitizer.BRNInput first to accept
// fullwidth digits and typographic dashes.
//
// # Translation
//
// Each ValidationError carries a TranslationKey and TranslationValues with at
// least the "field" name. Message is the English fallback.
//
// # Errors
//
// Every error returned by Apply matches ErrValidationFailed with errors.Is and
// can be unpacked with ExtractValidationErrors, also through wrapping.
package validator
