package validator

import (
	"strings"

	"github.com/dmitrymomot/kbrn/pkg/brn"
)

// ValidBRN validates a Korean business registration number.
// Shape problems and checksum problems get different translation keys so the
// message can tell the user which one to fix.
func ValidBRN(field, value string) Rule {
	_, err := brn.Parse(value)

	key, message := "validation.brn", "must be a valid business registration number (e.g. 123-45-67890)"
	if brn.IsChecksumMismatch(err) {
		key, message = "validation.brn_checksum", "business registration number has an invalid check digit"
	}

	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// OptionalBRN is ValidBRN that lets blank values pass.
func OptionalBRN(field, value string) Rule {
	rule := ValidBRN(field, value)
	check := rule.Check
	rule.Check = func() bool {
		return strings.TrimSpace(value) == "" || check()
	}
	return rule
}

// BRNEntityType validates that a registration number belongs to one of the
// allowed business entity types. Unparseable values fail as well.
func BRNEntityType(field, value string, allowed ...brn.EntityType) Rule {
	names := make([]string, len(allowed))
	for i, t := range allowed {
		names[i] = t.String()
	}

	return Rule{
		Check: func() bool {
			b, err := brn.Parse(value)
			if err != nil {
				return false
			}
			got := b.EntityType()
			for _, t := range allowed {
				if got == t {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "business type must be one of: " + strings.Join(names, ", "),
			TranslationKey: "validation.brn_entity_type",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": names,
			},
		},
	}
}
