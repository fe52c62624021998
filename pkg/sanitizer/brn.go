package sanitizer

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/dmitrymomot/kbrn/pkg/brn"
)

// dashReplacer maps the dash look-alikes produced by word processors and IMEs
// to ASCII hyphen-minus.
var dashReplacer = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
	"﹣", "-", // small hyphen-minus
	"－", "-", // fullwidth hyphen-minus
)

// FoldWidth maps fullwidth characters (digits, hyphen, ideographic space) to
// their ASCII counterparts. Korean IMEs frequently produce them.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// UnifyDashes replaces typographic dashes with '-'.
func UnifyDashes(s string) string {
	return dashReplacer.Replace(s)
}

// BRNInput prepares user input for brn.Parse. It never changes digits or
// their order, so a value that was invalid stays invalid.
var BRNInput = Compose(
	RemoveControlChars,
	FoldWidth,
	UnifyDashes,
	Trim,
)

// MaskBRN keeps the prefix and class code and hides the serial and check digit,
// e.g. "120-81-*****". Input that is not a valid BRN is masked entirely.
func MaskBRN(s string) string {
	b, err := brn.Parse(BRNInput(s))
	if err != nil {
		return strings.Repeat("*", len([]rune(strings.TrimSpace(s))))
	}
	return b.Prefix() + "-" + b.ClassCode() + "-" + strings.Repeat("*", brn.SuffixLength)
}
