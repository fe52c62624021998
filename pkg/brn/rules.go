package brn

const (
	// Length is the number of digits in a canonical BRN.
	Length = 10
	// BodyLength is the number of digits covered by the checksum.
	BodyLength = Length - 1

	// PrefixLength, ClassLength and SuffixLength describe the 3-2-5 display grouping.
	PrefixLength = 3
	ClassLength  = 2
	SuffixLength = 5

	// GroupedLength is the length of the DDD-DD-DDDDD form.
	GroupedLength = Length + 2

	// Separator is used when rendering the grouped form.
	Separator = '-'
)

// separators lists the characters Parse accepts between digit groups.
var separators = [...]byte{'-', ' '}

// checksumWeights are applied to digits 1-9 in order.
var checksumWeights = [BodyLength]int{1, 3, 7, 1, 3, 7, 1, 3, 5}

func isSeparator(c byte) bool {
	for _, s := range separators {
		if c == s {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
