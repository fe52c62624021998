package brn

// CheckDigit computes the check digit for the first nine digits of a BRN.
// It returns ErrMalformed (as a *ParseError) when body is not exactly nine
// ASCII digits.
func CheckDigit(body string) (byte, error) {
	if len(body) != BodyLength || !allDigits(body) {
		return 0, malformed(body, "body must be exactly 9 digits")
	}
	return checkDigit(body), nil
}

// ValidChecksum reports whether digits is a 10 digit string whose last digit
// matches the checksum of the first nine.
func ValidChecksum(digits string) bool {
	if len(digits) != Length || !allDigits(digits) {
		return false
	}
	return digits[BodyLength] == checkDigit(digits[:BodyLength])
}

// checkDigit expects a validated 9 digit body.
// The weighted product of the ninth digit is counted in full and then its
// tens part is added once more.
func checkDigit(body string) byte {
	sum := 0
	for i, w := range checksumWeights {
		sum += int(body[i]-'0') * w
	}
	sum += int(body[BodyLength-1]-'0') * checksumWeights[BodyLength-1] / 10

	return byte('0' + (10-sum%10)%10)
}
