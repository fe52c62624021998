package brn

// Format renders b as DDD-DD-DDDDD when grouped is true and as the plain
// 10 digits otherwise. The zero value renders as an empty string.
func (b BRN) Format(grouped bool) string {
	if !grouped {
		return b.digits
	}
	return b.FormatWith(Separator)
}

// FormatWith renders the 3-2-5 grouping using sep between groups.
func (b BRN) FormatWith(sep byte) string {
	if b.IsZero() {
		return ""
	}
	buf := make([]byte, 0, GroupedLength)
	buf = append(buf, b.Prefix()...)
	buf = append(buf, sep)
	buf = append(buf, b.ClassCode()...)
	buf = append(buf, sep)
	buf = append(buf, b.Suffix()...)
	return string(buf)
}

// Format is the function form of BRN.Format.
func Format(b BRN, grouped bool) string {
	return b.Format(grouped)
}
