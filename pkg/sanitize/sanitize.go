// Package sanitize constrains free-form field input to decimal numerals.
package sanitize

import "strings"

// Numeric strips every character that cannot appear in a decimal numeral and
// keeps only the first decimal point, so "12.3.4.5" becomes "12.345". It is
// total and idempotent; the result may be empty or end in a bare point while
// a value is still being typed.
func Numeric(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			b.WriteRune(r)
			seenPoint = true
		}
	}
	return b.String()
}
