package validation

import "strings"

// NormalizePhone strips every non-digit character from candidate, returning
// the digit-only canonical form used for storage and duplicate comparison.
//
// Normalization is applied after ValidPhone has accepted the raw string,
// never before: validation operates on the human-formatted input, the
// normalized form is the comparison key. The function is pure and
// idempotent, so two raw inputs that differ only in grouping or punctuation
// normalize to the same key.
func NormalizePhone(candidate string) string {
	var b strings.Builder
	b.Grow(len(candidate))
	for i := 0; i < len(candidate); i++ {
		if c := candidate[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
