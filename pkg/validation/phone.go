package validation

// Phone numbers are matched against a deliberately permissive grammar
// covering the common international notations:
//
//	prefix? sep* country? sep* area? sep? local
//
// where prefix is "+", "++", "00" or "011"; country is 1-3 digits not
// starting with zero; area is 2-4 digits not starting with zero, bare or
// parenthesized; sep is a space, hyphen or period; and local is one of
//
//	ddd sep dddd
//	ddddd
//	ddddd (space|period) ddddd
//	dd (space|period) dd (space|period) dd (space|period) dd
//	dddd (space|period) dddd
//
// This is a structural sieve, not a numbering-plan lookup: it must not
// reject legitimate international formats, and it tolerates some strings a
// carrier never would.
//
// The optional segments make the grammar ambiguous, so the matcher walks a
// set of candidate positions through each segment instead of committing to
// a single parse.

var phonePrefixes = []string{"++", "+", "011", "00"}

// ValidPhone reports whether candidate is an acceptable phone number.
func ValidPhone(candidate string) bool {
	if candidate == "" {
		return false
	}

	positions := map[int]struct{}{0: {}}
	for _, prefix := range phonePrefixes {
		if len(candidate) > len(prefix) && candidate[:len(prefix)] == prefix {
			positions[len(prefix)] = struct{}{}
		}
	}

	positions = skipSeparators(candidate, positions)
	positions = optionalCountryCode(candidate, positions)
	positions = skipSeparators(candidate, positions)
	positions = optionalAreaCode(candidate, positions)
	positions = optionalSeparator(candidate, positions)

	for pos := range positions {
		if matchLocalNumber(candidate[pos:]) {
			return true
		}
	}
	return false
}

func isPhoneSeparator(c byte) bool {
	return c == ' ' || c == '-' || c == '.'
}

// isGroupSeparator matches the separators allowed inside the grouped local
// forms (no hyphen there).
func isGroupSeparator(c byte) bool {
	return c == ' ' || c == '.'
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// skipSeparators advances each position over any run of separators,
// keeping every intermediate position reachable.
func skipSeparators(s string, positions map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(positions))
	for pos := range positions {
		out[pos] = struct{}{}
		for i := pos; i < len(s) && isPhoneSeparator(s[i]); i++ {
			out[i+1] = struct{}{}
		}
	}
	return out
}

// optionalCountryCode consumes zero to three digits, the first nonzero.
func optionalCountryCode(s string, positions map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(positions))
	for pos := range positions {
		out[pos] = struct{}{}
		if pos >= len(s) || s[pos] < '1' || s[pos] > '9' {
			continue
		}
		for n := 1; n <= 3 && pos+n <= len(s) && isDigits(s[pos:pos+n]); n++ {
			out[pos+n] = struct{}{}
		}
	}
	return out
}

// optionalAreaCode consumes a bare or parenthesized 2-4 digit area code,
// first digit nonzero.
func optionalAreaCode(s string, positions map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(positions))
	for pos := range positions {
		out[pos] = struct{}{}
		for n := 2; n <= 4; n++ {
			if pos+n <= len(s) && s[pos] >= '1' && s[pos] <= '9' && isDigits(s[pos:pos+n]) {
				out[pos+n] = struct{}{}
			}
			if pos+n+2 <= len(s) && s[pos] == '(' && s[pos+n+1] == ')' &&
				s[pos+1] >= '1' && s[pos+1] <= '9' && isDigits(s[pos+1:pos+n+1]) {
				out[pos+n+2] = struct{}{}
			}
		}
	}
	return out
}

func optionalSeparator(s string, positions map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(positions))
	for pos := range positions {
		out[pos] = struct{}{}
		if pos < len(s) && isPhoneSeparator(s[pos]) {
			out[pos+1] = struct{}{}
		}
	}
	return out
}

// matchLocalNumber matches the remainder of the string against the five
// local-number forms. The whole remainder must be consumed.
func matchLocalNumber(s string) bool {
	switch len(s) {
	case 5:
		// Bare five-digit extension.
		return isDigits(s)
	case 8:
		// ddd sep dddd.
		return isDigits(s[0:3]) && isPhoneSeparator(s[3]) && isDigits(s[4:8])
	case 9:
		// Danish dddd dddd.
		return isDigits(s[0:4]) && isGroupSeparator(s[4]) && isDigits(s[5:9])
	case 11:
		// ddddd ddddd.
		if isDigits(s[0:5]) && isGroupSeparator(s[5]) && isDigits(s[6:11]) {
			return true
		}
		// Danish dd dd dd dd.
		return isDigits(s[0:2]) && isGroupSeparator(s[2]) &&
			isDigits(s[3:5]) && isGroupSeparator(s[5]) &&
			isDigits(s[6:8]) && isGroupSeparator(s[8]) &&
			isDigits(s[9:11])
	default:
		return false
	}
}
