package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name length bounds, counted in runes.
const (
	minNameLength = 1
	maxNameLength = 50
)

// maxWordLength bounds a single name word (leading capital included).
const maxWordLength = 40

// ValidName reports whether candidate is an acceptable personal name.
//
// A name is accepted only if it passes every exclusion rule (no digits, no
// doubled apostrophes, no double hyphens, no tag-like substrings, no
// "select ... from" pattern, no semicolons, no standalone word "script")
// and matches one of three shapes:
//
//   - a sequence of one to three capitalized words separated by a space or
//     hyphen ("John Smith", "Mary-Jane Watson Parker")
//   - surname-first: "Last, First" with an optional middle initial or
//     middle name ("Smith, John A.")
//   - a single capitalized word ("Cher")
//
// The exclusion rules apply regardless of which shape matches; a string
// that satisfies a shape but trips an exclusion is rejected.
func ValidName(candidate string) bool {
	runes := []rune(candidate)
	if len(runes) < minNameLength || len(runes) > maxNameLength {
		return false
	}
	if nameExcluded(candidate, runes) {
		return false
	}
	return matchGivenNames(runes) || matchSurnameFirst(runes)
}

func nameExcluded(candidate string, runes []rune) bool {
	for i, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			return true
		case r == ';':
			return true
		case isApostrophe(r):
			if i > 0 && isApostrophe(runes[i-1]) {
				return true
			}
		}
	}
	if strings.Contains(candidate, "--") {
		return true
	}
	// Tag-like substring: a '<' with a '>' anywhere after it.
	if open := strings.IndexByte(candidate, '<'); open >= 0 {
		if strings.IndexByte(candidate[open+1:], '>') >= 0 {
			return true
		}
	}
	lower := strings.ToLower(candidate)
	if i := indexWord(lower, "select"); i >= 0 {
		if indexWord(lower[i+len("select"):], "from") >= 0 {
			return true
		}
	}
	return indexWord(candidate, "script") >= 0
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// indexWord returns the index of the first occurrence of word in s that is
// bounded on both sides by non-word characters (or the string edge).
func indexWord(s, word string) int {
	for offset := 0; ; {
		i := strings.Index(s[offset:], word)
		if i < 0 {
			return -1
		}
		i += offset
		before, _ := utf8.DecodeLastRuneInString(s[:i])
		after, _ := utf8.DecodeRuneInString(s[i+len(word):])
		if !isWordChar(before) && !isWordChar(after) {
			return i
		}
		offset = i + 1
	}
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanNameWord consumes one capitalized word starting at i: an uppercase
// ASCII letter followed by one or more letters or apostrophes, at most
// maxWordLength runes in total. It returns the index past the word.
func scanNameWord(runes []rune, i int) (int, bool) {
	if i >= len(runes) || runes[i] < 'A' || runes[i] > 'Z' {
		return i, false
	}
	j := i + 1
	for j < len(runes) && isNameWordRune(runes[j]) {
		j++
	}
	if n := j - i; n < 2 || n > maxWordLength {
		return i, false
	}
	return j, true
}

func isNameWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isApostrophe(r)
}

// matchGivenNames matches one capitalized word optionally followed by up to
// two more, each separated by a single space or hyphen. The single-word
// shape is the zero-repetition case.
func matchGivenNames(runes []rune) bool {
	i, ok := scanNameWord(runes, 0)
	if !ok {
		return false
	}
	for extra := 0; extra < 2; extra++ {
		if i == len(runes) {
			return true
		}
		if runes[i] != ' ' && runes[i] != '-' {
			return false
		}
		i, ok = scanNameWord(runes, i+1)
		if !ok {
			return false
		}
	}
	return i == len(runes)
}

// matchSurnameFirst matches "Last, First" with an optional space after the
// comma and an optional trailing middle initial (with or without a period)
// or full middle name.
func matchSurnameFirst(runes []rune) bool {
	i, ok := scanNameWord(runes, 0)
	if !ok || i >= len(runes) || runes[i] != ',' {
		return false
	}
	i++
	if i < len(runes) && runes[i] == ' ' {
		i++
	}
	i, ok = scanNameWord(runes, i)
	if !ok {
		return false
	}
	if i == len(runes) {
		return true
	}
	if runes[i] != ' ' {
		return false
	}
	i++
	if j, ok := scanNameWord(runes, i); ok && j == len(runes) {
		return true
	}
	// Middle initial: a single uppercase letter, optionally followed by a
	// period, ending the name.
	if i < len(runes) && runes[i] >= 'A' && runes[i] <= 'Z' {
		if i+1 == len(runes) {
			return true
		}
		if i+2 == len(runes) && runes[i+1] == '.' {
			return true
		}
	}
	return false
}
