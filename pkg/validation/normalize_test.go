package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneStripsNonDigits(t *testing.T) {
	cases := map[string]string{
		"+1 (703) 555-1234": "17035551234",
		"703-555-1234":      "7035551234",
		"12 34 56 78":       "12345678",
		"1234.5678":         "12345678",
		"12345":             "12345",
		"":                  "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePhone(raw))
	}
}

func TestNormalizePhoneSeparatorInsensitive(t *testing.T) {
	// Accepted strings that differ only in separators and grouping
	// punctuation normalize to the same key.
	variants := []string{"703-555-1234", "703.555.1234", "703 555 1234", "(703) 555-1234"}
	want := NormalizePhone(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, want, NormalizePhone(v))
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	for _, raw := range []string{"+1 (703) 555-1234", "12 34 56 78", "7035551234"} {
		once := NormalizePhone(raw)
		assert.Equal(t, once, NormalizePhone(once))
	}
}
