// Package validation implements the structural acceptance tests for
// directory input: personal names, phone numbers, and the digit-only
// canonical form of a phone number.
//
// The matchers are written as explicit character scanners rather than
// regular expressions. The name grammar needs exclusion rules evaluated
// independently of the shape match, and the phone grammar needs
// backtracking over optional prefix/country/area segments; neither maps
// onto RE2 cleanly.
package validation
