package store

import "errors"

// ErrDuplicateEntry is returned when an insert targets a normalized phone
// number that already has an entry. Concurrent inserts racing on the same
// number see this error on every call but the winning one.
var ErrDuplicateEntry = errors.New("entry already exists for phone number")

// ErrEntryNotFound is returned when a delete matches no entries.
var ErrEntryNotFound = errors.New("entry not found")

// Entry is a directory entry as seen by callers of the store. PhoneNumber
// is always the normalized, digit-only form.
type Entry struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// DirectoryStore abstracts the directory record storage.
//
// InsertEntry is an atomic insert-if-absent: the existence check and the
// insert must not be separable by a concurrent caller targeting the same
// normalized number.
type DirectoryStore interface {
	// ListEntries returns all entries in store order.
	ListEntries() ([]Entry, error)

	// InsertEntry creates an entry, failing with ErrDuplicateEntry if one
	// already exists for the normalized phoneNumber.
	InsertEntry(fullName, phoneNumber string) (*Entry, error)

	// DeleteByName removes every entry whose name equals fullName exactly
	// and returns the number removed. Returns ErrEntryNotFound when none
	// matched.
	DeleteByName(fullName string) (int64, error)

	// DeleteByNumber removes the entry with the given normalized number
	// and returns the number removed (at most one, by the uniqueness
	// invariant). Returns ErrEntryNotFound when none matched.
	DeleteByNumber(phoneNumber string) (int64, error)
}
