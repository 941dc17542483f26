package directory

import (
	"errors"

	"phonebook-api/pkg/server/store"
	"phonebook-api/pkg/validation"
)

// ErrInvalidName is returned when a name fails structural validation.
var ErrInvalidName = errors.New("invalid name format")

// ErrInvalidPhone is returned when a phone number fails structural validation.
var ErrInvalidPhone = errors.New("invalid phone format")

// Service implements the directory operations over a DirectoryStore.
// Validation and normalization are pure and happen before any store call,
// so a rejected input never causes a partial write.
type Service struct {
	entries store.DirectoryStore
}

// NewService creates a new Service
func NewService(entries store.DirectoryStore) *Service {
	return &Service{entries: entries}
}

// List returns all directory entries.
func (s *Service) List() ([]store.Entry, error) {
	return s.entries.ListEntries()
}

// Add validates fullName and phoneNumber, normalizes the number, and
// inserts the entry. The insert is atomic with respect to concurrent Add
// calls on the same normalized number: at most one succeeds, the rest get
// store.ErrDuplicateEntry.
func (s *Service) Add(fullName, phoneNumber string) (*store.Entry, error) {
	if !validation.ValidName(fullName) {
		return nil, ErrInvalidName
	}
	if !validation.ValidPhone(phoneNumber) {
		return nil, ErrInvalidPhone
	}
	return s.entries.InsertEntry(fullName, validation.NormalizePhone(phoneNumber))
}

// DeleteByName removes every entry whose name equals fullName exactly.
// Duplicate names with different numbers are removed together.
func (s *Service) DeleteByName(fullName string) (int64, error) {
	return s.entries.DeleteByName(fullName)
}

// DeleteByNumber normalizes phoneNumber and removes the matching entry.
// The raw input is not re-validated; any formatting that normalizes to an
// existing key deletes that entry.
func (s *Service) DeleteByNumber(phoneNumber string) (int64, error) {
	return s.entries.DeleteByNumber(validation.NormalizePhone(phoneNumber))
}
