package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"phonebook-api/pkg/model"
	"phonebook-api/pkg/server/store"
)

// Ensure DirectoryStore implements store.DirectoryStore
var _ store.DirectoryStore = (*DirectoryStore)(nil)

// DirectoryStore implements store.DirectoryStore using GORM
type DirectoryStore struct {
	db *gorm.DB
}

// NewDirectoryStore creates a new DirectoryStore
func NewDirectoryStore(db *gorm.DB) *DirectoryStore {
	return &DirectoryStore{db: db}
}

// ListEntries returns all entries in store order.
func (s *DirectoryStore) ListEntries() ([]store.Entry, error) {
	var rows []model.Entry
	if tx := s.db.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	entries := make([]store.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, store.Entry{
			ID:          row.ID,
			FullName:    row.FullName,
			PhoneNumber: row.PhoneNumber,
		})
	}
	return entries, nil
}

// InsertEntry creates an entry for the normalized phoneNumber. The unique
// index on phonebook.phone_number makes the insert the atomic
// check-and-insert: a concurrent duplicate loses at commit time and is
// reported as store.ErrDuplicateEntry, never as a second success.
func (s *DirectoryStore) InsertEntry(fullName, phoneNumber string) (*store.Entry, error) {
	row := model.Entry{
		FullName:    fullName,
		PhoneNumber: phoneNumber,
	}
	if tx := s.db.Create(&row); tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return nil, store.ErrDuplicateEntry
		}
		return nil, tx.Error
	}

	return &store.Entry{
		ID:          row.ID,
		FullName:    row.FullName,
		PhoneNumber: row.PhoneNumber,
	}, nil
}

// DeleteByName removes every entry named fullName.
func (s *DirectoryStore) DeleteByName(fullName string) (int64, error) {
	tx := s.db.Where("full_name = ?", fullName).Delete(&model.Entry{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, store.ErrEntryNotFound
	}
	return tx.RowsAffected, nil
}

// DeleteByNumber removes the entry with the given normalized number.
func (s *DirectoryStore) DeleteByNumber(phoneNumber string) (int64, error) {
	tx := s.db.Where("phone_number = ?", phoneNumber).Delete(&model.Entry{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, store.ErrEntryNotFound
	}
	return tx.RowsAffected, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
