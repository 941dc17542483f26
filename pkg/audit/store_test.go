package audit

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	start := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	record := Record{
		Timestamp: start,
		Action:    "POST /PhoneBook/add",
		Details:   "Status 200",
	}

	mock.ExpectExec(`INSERT INTO audit_log`).
		WithArgs(
			"2025-03-14T15:09:26Z",
			"POST /PhoneBook/add",
			"Status 200",
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(record)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveTruncatesOversizeFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	longPath := "GET /" + strings.Repeat("x", 100)
	record := Record{
		Timestamp: time.Now(),
		Action:    longPath,
		Details:   strings.Repeat("y", 150),
	}

	mock.ExpectExec(`INSERT INTO audit_log`).
		WithArgs(
			sqlmock.AnyArg(),
			longPath[:maxActionLength],
			strings.Repeat("y", maxDetailsLength),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(record)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveConvertsTimestampToUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	loc := time.FixedZone("UTC+2", 2*60*60)
	record := Record{
		Timestamp: time.Date(2025, 3, 14, 17, 9, 26, 0, loc),
		Action:    "GET /PhoneBook/list",
		Details:   "Status 200",
	}

	mock.ExpectExec(`INSERT INTO audit_log`).
		WithArgs("2025-03-14T15:09:26Z", "GET /PhoneBook/list", "Status 200").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(record); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreNilDB(t *testing.T) {
	store := &Store{db: nil}

	record := Record{Timestamp: time.Now(), Action: "GET /", Details: "Status 200"}

	// Should not error when db is nil
	if err := store.Save(record); err != nil {
		t.Errorf("Save() with nil db should not error, got: %v", err)
	}
}

func TestStoreClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	store := NewStoreWithDB(db)

	mock.ExpectClose()

	if err := store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreCloseNilDB(t *testing.T) {
	store := &Store{db: nil}

	if err := store.Close(); err != nil {
		t.Errorf("Close() with nil db should not error, got: %v", err)
	}
}
