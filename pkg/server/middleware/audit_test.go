package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook-api/pkg/audit"
)

type recordingSaver struct {
	records []audit.Record
	err     error
}

func (s *recordingSaver) Save(record audit.Record) error {
	s.records = append(s.records, record)
	return s.err
}

func TestAuditorRecordsOneRecordPerRequest(t *testing.T) {
	saver := &recordingSaver{}
	auditor := NewAuditor(saver)

	handler := auditor.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := time.Now()
	req := httptest.NewRequest("PUT", "/PhoneBook/deleteByName?full_name=John", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, saver.records, 1)
	record := saver.records[0]
	assert.Equal(t, "PUT /PhoneBook/deleteByName", record.Action)
	assert.Equal(t, "Status 404", record.Details)
	assert.False(t, record.Timestamp.Before(before))
}

func TestAuditorDefaultsToStatus200(t *testing.T) {
	saver := &recordingSaver{}
	auditor := NewAuditor(saver)

	// Handler writes a body without an explicit WriteHeader call.
	handler := auditor.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	req := httptest.NewRequest("GET", "/PhoneBook/list", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, saver.records, 1)
	assert.Equal(t, "Status 200", saver.records[0].Details)
}

func TestAuditorSaveErrorDoesNotAffectResponse(t *testing.T) {
	saver := &recordingSaver{err: errors.New("database is down")}
	auditor := NewAuditor(saver)

	handler := auditor.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))

	req := httptest.NewRequest("GET", "/PhoneBook/list", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"message": "ok"}`, rec.Body.String())
	assert.Len(t, saver.records, 1)
}

func TestAuditorActionExcludesQueryString(t *testing.T) {
	saver := &recordingSaver{}
	auditor := NewAuditor(saver)

	handler := auditor.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("PUT", "/PhoneBook/deleteByNumber?phone_number=7035551234", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, saver.records, 1)
	assert.Equal(t, "PUT /PhoneBook/deleteByNumber", saver.records[0].Action)
}
