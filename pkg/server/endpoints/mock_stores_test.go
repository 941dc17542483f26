package endpoints

import (
	"github.com/stretchr/testify/mock"

	"phonebook-api/pkg/server/store"
)

// MockDirectoryStore implements store.DirectoryStore for testing using testify/mock
type MockDirectoryStore struct {
	mock.Mock
}

func NewMockDirectoryStore() *MockDirectoryStore {
	return &MockDirectoryStore{}
}

func (m *MockDirectoryStore) ListEntries() ([]store.Entry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Entry), args.Error(1)
}

func (m *MockDirectoryStore) InsertEntry(fullName, phoneNumber string) (*store.Entry, error) {
	args := m.Called(fullName, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Entry), args.Error(1)
}

func (m *MockDirectoryStore) DeleteByName(fullName string) (int64, error) {
	args := m.Called(fullName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDirectoryStore) DeleteByNumber(phoneNumber string) (int64, error) {
	args := m.Called(phoneNumber)
	return args.Get(0).(int64), args.Error(1)
}
