package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockFileStore provides a testify mock for core.FileStore and core.SecretFileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) EnsureFolder(applicationName, folderName string) (string, error) {
	args := m.Called(applicationName, folderName)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) FilePath(applicationName, folderName, fileName string) (string, error) {
	args := m.Called(applicationName, folderName, fileName)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) WriteFile(applicationName, folderName, fileName, content string) error {
	args := m.Called(applicationName, folderName, fileName, content)
	return args.Error(0)
}

func (m *MockFileStore) ReadFile(applicationName, folderName, fileName string) (string, error) {
	args := m.Called(applicationName, folderName, fileName)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) ReadFileJoined(applicationName, folderName, fileName string) (string, error) {
	args := m.Called(applicationName, folderName, fileName)
	return args.String(0), args.Error(1)
}
