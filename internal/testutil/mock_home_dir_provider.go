package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockHomeDirProvider struct {
	mock.Mock
}

func (m *MockHomeDirProvider) HomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
