package testutil

import (
	"homefolder/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.CommandRunner = (*MockCommandRunner)(nil)

type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) RunInteractive(name string, args ...string) error {
	callArgs := m.Called(name, args)
	return callArgs.Error(0)
}
