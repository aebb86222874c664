package terminal

import (
	"os"

	"homefolder/internal/ports"

	"golang.org/x/term"
)

var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput inspects stdin using golang.org/x/term.
type TerminalInput struct{}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
