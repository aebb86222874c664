package ports

// TerminalInput reports on the process's standard input.
type TerminalInput interface {
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
