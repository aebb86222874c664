package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Writers used by the Print helpers. Tests replace them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	f, ok := Stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ANSI color codes
const (
	reset = "\033[0m"
	red   = "\033[31m"
	green = "\033[32m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
)

func colorize(code, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", code, text, reset)
}

func Success(text string) string {
	return colorize(green, text)
}

func Error(text string) string {
	return colorize(red, text)
}

// PrintSuccess prints a success message with + symbol
func PrintSuccess(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message with x symbol to stderr
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", Error(SymbolError), Error(message))
}
