package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes
const (
	Reset     = "\033[0m"
	BrightRed = "\033[91m"
)

const (
	SymbolCross = "✗"
	ASCIICross  = "[-]"
)

var (
	// mu protects the variables below
	mu           sync.RWMutex
	globalFormat           = FormatDefault
	errOutput    io.Writer = os.Stderr
)

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// SetErrorOutput redirects error lines, normally os.Stderr.
// It returns the previous writer so tests can restore it.
func SetErrorOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := errOutput
	errOutput = w
	return prev
}

// PrintJSON writes data as indented JSON.
func PrintJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Error prints an error line with a red cross to the error output.
func Error(format string, args ...any) {
	mu.RLock()
	w := errOutput
	mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if useColor(w) {
		fmt.Fprintf(w, "%s%s%s %s\n", BrightRed, SymbolCross, Reset, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", crossSymbol(), msg)
}

// useColor reports whether w is a terminal that should receive ANSI codes.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// crossSymbol falls back to ASCII on legacy Windows consoles.
func crossSymbol() string {
	if runtime.GOOS == "windows" && os.Getenv("WT_SESSION") == "" && os.Getenv("TERM") == "" {
		return ASCIICross
	}
	return SymbolCross
}
