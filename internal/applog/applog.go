// Package applog is the one place this repo imports a logging library.
// cpu, memory, stack, status, addressing, rom, and disasm stay free of
// it entirely: they report failure through return values (or a panic
// for a programmer-bug invariant), never by writing to a log. The CLI
// is the only importer; the inspector shows its state on screen instead
// of logging.
package applog

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// Debugf logs a debug-level message, visible only when the CLI's -trace
// flag has raised the logger's level.
func Debugf(format string, args ...any) {
	logger.Debug(fmt.Sprintf(format, args...))
}

// Errorf logs a non-fatal error.
func Errorf(format string, args ...any) {
	logger.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs and then exits the process with status 1. Reserved for
// startup failures the CLI cannot recover from in any other way; normal
// error paths return an error and let the CLI choose the exit code.
func Fatalf(format string, args ...any) {
	logger.Fatal(fmt.Sprintf(format, args...))
}

// SetTrace raises the logger to debug level, enabling Debugf output.
func SetTrace(on bool) {
	if on {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

// Invariant panics with a formatted message. Used for internal invariant
// violations (an addressing mode reaching code that cannot handle it) —
// conditions a caller cannot trigger by feeding the emulator a bad ROM,
// only by a bug in this repo itself.
func Invariant(format string, args ...any) {
	panic(fmt.Sprintf("mos6502: invariant violation: "+format, args...))
}
