package tangle

import (
	"io"
	"log"
	"os"

	"github.com/go-tangle/tangle/fsio"
)

// WarningMode controls how unresolved-reference and unused-block
// conditions are reported.
type WarningMode int

const (
	// WarningsNone still logs unresolved-reference warnings but never
	// fails the run; the unused-block check is skipped.
	WarningsNone WarningMode = iota
	// WarningsSoft logs warnings and continues; an unresolved reference
	// contributes no bytes to its enclosing output.
	WarningsSoft
	// WarningsError escalates every warning to a fatal, non-zero-exit
	// condition.
	WarningsError
)

// Config threads the run-wide settings explicitly through the parser and
// writer, rather than as package-level globals, so independent runs never
// interfere with each other.
type Config struct {
	// Debug enables "#line <N> \"<file>\"" directives before each Text
	// segment's bytes.
	Debug bool

	// Warnings selects the policy for UnresolvedReference and UnusedBlock
	// conditions.
	Warnings WarningMode

	// TangleCode controls whether output files are written at all; when
	// false, a run can still produce a code map.
	TangleCode bool

	// Logger receives warning text, one call per warning. Defaults to a
	// logger writing to os.Stderr with no prefix.
	Logger *log.Logger

	// Fs is the filesystem seam used to create output files. Defaults to
	// fsio.AtomicOS{}.
	Fs fsio.Opener
}

// NewConfig returns a Config with sensible defaults: WarningsNone,
// tangling on, debug markers off.
func NewConfig() *Config {
	return &Config{
		Warnings:   WarningsNone,
		TangleCode: true,
		Logger:     log.New(os.Stderr, "", 0),
		Fs:         fsio.AtomicOS{},
	}
}

// Silent returns a copy of c whose Logger discards everything.
func (c *Config) Silent() *Config {
	cp := *c
	cp.Logger = log.New(io.Discard, "", 0)
	return &cp
}

func (c *Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
