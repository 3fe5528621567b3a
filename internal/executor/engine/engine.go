// Package engine executes external toolchain processes under a wall-clock
// timeout. It is the only place user-submitted code leaves the Go process.
package engine

import (
	"context"
	"time"
)

// Command describes one external process invocation.
type Command struct {
	Argv    []string
	Dir     string
	Stdin   string
	Timeout time.Duration
}

// RunResult captures the raw outcome of one invocation. A timeout is
// reported through TimedOut, not through the error return.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimeMs   int64
	TimedOut bool
}

// Engine runs commands. Errors are reserved for environment-level failures
// (missing binary, unusable workspace); user-code failures surface through
// ExitCode and the captured streams.
type Engine interface {
	Run(ctx context.Context, cmd Command) (RunResult, error)
}
