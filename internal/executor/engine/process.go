package engine

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	appErr "codelab/pkg/errors"
)

const defaultMaxOutputBytes = 1 << 20

// ProcessEngine runs commands as local subprocesses via os/exec. The
// process is killed when the timeout expires.
type ProcessEngine struct {
	maxOutputBytes int64
}

// NewProcessEngine creates a process engine. maxOutputBytes bounds how much
// of stdout/stderr is kept; zero selects a 1 MiB default.
func NewProcessEngine(maxOutputBytes int64) *ProcessEngine {
	if maxOutputBytes <= 0 {
		maxOutputBytes = defaultMaxOutputBytes
	}
	return &ProcessEngine{maxOutputBytes: maxOutputBytes}
}

func (e *ProcessEngine) Run(ctx context.Context, cmd Command) (RunResult, error) {
	if len(cmd.Argv) == 0 {
		return RunResult{}, appErr.ValidationError("argv", "required")
	}

	runCtx := ctx
	cancel := func() {}
	if cmd.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, cmd.Timeout)
	}
	defer cancel()

	proc := exec.CommandContext(runCtx, cmd.Argv[0], cmd.Argv[1:]...)
	proc.Dir = cmd.Dir
	if cmd.Stdin != "" {
		proc.Stdin = strings.NewReader(cmd.Stdin)
	}

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	start := time.Now()
	err := proc.Run()
	elapsed := time.Since(start).Milliseconds()

	res := RunResult{
		ExitCode: 0,
		Stdout:   e.clip(stdout.String()),
		Stderr:   e.clip(stderr.String()),
		TimeMs:   elapsed,
	}

	if runCtx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.ExitCode = -1
		return res, nil
	}

	if err != nil {
		if isMissingBinary(err) {
			return res, appErr.Newf(appErr.EnvironmentError, "%s is not installed on this server", cmd.Argv[0])
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, appErr.Wrapf(err, appErr.ExecutorSystemError, "run %s failed", cmd.Argv[0])
	}

	return res, nil
}

func isMissingBinary(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// A {bin} path that was never produced surfaces as a path error.
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && errors.Is(pathErr.Err, fs.ErrNotExist)
}

func (e *ProcessEngine) clip(s string) string {
	if int64(len(s)) <= e.maxOutputBytes {
		return s
	}
	return s[:e.maxOutputBytes]
}
