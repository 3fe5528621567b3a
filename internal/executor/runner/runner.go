// Package runner contains the per-language execution strategies. Each
// runner turns a submission plus its test cases into an ExecutionReport,
// generating whatever driver source its toolchain needs inside the
// submission's workspace.
package runner

import (
	"context"
	"time"

	"codelab/internal/executor/engine"
	"codelab/internal/executor/profile"
	"codelab/internal/executor/report"
	"codelab/internal/executor/value"
	"codelab/internal/executor/workspace"
)

// DefaultTimeout bounds each compile and run step when the request does
// not set one.
const DefaultTimeout = 10 * time.Second

// Request carries one submission into a runner. Workspace is owned by the
// caller; runners only write files into it.
type Request struct {
	Code         string
	FunctionName string
	Tests        []value.TestCase
	Workspace    *workspace.Workspace
	Timeout      time.Duration
}

func (r Request) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Runner executes a submission in one language. All failures, including
// toolchain and environment problems, fold into the report's Error field
// so callers always get a well-formed result.
type Runner interface {
	Language() profile.Language
	Run(ctx context.Context, req Request) report.ExecutionReport
}

// Registry maps language tags to their runners.
type Registry struct {
	runners map[profile.Language]Runner
}

// NewRegistry builds a registry covering every supported language, all
// backed by the same engine.
func NewRegistry(eng engine.Engine) *Registry {
	reg := &Registry{runners: make(map[profile.Language]Runner)}
	for _, r := range []Runner{
		NewPythonRunner(eng),
		NewJavaScriptRunner(eng),
		NewJavaRunner(eng),
		NewCRunner(eng),
		NewCPPRunner(eng),
	} {
		reg.runners[r.Language()] = r
	}
	return reg
}

// Lookup returns the runner for a language tag.
func (r *Registry) Lookup(lang profile.Language) (Runner, bool) {
	run, ok := r.runners[lang]
	return run, ok
}

// truncate clips s to at most n bytes, matching the error-message bounds
// applied to toolchain diagnostics.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// fatalFromError folds an environment-level engine error into a report.
func fatalFromError(total int, err error) report.ExecutionReport {
	return report.Fatal(total, err.Error(), "")
}
