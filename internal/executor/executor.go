package executor

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"codelab/internal/executor/engine"
	"codelab/internal/executor/profile"
	"codelab/internal/executor/report"
	"codelab/internal/executor/runner"
	"codelab/internal/executor/stub"
	"codelab/internal/executor/workspace"
	"codelab/pkg/utils/logger"
)

const (
	defaultFunctionName = "solution"
	defaultMaxCodeBytes = 64 << 10
	syntaxCheckTimeout  = 5 * time.Second
)

// Config tunes the execution service.
type Config struct {
	// WorkRoot is where per-invocation workspaces are created.
	// Empty means the system temp directory.
	WorkRoot string
	// Timeout bounds each compile and each run subprocess independently.
	Timeout time.Duration
	// MaxCodeBytes rejects oversized submissions before execution.
	MaxCodeBytes int
}

func (c Config) withDefaults() Config {
	if c.WorkRoot == "" {
		c.WorkRoot = os.TempDir()
	}
	if c.Timeout <= 0 {
		c.Timeout = runner.DefaultTimeout
	}
	if c.MaxCodeBytes <= 0 {
		c.MaxCodeBytes = defaultMaxCodeBytes
	}
	return c
}

// DefaultService dispatches submissions to per-language runners. It is
// safe for concurrent use; every invocation gets its own workspace.
type DefaultService struct {
	cfg      Config
	eng      engine.Engine
	registry *runner.Registry
	status   StatusReporter
}

// NewService wires a service over the given engine. A nil status reporter
// disables progress reporting.
func NewService(cfg Config, eng engine.Engine, status StatusReporter) *DefaultService {
	if status == nil {
		status = NoopStatusReporter{}
	}
	return &DefaultService{
		cfg:      cfg.withDefaults(),
		eng:      eng,
		registry: runner.NewRegistry(eng),
		status:   status,
	}
}

// Execute runs one submission against its test cases. All failures fold
// into the report; the returned value is always structurally valid.
func (s *DefaultService) Execute(ctx context.Context, req Request) report.ExecutionReport {
	total := len(req.Tests)
	start := time.Now()

	if strings.TrimSpace(req.Code) == "" {
		return report.Fatal(total, "Please write your solution before running.", "No code provided")
	}
	if len(req.Code) > s.cfg.MaxCodeBytes {
		return report.Fatal(total, "Code exceeds the maximum allowed size.", "Code too large")
	}

	lang, err := profile.Parse(req.Language)
	if err != nil {
		return report.Fatal(total, err.Error(), "")
	}
	spec, _ := profile.Lookup(lang)

	fn := req.FunctionName
	if fn == "" {
		fn = defaultFunctionName
	}

	s.status.ReportStatus(ctx, StatusUpdate{Language: string(lang), Status: StatusPending, TotalTests: total})

	if stub.Detect(req.Code, fn, lang) {
		s.status.ReportStatus(ctx, StatusUpdate{Language: string(lang), Status: StatusFailed, TotalTests: total})
		return report.Fatal(total,
			"Please implement your solution. The function currently only contains a placeholder.",
			"Function not implemented")
	}

	run, ok := s.registry.Lookup(lang)
	if !ok {
		return report.Fatal(total, "Unsupported language: "+req.Language, "")
	}

	ws, err := workspace.New(s.cfg.WorkRoot)
	if err != nil {
		logger.Error(ctx, "workspace create failed", zap.Error(err))
		return report.Fatal(total, "Execution environment unavailable: "+err.Error(), "")
	}
	defer ws.Cleanup()

	if spec.CompileEnabled {
		s.status.ReportStatus(ctx, StatusUpdate{Language: string(lang), Status: StatusCompiling, TotalTests: total})
	}
	s.status.ReportStatus(ctx, StatusUpdate{Language: string(lang), Status: StatusRunning, TotalTests: total})

	rep := run.Run(ctx, runner.Request{
		Code:         req.Code,
		FunctionName: fn,
		Tests:        req.Tests,
		Workspace:    ws,
		Timeout:      s.cfg.Timeout,
	})

	final := StatusCompleted
	if rep.Error != "" {
		final = StatusFailed
	}
	s.status.ReportStatus(ctx, StatusUpdate{Language: string(lang), Status: final, TotalTests: total})

	logger.Info(ctx, "execution finished",
		zap.String("language", string(lang)),
		zap.Int("total", rep.TotalCount),
		zap.Int("passed", rep.PassedCount),
		zap.Bool("ok", rep.Passed),
		zap.String("error", rep.Error),
		zap.Duration("elapsed", time.Since(start)))
	return rep
}

// ValidateSyntax runs a cheap syntax-only pre-check. It never executes the
// submission and treats a missing toolchain as valid, since full execution
// will surface the environment error with more context.
func (s *DefaultService) ValidateSyntax(ctx context.Context, code, language string) ValidationResult {
	lang, err := profile.Parse(language)
	if err != nil {
		return ValidationResult{Valid: false, Error: err.Error()}
	}
	spec, _ := profile.Lookup(lang)

	if lang == profile.LangJava {
		if !strings.Contains(code, "class") {
			return ValidationResult{Valid: false, Error: "Java code must contain a class definition"}
		}
		return ValidationResult{Valid: true}
	}
	if spec.SyntaxCheckTpl == "" {
		return ValidationResult{Valid: true}
	}

	ws, err := workspace.New(s.cfg.WorkRoot)
	if err != nil {
		return ValidationResult{Valid: true}
	}
	defer ws.Cleanup()

	if _, err := ws.WriteFile(spec.SourceFile, code); err != nil {
		return ValidationResult{Valid: true}
	}
	argv, err := profile.BuildCommand(spec.SyntaxCheckTpl, ws.Root(), spec.SourceFile, spec.BinaryFile)
	if err != nil {
		return ValidationResult{Valid: true}
	}

	res, err := s.eng.Run(ctx, engine.Command{
		Argv:    argv,
		Dir:     ws.Root(),
		Timeout: syntaxCheckTimeout,
	})
	if err != nil || res.TimedOut {
		return ValidationResult{Valid: true}
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return ValidationResult{Valid: false, Error: msg}
	}
	return ValidationResult{Valid: true}
}
