// Package executor defines the public call interface for running submitted
// code against test cases and wires the per-language runners together.
package executor

import (
	"context"

	"codelab/internal/executor/report"
	"codelab/internal/executor/value"
)

// Service is the high-level execution entrypoint used by the API layer.
type Service interface {
	Execute(ctx context.Context, req Request) report.ExecutionReport
	ValidateSyntax(ctx context.Context, code, language string) ValidationResult
}

// Request contains all data needed to execute one submission. Language is
// the raw tag from the outside world and is validated during dispatch.
type Request struct {
	Code         string           `json:"code"`
	Language     string           `json:"language"`
	FunctionName string           `json:"function_name"`
	Tests        []value.TestCase `json:"test_cases"`
}

// ValidationResult is the outcome of a syntax-only pre-check.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
