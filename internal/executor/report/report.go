// Package report defines the execution report returned for every run and
// the aggregation rules that keep it structurally valid.
package report

import (
	"codelab/internal/executor/value"
)

// CrashedTestError marks tests that never produced output because the
// process died mid-batch.
const CrashedTestError = "Runtime error or crash during this test"

// TestResult is the outcome of one test case. TestNumber is 1-based.
type TestResult struct {
	TestNumber int         `json:"test_number"`
	Passed     bool        `json:"passed"`
	Input      value.Value `json:"input"`
	Expected   value.Value `json:"expected"`
	Actual     value.Value `json:"actual"`
	Error      string      `json:"error,omitempty"`
}

// ExecutionReport is the unified result for one submission run.
// Invariants: TotalCount equals the supplied test-case count;
// len(TestResults) == TotalCount unless a batch-level fatal error occurred;
// Passed == (PassedCount == TotalCount) whenever Error is empty.
type ExecutionReport struct {
	Passed      bool         `json:"passed"`
	PassedCount int          `json:"passed_count"`
	TotalCount  int          `json:"total_count"`
	TestResults []TestResult `json:"test_results"`
	Error       string       `json:"error,omitempty"`
	Output      string       `json:"output,omitempty"`
}

// Builder accumulates per-test outcomes and finalizes them into a report
// that satisfies the invariants above.
type Builder struct {
	total   int
	results []TestResult
	output  string
}

// NewBuilder creates a builder for a batch of total test cases.
func NewBuilder(total int) *Builder {
	return &Builder{total: total, results: make([]TestResult, 0, total)}
}

// Add records one test outcome. Results beyond the batch size are dropped
// so PassedCount can never exceed TotalCount.
func (b *Builder) Add(tr TestResult) {
	if len(b.results) >= b.total {
		return
	}
	if tr.TestNumber == 0 {
		tr.TestNumber = len(b.results) + 1
	}
	b.results = append(b.results, tr)
}

// Collected reports how many test outcomes have been recorded so far.
func (b *Builder) Collected() int { return len(b.results) }

// SetOutput attaches captured program stdout to the report.
func (b *Builder) SetOutput(out string) { b.output = out }

// Fatal produces a batch-level failure report. No per-test results are
// kept; the caller already knows none are meaningful.
func (b *Builder) Fatal(msg string) ExecutionReport {
	return ExecutionReport{
		Passed:      false,
		PassedCount: 0,
		TotalCount:  b.total,
		TestResults: b.results,
		Error:       msg,
		Output:      b.output,
	}
}

// Finalize pads missing results as crashed, computes PassedCount from the
// recorded outcomes, and derives Passed from the final counts.
func (b *Builder) Finalize() ExecutionReport {
	for i := len(b.results); i < b.total; i++ {
		b.results = append(b.results, TestResult{
			TestNumber: i + 1,
			Passed:     false,
			Error:      CrashedTestError,
		})
	}

	passed := 0
	for _, tr := range b.results {
		if tr.Passed {
			passed++
		}
	}
	if passed > b.total {
		passed = b.total
	}

	return ExecutionReport{
		Passed:      passed == b.total,
		PassedCount: passed,
		TotalCount:  b.total,
		TestResults: b.results,
		Output:      b.output,
	}
}

// Fatal builds a batch-level failure report without a builder. detail is
// the single test_results entry the original system attaches for
// pre-execution rejections; pass an empty string to omit it.
func Fatal(total int, msg, detail string) ExecutionReport {
	rep := ExecutionReport{
		Passed:      false,
		PassedCount: 0,
		TotalCount:  total,
		Error:       msg,
	}
	if detail != "" {
		rep.TestResults = []TestResult{{TestNumber: 1, Passed: false, Error: detail}}
	}
	return rep
}
