package executor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codelab/internal/executor"
	"codelab/internal/executor/engine"
	"codelab/internal/executor/value"
)

type fakeEngine struct {
	results []engine.RunResult
	calls   []engine.Command
}

func (f *fakeEngine) Run(_ context.Context, cmd engine.Command) (engine.RunResult, error) {
	f.calls = append(f.calls, cmd)
	if len(f.calls) <= len(f.results) {
		return f.results[len(f.calls)-1], nil
	}
	return engine.RunResult{}, nil
}

type recordingReporter struct {
	statuses []executor.Status
}

func (r *recordingReporter) ReportStatus(_ context.Context, u executor.StatusUpdate) {
	r.statuses = append(r.statuses, u.Status)
}

func newService(t *testing.T, eng engine.Engine, status executor.StatusReporter) *executor.DefaultService {
	t.Helper()
	return executor.NewService(executor.Config{WorkRoot: t.TempDir()}, eng, status)
}

func oneTest() []value.TestCase {
	return []value.TestCase{{Input: value.Int(1), Expected: value.Int(1)}}
}

func TestExecuteRejectsEmptyCode(t *testing.T) {
	eng := &fakeEngine{}
	svc := newService(t, eng, nil)

	rep := svc.Execute(context.Background(), executor.Request{
		Code: "   \n", Language: "python", Tests: oneTest(),
	})
	if rep.Error != "Please write your solution before running." {
		t.Errorf("error = %q", rep.Error)
	}
	if len(rep.TestResults) != 1 || rep.TestResults[0].Error != "No code provided" {
		t.Errorf("test_results = %+v", rep.TestResults)
	}
	if len(eng.calls) != 0 {
		t.Error("empty code must not reach the engine")
	}
}

func TestExecuteRejectsStubBeforeRunning(t *testing.T) {
	eng := &fakeEngine{}
	rec := &recordingReporter{}
	svc := newService(t, eng, rec)

	rep := svc.Execute(context.Background(), executor.Request{
		Code:         "def two_sum(nums, target):\n    pass\n",
		Language:     "python",
		FunctionName: "two_sum",
		Tests:        oneTest(),
	})
	if !strings.Contains(rep.Error, "placeholder") {
		t.Errorf("error = %q", rep.Error)
	}
	if rep.TestResults[0].Error != "Function not implemented" {
		t.Errorf("test_results = %+v", rep.TestResults)
	}
	if len(eng.calls) != 0 {
		t.Error("stub code must not reach the engine")
	}
	if len(rec.statuses) == 0 || rec.statuses[len(rec.statuses)-1] != executor.StatusFailed {
		t.Errorf("statuses = %v, want trailing failed", rec.statuses)
	}
}

func TestExecuteRejectsUnsupportedLanguage(t *testing.T) {
	svc := newService(t, &fakeEngine{}, nil)
	rep := svc.Execute(context.Background(), executor.Request{
		Code: "print(1)", Language: "ruby", Tests: oneTest(),
	})
	if !strings.Contains(rep.Error, "Unsupported language: ruby") {
		t.Errorf("error = %q", rep.Error)
	}
}

func TestExecuteRejectsOversizedCode(t *testing.T) {
	svc := executor.NewService(executor.Config{WorkRoot: t.TempDir(), MaxCodeBytes: 10}, &fakeEngine{}, nil)
	rep := svc.Execute(context.Background(), executor.Request{
		Code: strings.Repeat("x = 1\n", 10), Language: "python", Tests: oneTest(),
	})
	if rep.Error != "Code exceeds the maximum allowed size." {
		t.Errorf("error = %q", rep.Error)
	}
}

func TestExecuteReportsStatusTransitions(t *testing.T) {
	eng := &fakeEngine{results: []engine.RunResult{{
		Stdout: `{"results": [{"test_number": 1, "passed": true, "actual": 1, "error": null}], "output": ""}`,
	}}}
	rec := &recordingReporter{}
	svc := newService(t, eng, rec)

	rep := svc.Execute(context.Background(), executor.Request{
		Code:         "def solution(x):\n    return x\n",
		Language:     "python",
		FunctionName: "solution",
		Tests:        oneTest(),
	})
	if !rep.Passed {
		t.Fatalf("report = %+v", rep)
	}
	want := []executor.Status{executor.StatusPending, executor.StatusRunning, executor.StatusCompleted}
	if len(rec.statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", rec.statuses, want)
	}
	for i := range want {
		if rec.statuses[i] != want[i] {
			t.Errorf("status %d = %v, want %v", i, rec.statuses[i], want[i])
		}
	}
}

func TestValidateSyntaxJavaTextCheck(t *testing.T) {
	svc := newService(t, &fakeEngine{}, nil)

	res := svc.ValidateSyntax(context.Background(), "int x = 1;", "java")
	if res.Valid || res.Error != "Java code must contain a class definition" {
		t.Errorf("result = %+v", res)
	}
	res = svc.ValidateSyntax(context.Background(), "class Solution {}", "java")
	if !res.Valid {
		t.Errorf("result = %+v", res)
	}
}

func TestValidateSyntaxUsesChecker(t *testing.T) {
	eng := &fakeEngine{results: []engine.RunResult{{ExitCode: 1, Stderr: "SyntaxError: invalid syntax"}}}
	svc := newService(t, eng, nil)

	res := svc.ValidateSyntax(context.Background(), "def broken(:", "python")
	if res.Valid {
		t.Fatalf("result = %+v, want invalid", res)
	}
	if !strings.Contains(res.Error, "SyntaxError") {
		t.Errorf("error = %q", res.Error)
	}
	if len(eng.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(eng.calls))
	}
	argv := eng.calls[0].Argv
	if argv[0] != "python3" || argv[1] != "-m" || argv[2] != "py_compile" {
		t.Errorf("argv = %v", argv)
	}
}

func TestValidateSyntaxMissingToolchainIsValid(t *testing.T) {
	eng := &missingBinaryEngine{}
	svc := newService(t, eng, nil)
	res := svc.ValidateSyntax(context.Background(), "int main() { return 0; }", "c")
	if !res.Valid {
		t.Errorf("result = %+v, want valid when the compiler is absent", res)
	}
}

type missingBinaryEngine struct{}

func (missingBinaryEngine) Run(context.Context, engine.Command) (engine.RunResult, error) {
	return engine.RunResult{}, errors.New("gcc is not installed on this server")
}
