package runner

import (
	"context"
	"encoding/json"
	"strings"

	"codelab/internal/executor/engine"
	"codelab/internal/executor/profile"
	"codelab/internal/executor/report"
	"codelab/internal/executor/value"
)

// jsHarness wraps the submission in a Node.js test loop. Placeholders are
// expanded with ReplaceAll rather than fmt so user code containing percent
// signs passes through untouched; the code placeholder is expanded last so
// placeholder-shaped text inside the submission stays literal.
const jsHarness = `@@USER_CODE@@

const __tests = @@TESTS_JSON@@;
const __results = [];

for (let i = 0; i < __tests.length; i++) {
    const test = __tests[i];
    const inputs = test.input ?? [];
    const expected = test.expected;

    try {
        let actual;
        if (Array.isArray(inputs)) {
            actual = @@FUNCTION_NAME@@(...inputs);
        } else {
            actual = @@FUNCTION_NAME@@(inputs);
        }

        let passed = false;
        if (Array.isArray(expected) && Array.isArray(actual)) {
            passed = JSON.stringify(actual) === JSON.stringify(expected) ||
                JSON.stringify([...actual].sort()) === JSON.stringify([...expected].sort());
        } else {
            passed = actual === expected || JSON.stringify(actual) === JSON.stringify(expected);
        }

        __results.push({
            test_number: i + 1,
            passed: passed,
            actual: actual === undefined ? null : actual,
            error: null
        });
    } catch (e) {
        __results.push({
            test_number: i + 1,
            passed: false,
            actual: null,
            error: e.message
        });
    }
}

console.log("@@MARKER@@" + JSON.stringify(__results));
`

// jsResultMarker prefixes the harness's final report line so user
// console.log output cannot be mistaken for it.
const jsResultMarker = "__CODELAB_RESULTS__"

// JavaScriptRunner executes submissions under Node.js.
type JavaScriptRunner struct {
	eng  engine.Engine
	spec profile.Spec
}

func NewJavaScriptRunner(eng engine.Engine) *JavaScriptRunner {
	spec, _ := profile.Lookup(profile.LangJavaScript)
	return &JavaScriptRunner{eng: eng, spec: spec}
}

func (r *JavaScriptRunner) Language() profile.Language { return profile.LangJavaScript }

func (r *JavaScriptRunner) Run(ctx context.Context, req Request) report.ExecutionReport {
	total := len(req.Tests)

	testsJSON, err := json.Marshal(req.Tests)
	if err != nil {
		return report.Fatal(total, "JavaScript execution error: "+err.Error(), "")
	}

	src := jsHarness
	src = strings.ReplaceAll(src, "@@TESTS_JSON@@", string(testsJSON))
	src = strings.ReplaceAll(src, "@@FUNCTION_NAME@@", req.FunctionName)
	src = strings.ReplaceAll(src, "@@MARKER@@", jsResultMarker)
	src = strings.ReplaceAll(src, "@@USER_CODE@@", req.Code)

	if _, err := req.Workspace.WriteFile(r.spec.SourceFile, src); err != nil {
		return report.Fatal(total, "JavaScript execution error: "+err.Error(), "")
	}

	argv, err := profile.BuildCommand(r.spec.RunCmdTpl, req.Workspace.Root(), r.spec.SourceFile, "")
	if err != nil {
		return report.Fatal(total, "JavaScript execution error: "+err.Error(), "")
	}

	res, err := r.eng.Run(ctx, engine.Command{
		Argv:    argv,
		Dir:     req.Workspace.Root(),
		Timeout: req.timeout(),
	})
	if err != nil {
		return fatalFromError(total, err)
	}
	if res.TimedOut {
		return report.Fatal(total, "Time Limit Exceeded", "")
	}
	if res.ExitCode != 0 {
		return report.Fatal(total, classifyJSError(res.Stderr), "")
	}

	line, userOutput, ok := splitMarkedLine(res.Stdout, jsResultMarker)
	if !ok {
		return report.Fatal(total, "No output from JavaScript execution", "")
	}

	var results []struct {
		TestNumber int         `json:"test_number"`
		Passed     bool        `json:"passed"`
		Actual     value.Value `json:"actual"`
		Error      string      `json:"error"`
	}
	if err := json.Unmarshal([]byte(line), &results); err != nil {
		return report.Fatal(total, "Error parsing JavaScript output: "+err.Error(), "")
	}

	b := report.NewBuilder(total)
	for _, tr := range results {
		entry := report.TestResult{
			TestNumber: tr.TestNumber,
			Passed:     tr.Passed,
			Actual:     tr.Actual,
			Error:      tr.Error,
		}
		if tr.TestNumber >= 1 && tr.TestNumber <= total {
			entry.Input = req.Tests[tr.TestNumber-1].Input
			entry.Expected = req.Tests[tr.TestNumber-1].Expected
		}
		b.Add(entry)
	}
	b.SetOutput(userOutput)
	return b.Finalize()
}

// classifyJSError maps Node.js stderr to a user-facing message, picking out
// the common error classes by name.
func classifyJSError(stderr string) string {
	msg := strings.TrimSpace(stderr)
	for _, class := range []struct {
		needle string
		label  string
	}{
		{"SyntaxError", "JavaScript Syntax Error"},
		{"ReferenceError", "JavaScript Reference Error"},
		{"TypeError", "JavaScript Type Error"},
	} {
		if strings.Contains(msg, class.needle) {
			idx := strings.LastIndex(msg, class.needle+":")
			detail := msg
			if idx >= 0 {
				detail = strings.TrimSpace(msg[idx+len(class.needle)+1:])
			}
			return class.label + ": " + truncate(detail, 200)
		}
	}
	return "JavaScript Error: " + truncate(msg, 200)
}

// splitMarkedLine finds the marker-prefixed report line in stdout and
// returns its payload plus the remaining user output.
func splitMarkedLine(stdout, marker string) (payload, rest string, ok bool) {
	var kept []string
	for _, line := range strings.Split(stdout, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			payload = strings.TrimPrefix(trimmed, marker)
			ok = true
			continue
		}
		kept = append(kept, line)
	}
	rest = strings.TrimRight(strings.Join(kept, "\n"), "\n")
	if rest != "" {
		rest += "\n"
	}
	return payload, rest, ok
}
