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

// pythonDriver is the fixed harness handed to the interpreter. The
// submission and its test cases arrive as JSON on stdin so user text never
// has to be spliced into driver source. It prints exactly one JSON line:
// either {"fatal": ...} or {"results": [...], "output": ...}.
const pythonDriver = `import io
import json
import sys
from contextlib import redirect_stdout, redirect_stderr


def main():
    payload = json.loads(sys.stdin.read())
    code = payload["code"]
    function_name = payload["function_name"]
    tests = payload["tests"]

    namespace = {}
    out = io.StringIO()
    err = io.StringIO()
    try:
        with redirect_stdout(out), redirect_stderr(err):
            exec(code, namespace)
    except SyntaxError as e:
        print(json.dumps({"fatal": "Syntax Error: %s at line %s" % (e.msg, e.lineno)}))
        return
    except Exception as e:
        print(json.dumps({"fatal": "Error: %s" % e, "output": err.getvalue()}))
        return

    func = namespace.get(function_name)
    if not callable(func):
        func = None
        for name, obj in namespace.items():
            if callable(obj) and not name.startswith("_"):
                func = obj
                break
    if func is None:
        print(json.dumps({"fatal": "No function found. Please define a function."}))
        return

    results = []
    for i, test in enumerate(tests):
        inputs = test.get("input", [])
        expected = test.get("expected")
        entry = {"test_number": i + 1, "passed": False, "actual": None, "error": None}
        try:
            with redirect_stdout(out), redirect_stderr(err):
                if isinstance(inputs, list):
                    actual = func(*inputs)
                elif isinstance(inputs, dict):
                    actual = func(**inputs)
                else:
                    actual = func(inputs)
            entry["actual"] = actual
            if isinstance(expected, list):
                entry["passed"] = (
                    actual == expected
                    or (isinstance(actual, list)
                        and sorted(map(str, actual)) == sorted(map(str, expected)))
                )
            else:
                entry["passed"] = actual == expected
        except Exception as e:
            entry["error"] = str(e)
        results.append(entry)

    try:
        body = json.dumps({"results": results, "output": out.getvalue()})
    except TypeError:
        for entry in results:
            if entry["actual"] is not None:
                entry["actual"] = str(entry["actual"])
        body = json.dumps({"results": results, "output": out.getvalue()})
    print(body)


main()
`

type pythonPayload struct {
	Code         string           `json:"code"`
	FunctionName string           `json:"function_name"`
	Tests        []value.TestCase `json:"tests"`
}

type pythonOutcome struct {
	Fatal   string `json:"fatal"`
	Results []struct {
		TestNumber int         `json:"test_number"`
		Passed     bool        `json:"passed"`
		Actual     value.Value `json:"actual"`
		Error      string      `json:"error"`
	} `json:"results"`
	Output string `json:"output"`
}

// PythonRunner executes submissions under a python3 interpreter.
type PythonRunner struct {
	eng  engine.Engine
	spec profile.Spec
}

func NewPythonRunner(eng engine.Engine) *PythonRunner {
	spec, _ := profile.Lookup(profile.LangPython)
	return &PythonRunner{eng: eng, spec: spec}
}

func (r *PythonRunner) Language() profile.Language { return profile.LangPython }

func (r *PythonRunner) Run(ctx context.Context, req Request) report.ExecutionReport {
	total := len(req.Tests)

	if _, err := req.Workspace.WriteFile(r.spec.SourceFile, pythonDriver); err != nil {
		return report.Fatal(total, "Python execution error: "+err.Error(), "")
	}

	payload, err := json.Marshal(pythonPayload{
		Code:         req.Code,
		FunctionName: req.FunctionName,
		Tests:        req.Tests,
	})
	if err != nil {
		return report.Fatal(total, "Python execution error: "+err.Error(), "")
	}

	argv, err := profile.BuildCommand(r.spec.RunCmdTpl, req.Workspace.Root(), r.spec.SourceFile, "")
	if err != nil {
		return report.Fatal(total, "Python execution error: "+err.Error(), "")
	}

	res, err := r.eng.Run(ctx, engine.Command{
		Argv:    argv,
		Dir:     req.Workspace.Root(),
		Stdin:   string(payload),
		Timeout: req.timeout(),
	})
	if err != nil {
		return fatalFromError(total, err)
	}
	if res.TimedOut {
		return report.Fatal(total, "Time Limit Exceeded", "")
	}

	outcome, ok := lastJSONObject(res.Stdout)
	if !ok {
		if res.ExitCode != 0 {
			return report.Fatal(total, "Error: "+truncate(strings.TrimSpace(res.Stderr), 300), "")
		}
		return report.Fatal(total, "Error parsing Python output", "")
	}

	var parsed pythonOutcome
	if err := json.Unmarshal([]byte(outcome), &parsed); err != nil {
		return report.Fatal(total, "Error parsing Python output: "+err.Error(), "")
	}
	if parsed.Fatal != "" {
		rep := report.Fatal(total, parsed.Fatal, "")
		rep.Output = parsed.Output
		return rep
	}

	b := report.NewBuilder(total)
	for _, tr := range parsed.Results {
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
	b.SetOutput(parsed.Output)
	return b.Finalize()
}

// lastJSONObject returns the last line of stdout that looks like a JSON
// object. User print statements that escaped capture precede the driver's
// final report line.
func lastJSONObject(stdout string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "{") {
			return line, true
		}
	}
	return "", false
}
