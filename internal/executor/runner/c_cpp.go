package runner

import (
	"context"
	"fmt"
	"strings"

	"codelab/internal/executor/engine"
	"codelab/internal/executor/marshal"
	"codelab/internal/executor/profile"
	"codelab/internal/executor/report"
	"codelab/internal/executor/value"
)

const cIncludes = `#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <math.h>
#include <stdbool.h>
`

const cppIncludes = `#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <math.h>
#include <iostream>
#include <vector>
#include <string>
#include <algorithm>
#include <map>
#include <set>
#include <unordered_map>
#include <unordered_set>
#include <stack>
#include <queue>
#include <climits>
using namespace std;
`

// CFamilyRunner compiles a single source file combining the submission
// with a generated main that runs every test and prints RESULT lines. It
// covers both C and C++, which differ only in headers, literal forms and
// how results are stringified.
type CFamilyRunner struct {
	eng  engine.Engine
	spec profile.Spec
	cpp  bool
}

func NewCRunner(eng engine.Engine) *CFamilyRunner {
	spec, _ := profile.Lookup(profile.LangC)
	return &CFamilyRunner{eng: eng, spec: spec}
}

func NewCPPRunner(eng engine.Engine) *CFamilyRunner {
	spec, _ := profile.Lookup(profile.LangCPP)
	return &CFamilyRunner{eng: eng, spec: spec, cpp: true}
}

func (r *CFamilyRunner) Language() profile.Language { return r.spec.ID }

func (r *CFamilyRunner) errLabel() string {
	if r.cpp {
		return "C++"
	}
	return "C"
}

func (r *CFamilyRunner) Run(ctx context.Context, req Request) report.ExecutionReport {
	total := len(req.Tests)

	if _, err := req.Workspace.WriteFile(r.spec.SourceFile, r.buildSource(req)); err != nil {
		return report.Fatal(total, r.errLabel()+" execution error: "+err.Error(), "")
	}

	dir := req.Workspace.Root()
	argv, err := profile.BuildCommand(r.spec.CompileCmdTpl, dir, r.spec.SourceFile, r.spec.BinaryFile)
	if err != nil {
		return report.Fatal(total, r.errLabel()+" execution error: "+err.Error(), "")
	}
	res, err := r.eng.Run(ctx, engine.Command{Argv: argv, Dir: dir, Timeout: req.timeout()})
	if err != nil {
		return fatalFromError(total, err)
	}
	if res.TimedOut {
		return report.Fatal(total, "Time Limit Exceeded", "")
	}
	if res.ExitCode != 0 {
		return report.Fatal(total, "Compilation Error: "+truncate(strings.TrimSpace(res.Stderr), 400), "")
	}

	argv, err = profile.BuildCommand(r.spec.RunCmdTpl, dir, r.spec.SourceFile, r.spec.BinaryFile)
	if err != nil {
		return report.Fatal(total, r.errLabel()+" execution error: "+err.Error(), "")
	}
	res, err = r.eng.Run(ctx, engine.Command{Argv: argv, Dir: dir, Timeout: req.timeout()})
	if err != nil {
		return fatalFromError(total, err)
	}
	if res.TimedOut {
		return report.Fatal(total, "Time Limit Exceeded", "")
	}
	if res.ExitCode != 0 && strings.TrimSpace(res.Stdout) == "" {
		return report.Fatal(total, "Runtime Error: "+truncate(strings.TrimSpace(res.Stderr), 300), "")
	}

	return resultLinesReport(req, res.Stdout)
}

func (r *CFamilyRunner) buildSource(req Request) string {
	var sb strings.Builder
	if r.cpp {
		sb.WriteString(cppIncludes)
	} else {
		sb.WriteString(cIncludes)
	}
	sb.WriteString("\n")
	sb.WriteString(req.Code)
	sb.WriteString("\n\nint main() {\n")
	for i, tc := range req.Tests {
		sb.WriteString(r.buildTestBlock(req.FunctionName, tc, i))
	}
	sb.WriteString("    return 0;\n}\n")
	return sb.String()
}

func (r *CFamilyRunner) buildTestBlock(fn string, tc value.TestCase, idx int) string {
	call := marshal.CCallArgs(tc.Input, idx, r.cpp)

	var sb strings.Builder
	sb.WriteString("    {\n")
	for _, line := range call.Setup {
		sb.WriteString("        " + line + "\n")
	}
	sb.WriteString("        char actual_buf[512];\n")

	invocation := fmt.Sprintf("%s(%s)", fn, strings.Join(call.Args, ", "))
	sb.WriteString(r.buildResultCapture(invocation, tc.Expected, idx))

	sb.WriteString(fmt.Sprintf("        const char* expected_str = %s;\n",
		marshal.QuotedString(value.Canonical(tc.Expected))))
	sb.WriteString("        int passed = (strcmp(actual_buf, expected_str) == 0);\n")
	sb.WriteString(fmt.Sprintf(
		"        printf(\"RESULT:%d:%%s:%%s:%%s\\n\", passed ? \"PASS\" : \"FAIL\", actual_buf, expected_str);\n",
		idx+1))
	sb.WriteString("    }\n")
	return sb.String()
}

// buildResultCapture declares the result variable for one call and writes
// its string form into actual_buf. The expected value's kind picks the
// result type, since C has no runtime type information to inspect.
func (r *CFamilyRunner) buildResultCapture(invocation string, expected value.Value, idx int) string {
	name := fmt.Sprintf("res_%d", idx)
	if r.cpp {
		decl := fmt.Sprintf("        auto %s = %s;\n", name, invocation)
		switch expected.Kind() {
		case value.KindBool:
			return decl + fmt.Sprintf("        snprintf(actual_buf, 512, \"%%s\", %s ? \"true\" : \"false\");\n", name)
		case value.KindFloat:
			return decl + fmt.Sprintf("        snprintf(actual_buf, 512, \"%%g\", (double)%s);\n", name)
		case value.KindString:
			return decl + fmt.Sprintf("        snprintf(actual_buf, 512, \"%%s\", %s.c_str());\n", name)
		case value.KindList:
			return decl + fmt.Sprintf(`        {
            std::string s = "[";
            for (size_t k = 0; k < %s.size(); k++) {
                if (k > 0) s += ", ";
                s += std::to_string(%s[k]);
            }
            s += "]";
            snprintf(actual_buf, 512, "%%s", s.c_str());
        }
`, name, name)
		default:
			return decl + fmt.Sprintf("        snprintf(actual_buf, 512, \"%%d\", (int)%s);\n", name)
		}
	}

	switch expected.Kind() {
	case value.KindBool:
		return fmt.Sprintf("        int %s = %s;\n        snprintf(actual_buf, 512, \"%%s\", %s ? \"true\" : \"false\");\n",
			name, invocation, name)
	case value.KindFloat:
		return fmt.Sprintf("        double %s = %s;\n        snprintf(actual_buf, 512, \"%%g\", %s);\n",
			name, invocation, name)
	case value.KindString:
		return fmt.Sprintf("        char* %s = %s;\n        snprintf(actual_buf, 512, \"%%s\", %s);\n",
			name, invocation, name)
	case value.KindList:
		return fmt.Sprintf(`        int* %s = %s;
        {
            char elem_buf[64];
            strcpy(actual_buf, "[");
            for (int k = 0; k < %d; k++) {
                if (k > 0) strcat(actual_buf, ", ");
                snprintf(elem_buf, sizeof(elem_buf), "%%d", %s[k]);
                strcat(actual_buf, elem_buf);
            }
            strcat(actual_buf, "]");
        }
`, name, invocation, expected.Len(), name)
	default:
		return fmt.Sprintf("        int %s = %s;\n        snprintf(actual_buf, 512, \"%%d\", %s);\n",
			name, invocation, name)
	}
}
