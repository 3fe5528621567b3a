package runner

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"codelab/internal/executor/engine"
	"codelab/internal/executor/marshal"
	"codelab/internal/executor/profile"
	"codelab/internal/executor/report"
	"codelab/internal/executor/value"
)

var javaClassRe = regexp.MustCompile(`class\s+(\w+)`)

// javaMainTemplate is the generated entry point compiled alongside the
// submission. Test blocks print delimited RESULT lines; the string helpers
// normalize arrays and tolerate float formatting differences.
const javaMainTemplate = `import java.util.*;

public class Main {
    public static void main(String[] args) {
        @@CLASS@@ sol = new @@CLASS@@();
@@TESTS@@
    }

    static String arrayToString(Object obj) {
        if (obj == null) return "null";
        if (obj instanceof int[]) return Arrays.toString((int[]) obj);
        if (obj instanceof long[]) return Arrays.toString((long[]) obj);
        if (obj instanceof double[]) return Arrays.toString((double[]) obj);
        if (obj instanceof String[]) return Arrays.toString((String[]) obj);
        if (obj instanceof boolean[]) return Arrays.toString((boolean[]) obj);
        if (obj instanceof Object[]) return Arrays.deepToString((Object[]) obj);
        if (obj instanceof List) return obj.toString();
        return String.valueOf(obj);
    }

    static boolean compareResult(String actual, String expected) {
        if (actual == null || expected == null) return false;
        String a = actual.trim().replaceAll("\\s+", "");
        String e = expected.trim().replaceAll("\\s+", "");
        if (a.equals(e)) return true;
        try {
            double av = Double.parseDouble(a);
            double ev = Double.parseDouble(e);
            return Math.abs(av - ev) < 1e-9;
        } catch (NumberFormatException ex) {}
        return false;
    }
}
`

const javaTestBlock = `        try {
            Object actual = sol.@@FN@@(@@ARGS@@);
            String actualStr = arrayToString(actual);
            String expectedStr = @@EXPECTED@@;
            boolean passed = compareResult(actualStr, expectedStr);
            System.out.println("RESULT:@@N@@:" + (passed ? "PASS" : "FAIL") + ":" + actualStr + ":" + expectedStr);
        } catch (Exception e) {
            System.out.println("RESULT:@@N@@:ERROR:" + e.getMessage() + ":_");
        }`

// JavaRunner compiles the submission with javac, then compiles and runs a
// generated Main class against it.
type JavaRunner struct {
	eng  engine.Engine
	spec profile.Spec
}

func NewJavaRunner(eng engine.Engine) *JavaRunner {
	spec, _ := profile.Lookup(profile.LangJava)
	return &JavaRunner{eng: eng, spec: spec}
}

func (r *JavaRunner) Language() profile.Language { return profile.LangJava }

func (r *JavaRunner) Run(ctx context.Context, req Request) report.ExecutionReport {
	total := len(req.Tests)

	m := javaClassRe.FindStringSubmatch(req.Code)
	if m == nil {
		return report.Fatal(total, "Java code must contain a class definition", "")
	}
	className := m[1]
	classFile := className + ".java"

	if _, err := req.Workspace.WriteFile(classFile, req.Code); err != nil {
		return report.Fatal(total, "Java execution error: "+err.Error(), "")
	}

	if rep, ok := r.compile(ctx, req, classFile, "Compilation Error"); !ok {
		return rep
	}

	if _, err := req.Workspace.WriteFile("Main.java", r.buildMain(className, req)); err != nil {
		return report.Fatal(total, "Java execution error: "+err.Error(), "")
	}
	if rep, ok := r.compile(ctx, req, "Main.java", "Test Runner Compilation Error"); !ok {
		return rep
	}

	argv, err := profile.BuildCommand(r.spec.RunCmdTpl, req.Workspace.Root(), classFile, "")
	if err != nil {
		return report.Fatal(total, "Java execution error: "+err.Error(), "")
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
	if res.ExitCode != 0 && strings.TrimSpace(res.Stdout) == "" {
		return report.Fatal(total, "Runtime Error: "+truncate(strings.TrimSpace(res.Stderr), 300), "")
	}

	return resultLinesReport(req, res.Stdout)
}

func (r *JavaRunner) compile(ctx context.Context, req Request, srcFile, errLabel string) (report.ExecutionReport, bool) {
	total := len(req.Tests)
	argv, err := profile.BuildCommand(r.spec.CompileCmdTpl, req.Workspace.Root(), srcFile, "")
	if err != nil {
		return report.Fatal(total, "Java execution error: "+err.Error(), ""), false
	}
	res, err := r.eng.Run(ctx, engine.Command{
		Argv:    argv,
		Dir:     req.Workspace.Root(),
		Timeout: req.timeout(),
	})
	if err != nil {
		return fatalFromError(total, err), false
	}
	if res.TimedOut {
		return report.Fatal(total, "Time Limit Exceeded", ""), false
	}
	if res.ExitCode != 0 {
		msg := fmt.Sprintf("%s: %s", errLabel, truncate(strings.TrimSpace(res.Stderr), 300))
		return report.Fatal(total, msg, ""), false
	}
	return report.ExecutionReport{}, true
}

func (r *JavaRunner) buildMain(className string, req Request) string {
	blocks := make([]string, len(req.Tests))
	for i, tc := range req.Tests {
		block := javaTestBlock
		block = strings.ReplaceAll(block, "@@N@@", fmt.Sprint(i+1))
		block = strings.ReplaceAll(block, "@@FN@@", req.FunctionName)
		block = strings.ReplaceAll(block, "@@ARGS@@", marshal.JavaCallArgs(tc.Input))
		block = strings.ReplaceAll(block, "@@EXPECTED@@", marshal.JavaLiteral(value.Str(value.Canonical(tc.Expected))))
		blocks[i] = block
	}
	main := javaMainTemplate
	main = strings.ReplaceAll(main, "@@TESTS@@", strings.Join(blocks, "\n"))
	main = strings.ReplaceAll(main, "@@CLASS@@", className)
	return main
}

// resultLinesReport assembles the final report from driver RESULT lines,
// shared by the compiled-language runners.
func resultLinesReport(req Request, stdout string) report.ExecutionReport {
	b := report.NewBuilder(len(req.Tests))
	for _, line := range marshal.ParseResultLines(stdout) {
		entry := report.TestResult{TestNumber: line.TestNumber}
		if line.Status == "ERROR" {
			entry.Error = line.Actual
		} else {
			entry.Passed = line.Passed()
			entry.Actual = value.Str(line.Actual)
		}
		if line.TestNumber >= 1 && line.TestNumber <= len(req.Tests) {
			entry.Input = req.Tests[line.TestNumber-1].Input
			entry.Expected = req.Tests[line.TestNumber-1].Expected
		}
		b.Add(entry)
	}
	return b.Finalize()
}
