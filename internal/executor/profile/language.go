// Package profile defines the supported languages and how each one is
// compiled, run and syntax-checked.
package profile

import (
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	appErr "codelab/pkg/errors"
)

// Language tags one of the supported submission languages.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
	LangC          Language = "c"
	LangCPP        Language = "cpp"
)

// Spec defines the toolchain commands for one language. Command templates
// use {src}, {bin} and {dir} placeholders expanded against the workspace.
type Spec struct {
	ID             Language
	Name           string
	SourceFile     string
	BinaryFile     string
	CompileEnabled bool
	CompileCmdTpl  string
	RunCmdTpl      string
	SyntaxCheckTpl string
}

var specs = map[Language]Spec{
	LangPython: {
		ID:             LangPython,
		Name:           "Python 3",
		SourceFile:     "main.py",
		RunCmdTpl:      "python3 {src}",
		SyntaxCheckTpl: "python3 -m py_compile {src}",
	},
	LangJavaScript: {
		ID:             LangJavaScript,
		Name:           "JavaScript (Node.js)",
		SourceFile:     "main.js",
		RunCmdTpl:      "node {src}",
		SyntaxCheckTpl: "node --check {src}",
	},
	LangJava: {
		ID:             LangJava,
		Name:           "Java",
		SourceFile:     "Solution.java",
		CompileEnabled: true,
		CompileCmdTpl:  "javac -cp {dir} {src}",
		RunCmdTpl:      "java -cp {dir} Main",
	},
	LangC: {
		ID:             LangC,
		Name:           "C",
		SourceFile:     "solution.c",
		BinaryFile:     "solution",
		CompileEnabled: true,
		CompileCmdTpl:  "gcc -std=c11 {src} -o {bin} -lm",
		RunCmdTpl:      "{bin}",
		SyntaxCheckTpl: "gcc -std=c11 -fsyntax-only {src}",
	},
	LangCPP: {
		ID:             LangCPP,
		Name:           "C++",
		SourceFile:     "solution.cpp",
		BinaryFile:     "solution",
		CompileEnabled: true,
		CompileCmdTpl:  "g++ -std=c++17 {src} -o {bin} -lm",
		RunCmdTpl:      "{bin}",
		SyntaxCheckTpl: "g++ -std=c++17 -fsyntax-only {src}",
	},
}

// Lookup returns the spec for a language tag.
func Lookup(lang Language) (Spec, bool) {
	spec, ok := specs[lang]
	return spec, ok
}

// Parse validates a raw language string from the outside world.
func Parse(raw string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := specs[lang]; !ok {
		return "", appErr.Newf(appErr.LanguageNotSupported, "Unsupported language: %s", raw)
	}
	return lang, nil
}

// All returns every supported language spec.
func All() []Spec {
	out := make([]Spec, 0, len(specs))
	for _, lang := range []Language{LangPython, LangJavaScript, LangJava, LangC, LangCPP} {
		out = append(out, specs[lang])
	}
	return out
}

// BuildCommand expands a command template against a workspace directory and
// splits it into argv form. src and bin are file names inside dir.
func BuildCommand(tpl, dir, src, bin string) ([]string, error) {
	if strings.TrimSpace(tpl) == "" {
		return nil, appErr.New(appErr.InvalidParams).WithMessage("command template is required")
	}
	expanded := tpl
	expanded = strings.ReplaceAll(expanded, "{src}", filepath.Join(dir, src))
	expanded = strings.ReplaceAll(expanded, "{bin}", filepath.Join(dir, bin))
	expanded = strings.ReplaceAll(expanded, "{dir}", dir)
	fields, err := shlex.Split(expanded)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.InvalidParams, "parse command template failed")
	}
	if len(fields) == 0 {
		return nil, appErr.New(appErr.InvalidParams).WithMessage("command is empty after expansion")
	}
	return fields, nil
}
