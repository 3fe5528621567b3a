// Package stub detects placeholder submissions before any compile or run
// cycle is spent on them. Detection is best-effort and never fails:
// malformed code is reported as not-a-stub and falls through to real
// execution, which then surfaces the actual syntax error.
package stub

import (
	"strings"

	"codelab/internal/executor/profile"
)

// Detect reports whether code is an unmodified placeholder for the given
// function in the given language.
func Detect(code, functionName string, lang profile.Language) bool {
	switch lang {
	case profile.LangPython:
		return detectPython(code, functionName)
	case profile.LangJavaScript:
		return detectJS(code)
	case profile.LangJava:
		return detectJava(code)
	case profile.LangC, profile.LangCPP:
		return detectCLike(code)
	default:
		return false
	}
}

// detectPython walks the body of the named function definition: after a
// leading docstring, a body consisting only of pass and bare/None returns
// is a stub. An inline body after the signature colon counts the same way.
// Go has no Python parser, so this is an indentation-based scan of the def
// block rather than a true AST walk.
func detectPython(code, functionName string) bool {
	lines := strings.Split(code, "\n")
	defPrefix := "def " + functionName
	bodyStart := -1
	defIndent := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, defPrefix) &&
			(len(trimmed) == len(defPrefix) || trimmed[len(defPrefix)] == '(' || trimmed[len(defPrefix)] == ' ') {
			if inline, ok := inlineBody(trimmed); ok {
				return inline == "pass" || inline == "return" || inline == "return None"
			}
			bodyStart = i + 1
			defIndent = indentOf(line)
			break
		}
	}
	if bodyStart < 0 {
		return false
	}

	meaningful := 0
	sawStatement := false
	inDocstring := false
	docDelim := ""

	for _, line := range lines[bodyStart:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !inDocstring && indentOf(line) <= defIndent {
			break
		}

		if inDocstring {
			if strings.Contains(trimmed, docDelim) {
				inDocstring = false
			}
			continue
		}

		// A docstring only counts as such when it is the first statement.
		if !sawStatement {
			if delim, open := docstringDelim(trimmed); delim != "" {
				sawStatement = true
				if open {
					inDocstring = true
					docDelim = delim
				}
				continue
			}
		}
		sawStatement = true

		if trimmed == "pass" || trimmed == "return" || trimmed == "return None" {
			continue
		}
		meaningful++
	}

	return sawStatement && meaningful == 0
}

// inlineBody extracts a statement written on the def line itself, after
// the colon that closes the signature. Trailing comments are dropped
// first so a colon inside one is not mistaken for the signature's.
func inlineBody(defLine string) (string, bool) {
	if hash := strings.Index(defLine, "#"); hash >= 0 {
		defLine = defLine[:hash]
	}
	colon := strings.LastIndex(defLine, ":")
	if colon < 0 {
		return "", false
	}
	body := strings.TrimSpace(defLine[colon+1:])
	return body, body != ""
}

// docstringDelim reports the triple-quote delimiter opening trimmed, and
// whether the docstring remains open past this line.
func docstringDelim(trimmed string) (string, bool) {
	for _, delim := range []string{`"""`, "'''"} {
		if !strings.HasPrefix(trimmed, delim) {
			continue
		}
		rest := trimmed[len(delim):]
		return delim, !strings.Contains(rest, delim)
	}
	return "", false
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

// detectJS strips comments, collapses whitespace, and checks whether the
// substring between the first '{' and the last '}' is empty or a lone
// placeholder return.
func detectJS(code string) bool {
	var kept []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		kept = append(kept, trimmed)
	}
	content := strings.Join(kept, " ")
	content = stripBlockComments(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return false
	}
	body := strings.TrimSpace(content[start+1 : end])
	switch body {
	case "", "return;", "return null;", "return undefined;":
		return true
	}
	return false
}

func stripBlockComments(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		closing := strings.Index(s[open+2:], "*/")
		if closing < 0 {
			return b.String()
		}
		s = s[open+2+closing+2:]
	}
}

// detectJava flags the canonical placeholder body: a single return
// statement whose value is null.
func detectJava(code string) bool {
	return strings.Contains(code, "return null;") && strings.Count(code, "return") == 1
}

// detectCLike counts non-boilerplate lines (excluding braces, includes and
// trivial returns); three or fewer means the template was not touched.
func detectCLike(code string) bool {
	var body []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		switch trimmed {
		case "{", "}", "};", "return 0;", "return NULL;", "return nullptr;":
			continue
		}
		body = append(body, trimmed)
	}
	return len(body) <= 3
}
