// Package marshal owns the serialization boundary between test-case values
// and generated driver source: rendering a Value as a literal valid in the
// target language, building call arguments (with hoisted setup for arrays),
// and parsing the delimited RESULT lines drivers print back.
//
// Round-tripping through generated source literals rather than a data file
// lets each language's own compiler type-check the harness, so a bad
// argument mapping shows up as a readable compile diagnostic.
package marshal

import "strings"

var sourceEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeString renders s safe inside a double-quoted literal in any of the
// curly-brace target languages.
func escapeString(s string) string {
	return sourceEscaper.Replace(s)
}

// QuotedString renders s as a double-quoted escaped literal, valid as-is
// in Java, C and C++ source.
func QuotedString(s string) string {
	return `"` + escapeString(s) + `"`
}
