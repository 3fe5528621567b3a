package marshal

import (
	"strconv"
	"strings"

	"codelab/internal/executor/value"
)

const resultPrefix = "RESULT:"

// ResultLine is one decoded per-test line emitted by a generated driver.
// The wire form is RESULT:<n>:<PASS|FAIL|ERROR>:<actual>:<expected>.
// Splitting stops after the fourth separator, so a colon inside actual
// bleeds the remainder into the expected field; the pass/fail verdict is
// carried by the status token and is unaffected.
type ResultLine struct {
	TestNumber int
	Status     string
	Actual     string
	Expected   string
}

// Passed reports whether the line counts as a pass, re-checking FAIL
// lines numerically so that near-equal floats printed with differing
// precision are not rejected.
func (r ResultLine) Passed() bool {
	if r.Status == "PASS" {
		return true
	}
	if r.Status == "FAIL" {
		return value.NumericEqual(r.Actual, r.Expected)
	}
	return false
}

// ParseResultLines scans driver stdout for RESULT lines, ignoring any
// other output (user print statements, warnings) interleaved with them.
func ParseResultLines(stdout string) []ResultLine {
	var lines []ResultLine
	for _, raw := range strings.Split(stdout, "\n") {
		raw = strings.TrimSpace(raw)
		if !strings.HasPrefix(raw, resultPrefix) {
			continue
		}
		parts := strings.SplitN(raw, ":", 5)
		if len(parts) != 5 {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		lines = append(lines, ResultLine{
			TestNumber: n,
			Status:     parts[2],
			Actual:     parts[3],
			Expected:   parts[4],
		})
	}
	return lines
}
