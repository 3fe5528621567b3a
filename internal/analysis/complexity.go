// Package analysis scores submissions after execution: algorithmic
// complexity comparison and a weighted performance score.
package analysis

import "strings"

// complexityOrder ranks complexity classes from best to worst.
var complexityOrder = []string{
	"O(1)",
	"O(log n)",
	"O(n)",
	"O(n log n)",
	"O(n^2)",
	"O(n^2 log n)",
	"O(n^3)",
	"O(2^n)",
	"O(n!)",
}

// complexityScores maps how many levels worse the user's complexity is to
// a 0..1 score.
var complexityScores = map[int]float64{
	0: 1.0,
	1: 0.8,
	2: 0.5,
	3: 0.3,
	4: 0.1,
}

// complexityAliases maps the spellings users type to the canonical form.
var complexityAliases = map[string]string{
	"o(1)":          "O(1)",
	"o(log n)":      "O(log n)",
	"o(logn)":       "O(log n)",
	"o(log(n))":     "O(log n)",
	"o(n)":          "O(n)",
	"o(n log k)":    "O(n log k)",
	"o(n+m)":        "O(n+m)",
	"o(n + m)":      "O(n+m)",
	"o(n log n)":    "O(n log n)",
	"o(nlogn)":      "O(n log n)",
	"o(n*logn)":     "O(n log n)",
	"o(n*log n)":    "O(n log n)",
	"o(n*log(n))":   "O(n log n)",
	"o(n*k log k)":  "O(n*k log k)",
	"o(v+e)":        "O(V+E)",
	"o(v + e)":      "O(V+E)",
	"o(n^2)":        "O(n^2)",
	"o(n*n)":        "O(n^2)",
	"o(n²)":         "O(n^2)",
	"o(n*amount)":   "O(n*amount)",
	"o(m*n)":        "O(m*n)",
	"o(m * n)":      "O(m*n)",
	"o(mn)":         "O(m*n)",
	"o(n^2 log n)":  "O(n^2 log n)",
	"o(n^3)":        "O(n^3)",
	"o(n³)":         "O(n^3)",
	"o(2^n)":        "O(2^n)",
	"o(n * 2^n)":    "O(n * 2^n)",
	"o(n*2^n)":      "O(n * 2^n)",
	"o(3^n)":        "O(3^n)",
	"o(4^n)":        "O(4^n)",
	"o(n!)":         "O(n!)",
}

// NormalizeComplexity maps a raw complexity string to its canonical form.
// Unknown or empty input defaults to O(n).
func NormalizeComplexity(complexity string) string {
	if complexity == "" {
		return "O(n)"
	}
	if canonical, ok := complexityAliases[strings.ToLower(strings.TrimSpace(complexity))]; ok {
		return canonical
	}
	return "O(n)"
}

// ComplexityIndex returns the position of a complexity in the hierarchy,
// zero being best. Classes outside the main hierarchy rank worst.
func ComplexityIndex(complexity string) int {
	normalized := NormalizeComplexity(complexity)
	for i, c := range complexityOrder {
		if c == normalized {
			return i
		}
	}
	return len(complexityOrder) - 1
}

// CompareComplexity scores the user's complexity against the expected
// optimal one. Meeting or beating the expectation scores 1.0; each level
// worse drops the score per the scoring matrix.
func CompareComplexity(userComplexity, expectedComplexity string) float64 {
	diff := ComplexityIndex(userComplexity) - ComplexityIndex(expectedComplexity)
	if diff <= 0 {
		return 1.0
	}
	if diff >= len(complexityScores) {
		diff = len(complexityScores) - 1
	}
	if score, ok := complexityScores[diff]; ok {
		return score
	}
	return 0.1
}

// EfficiencyLabel translates a complexity score into its rating band.
func EfficiencyLabel(complexityScore float64) string {
	switch {
	case complexityScore >= 0.8:
		return "optimal"
	case complexityScore >= 0.5:
		return "suboptimal"
	default:
		return "brute_force"
	}
}

// IsBruteForce reports whether the user's approach counts as brute force
// relative to the expected complexity.
func IsBruteForce(userComplexity, expectedComplexity string) bool {
	return CompareComplexity(userComplexity, expectedComplexity) <= 0.5
}
