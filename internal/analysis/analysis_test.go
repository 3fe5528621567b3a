package analysis_test

import (
	"math"
	"strings"
	"testing"

	"codelab/internal/analysis"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeComplexity(t *testing.T) {
	cases := map[string]string{
		"O(n)":       "O(n)",
		"o(nlogn)":   "O(n log n)",
		"O(N LOG N)": "O(n log n)",
		"o(n*n)":     "O(n^2)",
		"o(n²)":      "O(n^2)",
		"":           "O(n)",
		"gibberish":  "O(n)",
	}
	for in, want := range cases {
		if got := analysis.NormalizeComplexity(in); got != want {
			t.Errorf("NormalizeComplexity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCompareComplexity(t *testing.T) {
	cases := []struct {
		user, expected string
		want           float64
	}{
		{"O(n)", "O(n)", 1.0},
		{"O(n)", "O(n log n)", 1.0},
		{"O(n log n)", "O(n)", 0.8},
		{"O(n^2)", "O(n)", 0.5},
		{"O(n^3)", "O(n)", 0.1},
		{"O(2^n)", "O(1)", 0.1},
	}
	for _, c := range cases {
		if got := analysis.CompareComplexity(c.user, c.expected); !almostEqual(got, c.want) {
			t.Errorf("CompareComplexity(%q, %q) = %v, want %v", c.user, c.expected, got, c.want)
		}
	}
}

func TestEfficiencyLabel(t *testing.T) {
	if got := analysis.EfficiencyLabel(1.0); got != "optimal" {
		t.Errorf("1.0 = %q", got)
	}
	if got := analysis.EfficiencyLabel(0.5); got != "suboptimal" {
		t.Errorf("0.5 = %q", got)
	}
	if got := analysis.EfficiencyLabel(0.3); got != "brute_force" {
		t.Errorf("0.3 = %q", got)
	}
}

func TestIsBruteForce(t *testing.T) {
	if !analysis.IsBruteForce("O(n^2)", "O(n)") {
		t.Error("two levels worse should count as brute force")
	}
	if analysis.IsBruteForce("O(n log n)", "O(n)") {
		t.Error("one level worse should not count as brute force")
	}
}

func TestSpeedScoreCurve(t *testing.T) {
	s := analysis.NewScorer(analysis.Weights{})
	cases := []struct {
		minutes    int
		difficulty string
		want       float64
	}{
		{5, "easy", 1.0},     // half the 15m budget or better
		{15, "easy", 0.8},    // exactly on budget
		{30, "medium", 0.8},  // exactly on budget
		{60, "medium", 0.5},  // twice the budget
		{0, "medium", 0.0},   // no timing data
		{300, "medium", 0.1}, // floor
	}
	for _, c := range cases {
		if got := s.SpeedScore(c.minutes, c.difficulty); !almostEqual(got, c.want) {
			t.Errorf("SpeedScore(%d, %s) = %v, want %v", c.minutes, c.difficulty, got, c.want)
		}
	}
}

func TestAttemptsLadder(t *testing.T) {
	s := analysis.NewScorer(analysis.Weights{})
	cases := map[int]float64{0: 0.0, 1: 1.0, 2: 0.8, 3: 0.6, 4: 0.4, 5: 0.4, 6: 0.4, 12: 0.1}
	for attempts, want := range cases {
		if got := s.AttemptsScore(attempts); !almostEqual(got, want) {
			t.Errorf("AttemptsScore(%d) = %v, want %v", attempts, got, want)
		}
	}
}

func TestAnalyzeWeightsComponents(t *testing.T) {
	s := analysis.NewScorer(analysis.DefaultWeights())
	a := s.Analyze(analysis.Submission{
		Solved:             true,
		UserComplexity:     "O(n)",
		ExpectedComplexity: "O(n)",
		TimeTakenMinutes:   5,
		Difficulty:         "easy",
		Attempts:           1,
	})
	if !almostEqual(a.OverallScore, 1.0) {
		t.Errorf("overall = %v, want 1.0", a.OverallScore)
	}
	if a.IsBruteForce {
		t.Error("optimal solution flagged as brute force")
	}
	if a.Feedback != "Great job! Optimal solution achieved." {
		t.Errorf("feedback = %q", a.Feedback)
	}
}

func TestAnalyzeBruteForceFeedback(t *testing.T) {
	s := analysis.NewScorer(analysis.DefaultWeights())
	a := s.Analyze(analysis.Submission{
		Solved:             true,
		UserComplexity:     "O(n^2)",
		ExpectedComplexity: "O(n)",
		TimeTakenMinutes:   20,
		Difficulty:         "easy",
		Attempts:           1,
	})
	if !a.IsBruteForce {
		t.Error("two levels worse should be brute force")
	}
	if !strings.Contains(a.Feedback, "Brute force approach detected") {
		t.Errorf("feedback = %q", a.Feedback)
	}
}

func TestSkillLevels(t *testing.T) {
	s := analysis.NewScorer(analysis.Weights{})
	cases := map[float64]string{0: "beginner", 39.9: "beginner", 40: "intermediate", 69.9: "intermediate", 70: "advanced", 100: "advanced"}
	for score, want := range cases {
		if got := s.SkillLevel(score); got != want {
			t.Errorf("SkillLevel(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestOverallScoreAveragesToPercent(t *testing.T) {
	s := analysis.NewScorer(analysis.Weights{})
	if got := s.OverallScore(nil); got != 0.0 {
		t.Errorf("empty = %v", got)
	}
	got := s.OverallScore([]analysis.SubmissionAnalysis{
		{OverallScore: 1.0},
		{OverallScore: 0.5},
	})
	if !almostEqual(got, 75.0) {
		t.Errorf("overall = %v, want 75", got)
	}
}
