package analysis

import "strings"

// Weights distributes the overall score across its four components.
type Weights struct {
	Correctness float64 `json:"correctness" yaml:"correctness"`
	Efficiency  float64 `json:"efficiency" yaml:"efficiency"`
	Speed       float64 `json:"speed" yaml:"speed"`
	Attempts    float64 `json:"attempts" yaml:"attempts"`
}

// DefaultWeights returns the standard score distribution.
func DefaultWeights() Weights {
	return Weights{Correctness: 0.35, Efficiency: 0.30, Speed: 0.20, Attempts: 0.15}
}

// expectedTimeLimits holds the reference solving time in minutes per
// difficulty level.
var expectedTimeLimits = map[string]int{
	"easy":   15,
	"medium": 30,
	"hard":   45,
}

// Submission is the scoring input for one solved (or attempted) problem.
type Submission struct {
	Solved             bool   `json:"solved"`
	UserComplexity     string `json:"user_complexity"`
	ExpectedComplexity string `json:"expected_complexity"`
	TimeTakenMinutes   int    `json:"time_taken_minutes"`
	Difficulty         string `json:"difficulty"`
	Attempts           int    `json:"attempts"`
}

// SubmissionAnalysis carries the per-component and overall scores.
type SubmissionAnalysis struct {
	CorrectnessScore float64 `json:"correctness_score"`
	EfficiencyScore  float64 `json:"efficiency_score"`
	SpeedScore       float64 `json:"speed_score"`
	AttemptsScore    float64 `json:"attempts_score"`
	OverallScore     float64 `json:"overall_score"`
	IsBruteForce     bool    `json:"is_brute_force"`
	Feedback         string  `json:"feedback"`
}

// Scorer computes weighted performance scores.
type Scorer struct {
	weights Weights
}

// NewScorer builds a scorer. Zero weights fall back to the defaults.
func NewScorer(weights Weights) *Scorer {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// CorrectnessScore is 1.0 for a solved problem, 0.0 otherwise.
func (s *Scorer) CorrectnessScore(solved bool) float64 {
	if solved {
		return 1.0
	}
	return 0.0
}

// EfficiencyScore compares the user's complexity to the expected optimum.
func (s *Scorer) EfficiencyScore(userComplexity, expectedComplexity string) float64 {
	return CompareComplexity(userComplexity, expectedComplexity)
}

// SpeedScore rates solving time against the difficulty's reference time.
// Finishing in half the expected time or less is a full score; the curve
// then decays with the expected-to-actual ratio.
func (s *Scorer) SpeedScore(timeTakenMinutes int, difficulty string) float64 {
	expected, ok := expectedTimeLimits[difficulty]
	if !ok {
		expected = 30
	}
	if timeTakenMinutes <= 0 {
		return 0.0
	}

	ratio := float64(expected) / float64(timeTakenMinutes)
	switch {
	case ratio >= 2.0:
		return 1.0
	case ratio >= 1.0:
		return 0.8 + (ratio-1.0)*0.2
	case ratio >= 0.5:
		return 0.5 + (ratio-0.5)*0.6
	default:
		if ratio > 0.1 {
			return ratio
		}
		return 0.1
	}
}

// AttemptsScore rewards solving in few submissions.
func (s *Scorer) AttemptsScore(attempts int) float64 {
	switch {
	case attempts <= 0:
		return 0.0
	case attempts == 1:
		return 1.0
	case attempts == 2:
		return 0.8
	case attempts == 3:
		return 0.6
	case attempts <= 5:
		return 0.4
	default:
		score := 1.0 - float64(attempts)*0.1
		if score < 0.1 {
			return 0.1
		}
		return score
	}
}

// Analyze computes the complete weighted analysis for one submission.
func (s *Scorer) Analyze(sub Submission) SubmissionAnalysis {
	correctness := s.CorrectnessScore(sub.Solved)
	efficiency := s.EfficiencyScore(sub.UserComplexity, sub.ExpectedComplexity)
	speed := s.SpeedScore(sub.TimeTakenMinutes, sub.Difficulty)
	attempts := s.AttemptsScore(sub.Attempts)

	overall := s.weights.Correctness*correctness +
		s.weights.Efficiency*efficiency +
		s.weights.Speed*speed +
		s.weights.Attempts*attempts

	bruteForce := IsBruteForce(sub.UserComplexity, sub.ExpectedComplexity)

	return SubmissionAnalysis{
		CorrectnessScore: correctness,
		EfficiencyScore:  efficiency,
		SpeedScore:       speed,
		AttemptsScore:    attempts,
		OverallScore:     overall,
		IsBruteForce:     bruteForce,
		Feedback:         feedback(correctness, efficiency, speed, attempts, bruteForce),
	}
}

// OverallScore averages analyses into a 0-100 percentage.
func (s *Scorer) OverallScore(analyses []SubmissionAnalysis) float64 {
	if len(analyses) == 0 {
		return 0.0
	}
	var total float64
	for _, a := range analyses {
		total += a.OverallScore
	}
	return total / float64(len(analyses)) * 100
}

// SkillLevel buckets a 0-100 score into a named level.
func (s *Scorer) SkillLevel(overallScore float64) string {
	switch {
	case overallScore < 40:
		return "beginner"
	case overallScore < 70:
		return "intermediate"
	default:
		return "advanced"
	}
}

func feedback(correctness, efficiency, speed, attempts float64, bruteForce bool) string {
	var parts []string
	if correctness == 0 {
		parts = append(parts, "Problem not solved.")
	}
	if bruteForce {
		parts = append(parts, "Brute force approach detected. Consider optimizing your algorithm.")
	} else if efficiency < 0.8 {
		parts = append(parts, "Solution efficiency can be improved.")
	}
	if speed < 0.5 {
		parts = append(parts, "Try to improve your solving speed with more practice.")
	}
	if attempts < 0.6 {
		parts = append(parts, "High number of attempts. Review your approach before submitting.")
	}
	if len(parts) == 0 {
		parts = append(parts, "Great job! Optimal solution achieved.")
	}
	return strings.Join(parts, " ")
}
