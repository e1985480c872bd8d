package title

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence is the strength of a fuzzy title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Candidate is a title to compare against, tagged with a caller-defined key.
type Candidate struct {
	Key   int
	Title string
}

// Result is the best candidate found by Match.
type Result struct {
	Candidate  Candidate
	Score      float64
	Confidence Confidence
}

// Match finds the candidate most similar to t using Jaro-Winkler similarity
// on cleaned titles. Differing sequel numbers ("Show 2" vs "Show 3") are
// penalized. The zero Candidate is returned when nothing scores 0.70 or more.
func Match(t string, candidates []Candidate) Result {
	best := Result{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleaned := Clean(t)
	nums := numberRegex.FindAllString(cleaned, -1)

	for _, c := range candidates {
		other := Clean(c.Title)
		score := float64(edlib.JaroWinklerSimilarity(cleaned, other))
		score = adjustForNumbers(score, nums, numberRegex.FindAllString(other, -1))

		if score > best.Score {
			best.Candidate = c
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Candidate = Candidate{}
	}
	return best
}

// adjustForNumbers rewards matching sequence numbers and penalizes mismatches.
func adjustForNumbers(score float64, nums, otherNums []string) float64 {
	if len(nums) == 0 {
		return score
	}
	if len(otherNums) == 0 {
		return score * 0.85
	}

	have := make(map[string]bool, len(otherNums))
	for _, n := range otherNums {
		have[n] = true
	}
	for _, n := range nums {
		if have[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
