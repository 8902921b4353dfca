package match

import (
	"regexp"
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/discdb/pkg/discdb"
)

// numberRegex extracts sequence numbers from titles (e.g., "2", "3")
var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence represents the confidence level of a title match.
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

// ParseConfidence parses a confidence name as produced by String.
func ParseConfidence(s string) (Confidence, bool) {
	switch s {
	case "high":
		return ConfidenceHigh, true
	case "medium":
		return ConfidenceMedium, true
	case "low":
		return ConfidenceLow, true
	case "none", "":
		return ConfidenceNone, true
	}
	return ConfidenceNone, false
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Candidate is a media item scored against a hint.
type Candidate struct {
	Item       discdb.MediaItem
	Score      float64    // Jaro-Winkler similarity with adjustments (0.0-1.0)
	Confidence Confidence // Confidence level based on score
}

// Rank scores items against a title hint and an optional year (0 for none)
// and returns one candidate per media item slug, best first. Items that
// appear several times (one entry per matching disc) are collapsed. With an
// empty hint every candidate scores zero and the input order is kept.
func Rank(hint string, year int, items []discdb.MediaItem) []Candidate {
	seen := make(map[string]bool, len(items))
	candidates := make([]Candidate, 0, len(items))

	cleanHint := CleanTitle(hint)
	hintNumbers := extractNumbers(cleanHint)

	for _, item := range items {
		if seen[item.Slug] {
			continue
		}
		seen[item.Slug] = true

		c := Candidate{Item: item}
		if cleanHint != "" {
			cleanTitle := CleanTitle(item.Title)
			score := float64(edlib.JaroWinklerSimilarity(cleanHint, cleanTitle))
			score = adjustScoreForNumbers(score, hintNumbers, extractNumbers(cleanTitle))
			score = adjustScoreForYear(score, year, item.Year)
			c.Score = score
			c.Confidence = confidenceFor(score)
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// Best returns the top candidate if it reaches threshold, or nil.
func Best(candidates []Candidate, threshold Confidence) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	top := candidates[0]
	if top.Confidence < threshold {
		return nil
	}
	// A single unscored candidate is still the only answer.
	if top.Score == 0 && len(candidates) > 1 {
		return nil
	}
	return &top
}

// extractNumbers returns all numeric sequences from a normalized title.
func extractNumbers(title string) []string {
	return numberRegex.FindAllString(title, -1)
}

// adjustScoreForNumbers modifies the similarity score based on sequence number matching.
// When the hint has numbers:
// - Matching numbers get a bonus
// - Mismatched numbers get a penalty
// - Missing numbers in candidate also get a penalty
func adjustScoreForNumbers(score float64, hintNums, candidateNums []string) float64 {
	if len(hintNums) == 0 {
		return score
	}

	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}

	for _, n := range hintNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}

	return score * 0.90
}

// adjustScoreForYear rewards an exact year and penalizes a distant one.
// Releases often trail the original by a year, so off-by-one is neutral.
func adjustScoreForYear(score float64, hintYear, itemYear int) float64 {
	if hintYear == 0 || itemYear == 0 {
		return score
	}
	diff := hintYear - itemYear
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return min(score*1.05, 1.0)
	case diff == 1:
		return score
	default:
		return score * 0.90
	}
}
