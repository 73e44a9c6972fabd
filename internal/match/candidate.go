package match

import (
	"sort"
)

// Candidate is a known name scored against a name that failed to resolve.
type Candidate struct {
	Name string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
	// Metadata for explanations.
	NormalizedName   string
	NormalizedTarget string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankNames scores every name against target. Returns candidates sorted by
// score (descending), ties broken by name.
func RankNames(target string, names []string) CandidateList {
	targetNorm := Fold(target)
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		candidates = append(candidates, Candidate{
			Name:             name,
			Score:            NormalizedLevenshteinScore(name, target),
			NormalizedName:   Fold(name),
			NormalizedTarget: targetNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most limit names scoring at least minScore against target.
func Suggest(target string, names []string, minScore float64, limit int) []string {
	var out []string
	for _, c := range RankNames(target, names).AboveThreshold(minScore).Top(limit) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface (higher score first, then by name).
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if empty.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with score >= threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
