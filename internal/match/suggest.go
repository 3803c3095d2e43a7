package match

import "sort"

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.5

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64 // NameSimilarity, 0-1
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against name and returns them sorted by score
// (descending), ties broken by name.
func Rank(name string, known []string) CandidateList {
	out := make(CandidateList, 0, len(known))

	for _, k := range known {
		out = append(out, Candidate{Name: k, Score: NameSimilarity(name, k)})
	}

	sort.Sort(out)

	return out
}

func (c CandidateList) Len() int { return len(c) }

func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < len(c) {
		return c[:n]
	}

	return c
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns up to n known names that look like name, best first.
// Duplicates in known are reported once.
func Suggest(name string, known []string, n int) []string {
	seen := make(map[string]struct{}, len(known))
	uniq := make([]string, 0, len(known))

	for _, k := range known {
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}

	return Rank(name, uniq).AboveThreshold(DefaultThreshold).Top(n).Names()
}
