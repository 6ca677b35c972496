package classify

import "strings"

// Score counts, for each category in rules, how many of its keywords occur in
// the normalized text. A keyword contributes at most one regardless of how
// often it repeats. The full mapping is returned so callers own the tie-break.
func Score(text string, rules []Rule) map[string]int {
	s := Normalize(text)
	scores := make(map[string]int, len(rules))
	for _, r := range rules {
		n := 0
		for _, kw := range r.Keywords {
			if strings.Contains(s, kw) {
				n++
			}
		}
		scores[r.Name] = n
	}
	return scores
}

// Best picks the category with the highest score, scanning rules in
// declaration order so that ties go to the earlier entry. ok is false when
// every score is zero: a zero count is never a classification signal.
func Best(scores map[string]int, rules []Rule) (string, bool) {
	best := ""
	max := 0
	for _, r := range rules {
		if scores[r.Name] > max {
			best = r.Name
			max = scores[r.Name]
		}
	}
	if max == 0 {
		return "", false
	}
	return best, true
}
