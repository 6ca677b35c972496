package classify

import "strings"

// Normalize lowercases s and collapses every maximal run of characters outside
// [a-z0-9] into a single space. Both keywords and candidate text go through
// this before any containment check. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(' ')
			inRun = true
		}
	}
	return b.String()
}
