package shrink

import "unicode"

// charCandidates is the small, fixed candidate list spec.md §4.3
// prescribes for Char: [a, b, A, B, 1, 2, tolower(c), space].
func charCandidates(c rune) []rune {
	return []rune{'a', 'b', 'A', 'B', '1', '2', unicode.ToLower(c), ' '}
}

// simplerThanChar implements spec.md §4.3's "simpler than c" predicate —
// an OR of independent conditions, not a single ranking, so a punctuation
// character can shrink straight to a lowercase letter even though neither
// is "numerically" smaller.
func simplerThanChar(x, c rune) bool {
	return (unicode.IsLower(x) && !unicode.IsLower(c)) ||
		(unicode.IsUpper(x) && !unicode.IsUpper(c)) ||
		(unicode.IsDigit(x) && !unicode.IsDigit(c)) ||
		(x == ' ' && c != ' ') ||
		(unicode.IsSpace(x) && !unicode.IsSpace(c)) ||
		(x < c)
}

// Char shrinks a rune by filtering the fixed candidate list down to
// candidates strictly simpler than c, deduplicated, excluding c itself.
func Char(c rune) []rune {
	seen := map[rune]bool{}
	var out []rune
	for _, x := range charCandidates(c) {
		if x == c || seen[x] || !simplerThanChar(x, c) {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out
}
