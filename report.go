package gencheck

import (
	"fmt"
	"strings"
)

// ansiRed and ansiReset bracket the "red-toned" falsifiable line spec.md
// §6 specifies. No color library appears anywhere in the retrieved pack
// (see DESIGN.md); this is a two-escape-sequence wrap, not a dependency
// this codebase needs to reach for a library to cover.
const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Report is the outcome of one Drive (or Check) call: the counters, any
// classification distribution, and — on failure — the minimized input,
// rendered into the stable console text spec.md §6 defines.
type Report[T any] struct {
	Label string
	Seed  int64

	SuccessCount int
	DiscardCount int
	Classes      []ClassCount

	Failed             bool
	TrialsAtFailure    int
	ShrinkImprovements int
	MinimizedValue     T

	ConsoleText string
}

// renderSuccess builds the console text for a passing Check: the summary
// line, then (if any buckets were populated) the distribution block,
// entries ordered by key with percentages formatted to 2 decimal places.
func renderSuccess[T any](rep *Report[T]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s' passed %d tests. Discarded: %d", rep.Label, rep.SuccessCount, rep.DiscardCount)
	if len(rep.Classes) > 0 {
		total := rep.SuccessCount + rep.DiscardCount
		b.WriteString("\nTest case distribution:")
		for _, c := range rep.Classes {
			pct := 0.0
			if total > 0 {
				pct = float64(c.Count) / float64(total) * 100
			}
			fmt.Fprintf(&b, "\n%s: %.2f%%", c.Key, pct)
		}
	}
	return b.String()
}

// renderFailure builds the console text for a failing Check: the red
// falsifiable line, one progress dot per shrink improvement found, then
// the escalated failure message carrying the minimized input and the seed
// that reproduces it — the same "seed reported on failure" convention
// db/proptest used, since a failure a developer can't replay by re-running
// with that seed is far less useful than one they can.
func renderFailure[T any](rep *Report[T]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sFalsifiable after %d tests. Shrinking input.%s", ansiRed, rep.TrialsAtFailure, ansiReset)
	if rep.ShrinkImprovements > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(".", rep.ShrinkImprovements))
	}
	fmt.Fprintf(&b, "\nProperty '%s' failed for input:\n%v", rep.Label, rep.MinimizedValue)
	fmt.Fprintf(&b, "\nSeed: %d", rep.Seed)
	return b.String()
}
