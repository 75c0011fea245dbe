// Command gencheck-demo runs the library's own seeded scenario suite
// outside of `go test`, printing each Report's console text the way a
// user driving gencheck from a script would see it.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/shipq/gencheck"
	"github.com/shipq/gencheck/arbitrary"
	"github.com/shipq/gencheck/rng"
	"github.com/shipq/gencheck/shrink"
)

const usage = `gencheck-demo - run gencheck's seeded scenario suite

Usage:
  gencheck-demo run [scenario]
  gencheck-demo list

Scenarios:
  min-commutes       min(a,b) == min(b,a), always holds
  min-lower-bound    min(a,b) <= a and <= b, always holds
  bogus-sine         sin(x) == cos(pi/2+x), falsifiable, shrinks to x=0
  list-length        len(xs) >= 0, always holds
  non-empty-filter   first(xs) == first(xs++xs) for non-empty xs, always holds
  shrink-minimality  x < 5, falsifiable, shrinks to x=5

Options:
  -h, --help    Show this help message
`

var scenarioNames = []string{
	"min-commutes", "min-lower-bound", "bogus-sine",
	"list-length", "non-empty-filter", "shrink-minimality",
}

// reportLine prints one scenario's pass/fail marker line followed by its
// Report's full console text — the only two console-output shapes this
// binary ever needs, so they live here rather than behind a general
// Info/Success/Warn helper package.
func reportLine(name string, failed bool, text string) {
	if failed {
		fmt.Printf("! %s\n", name)
	} else {
		fmt.Printf("✓ %s\n", name)
	}
	fmt.Println(text)
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "-h", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)

	case "list":
		for _, name := range scenarioNames {
			fmt.Println(name)
		}

	case "run":
		var filter string
		if len(os.Args) >= 3 {
			filter = os.Args[2]
		}
		if !runScenarios(filter) {
			die("one or more scenarios did not match their expected outcome")
		}

	default:
		fmt.Fprintf(os.Stderr, "error: unknown command: %s\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'gencheck-demo --help' for usage.")
		os.Exit(1)
	}
}

// runScenarios drives each of the six concrete properties the engine was
// validated against (a commutative pair invariant, a lower-bound pair
// invariant, a deliberately bogus trigonometric identity, a list-length
// invariant, a filtered non-empty-list invariant, and a plain integer
// bound pinning the shrinker's minimality), reporting each to stdout and
// returning false if any scenario's pass/fail outcome didn't match what
// it was designed to demonstrate.
func runScenarios(filter string) bool {
	ok := true
	r := arbitrary.Default()

	report := func(name string, failed, wantFail bool, text string) {
		reportLine(name, failed, text)
		if failed != wantFail {
			ok = false
		}
	}

	if filter == "" || filter == "min-commutes" {
		pair := gencheck.Product(gencheck.ForAll[int](r), gencheck.ForAll[int](r), func(a, b int) [2]int { return [2]int{a, b} })
		rep := gencheck.Drive("min commutes", gencheck.DefaultConfig(), pair, func(p [2]int) bool {
			return minInt(p[0], p[1]) == minInt(p[1], p[0])
		})
		report("min-commutes", rep.Failed, false, rep.ConsoleText)
	}

	if filter == "" || filter == "min-lower-bound" {
		pair := gencheck.Product(gencheck.ForAll[int](r), gencheck.ForAll[int](r), func(a, b int) [2]int { return [2]int{a, b} })
		rep := gencheck.Drive("min is a lower bound", gencheck.DefaultConfig(), pair, func(p [2]int) bool {
			m := minInt(p[0], p[1])
			return m <= p[0] && m <= p[1]
		})
		report("min-lower-bound", rep.Failed, false, rep.ConsoleText)
	}

	if filter == "" || filter == "bogus-sine" {
		rep := gencheck.Drive("sin(x) == cos(pi/2 + x)", gencheck.DefaultConfig(), gencheck.ForAll[float64](r), func(x float64) bool {
			return math.Sin(x) == math.Cos(math.Pi/2+x)
		})
		report("bogus-sine", rep.Failed, true, rep.ConsoleText)
	}

	if filter == "" || filter == "list-length" {
		rep := gencheck.Drive("length(xs) >= 0", gencheck.DefaultConfig(), gencheck.ForAll[[]int](r), func(xs []int) bool {
			return len(xs) >= 0
		})
		report("list-length", rep.Failed, false, rep.ConsoleText)
	}

	if filter == "" || filter == "non-empty-filter" {
		nonEmpty := gencheck.Where(gencheck.ForAll[[]int](r), func(xs []int) bool { return len(xs) != 0 })
		rep := gencheck.Drive("first(xs) == first(xs++xs)", gencheck.DefaultConfig(), nonEmpty, func(xs []int) bool {
			doubled := append(append([]int{}, xs...), xs...)
			return xs[0] == doubled[0]
		})
		report("non-empty-filter", rep.Failed, false, rep.ConsoleText)
	}

	if filter == "" || filter == "shrink-minimality" {
		fixedTen := arbitrary.Arbitrary[int]{
			Gen:    func(*rng.PRNG, rng.Size) int { return 10 },
			Shrink: shrink.Int,
		}
		rep := gencheck.Drive("x < 5", gencheck.DefaultConfig(), gencheck.ForAllWith(fixedTen), func(x int) bool {
			return x < 5
		})
		report("shrink-minimality", rep.Failed, true, rep.ConsoleText)
	}

	return ok
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
