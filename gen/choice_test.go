package gen

import (
	"testing"

	"github.com/shipq/gencheck/rng"
)

func TestChoiceUniform(t *testing.T) {
	g := Choice(1, 2, 3)
	p := rng.NewPRNG(5)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[g(p, 10)] = true
	}
	for _, v := range []int{1, 2, 3} {
		if !seen[v] {
			t.Errorf("Choice(1,2,3) never produced %d in 500 draws", v)
		}
	}
}

func TestChoicePanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Choice([]) to panic")
		}
	}()
	Choice[int]()
}

func TestChoiceEnumEvaluatesOnce(t *testing.T) {
	calls := 0
	g := ChoiceEnum(func() []int {
		calls++
		return []int{1, 2, 3}
	})
	p := rng.NewPRNG(1)
	for i := 0; i < 10; i++ {
		g(p, 10)
	}
	if calls != 1 {
		t.Errorf("ChoiceEnum evaluated enumerate %d times, want 1", calls)
	}
}

// TestFrequencyUsesEachEntrysOwnWeight pins the spec-prescribed reading of
// the Frequency weight table: every entry's own weight drives its share of
// selections. The source this engine is modeled on has a documented bug
// that always re-reads entry 0's weight; this regression test would fail
// under that behavior (entries 2 and 3 would never be picked, since
// weightedGens[0].Weight dominates the running sum).
func TestFrequencyUsesEachEntrysOwnWeight(t *testing.T) {
	counts := map[string]int{}
	wg := []WeightedGen[string]{
		{Weight: 1, Gen: Pure("rare")},
		{Weight: 1, Gen: Pure("also-rare")},
		{Weight: 98, Gen: Pure("common")},
	}
	g := Frequency(wg)
	p := rng.NewPRNG(1)
	const trials = 5000
	for i := 0; i < trials; i++ {
		counts[g(p, 10)]++
	}
	if counts["also-rare"] == 0 {
		t.Error("entry at index 1 was never selected — weight accumulation is reading the wrong entry")
	}
	if counts["common"] < trials/2 {
		t.Errorf("heavily-weighted entry selected only %d/%d times, want a clear majority", counts["common"], trials)
	}
}

func TestFrequencyRejectsEmptyAndNonPositiveWeights(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected empty Frequency table to panic")
		}
	}()
	Frequency([]WeightedGen[int]{})
}

func TestFrequencyRejectsZeroWeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected zero-weight entry to panic")
		}
	}()
	Frequency([]WeightedGen[int]{{Weight: 0, Gen: Pure(1)}})
}

func TestOneOfSamplesChosenGenerator(t *testing.T) {
	g := OneOf(Pure(1), Pure(2))
	p := rng.NewPRNG(1)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[g(p, 10)] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("OneOf(Pure(1), Pure(2)) did not reach both branches: %v", seen)
	}
}
