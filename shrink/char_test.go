package shrink

import "testing"

func TestCharNeverReturnsInputItself(t *testing.T) {
	for _, c := range []rune{'a', 'Z', '9', ' ', '!', '\t'} {
		for _, x := range Char(c) {
			if x == c {
				t.Errorf("Char(%q) shrink sequence contains c itself", c)
			}
		}
	}
}

// simplerThanChar is an OR of independent category-change rules, so a
// lowercase letter is not a fixed point: uppercase, digit, and space
// candidates all count as "simpler" than it under the categorical rules,
// even though none is numerically smaller. Only 'b' is excluded from
// Char('a'), since none of the OR'd conditions holds for it.
func TestCharLowercaseLetterOffersCategoryChanges(t *testing.T) {
	got := Char('a')
	found := map[rune]bool{}
	for _, x := range got {
		if x == 'b' {
			t.Errorf("Char('a') offered 'b', which satisfies none of the simpler-than rules")
		}
		found[x] = true
	}
	for _, want := range []rune{'A', 'B', '1', '2', ' '} {
		if !found[want] {
			t.Errorf("Char('a') missing expected candidate %q, got %v", want, got)
		}
	}
}

func TestCharDigitOffersLettersAndSpace(t *testing.T) {
	got := Char('5')
	found := map[rune]bool{}
	for _, x := range got {
		found[x] = true
	}
	for _, want := range []rune{'a', 'b', 'A', 'B', ' '} {
		if !found[want] {
			t.Errorf("Char('5') missing expected candidate %q, got %v", want, got)
		}
	}
}

func TestCharSpaceOffersLettersAndDigits(t *testing.T) {
	got := Char(' ')
	want := map[rune]bool{'a': true, 'b': true, 'A': true, 'B': true, '1': true, '2': true}
	if len(got) != len(want) {
		t.Fatalf("Char(' ') = %v, want exactly %v", got, want)
	}
	for _, x := range got {
		if !want[x] {
			t.Errorf("Char(' ') produced unexpected candidate %q", x)
		}
	}
}

func TestCharDeduplicates(t *testing.T) {
	got := Char('C')
	seen := map[rune]bool{}
	for _, x := range got {
		if seen[x] {
			t.Fatalf("Char('C') produced duplicate candidate %q: %v", x, got)
		}
		seen[x] = true
	}
}
