package gencheck

// TB is the subset of *testing.T (and *testing.B) that Check needs —
// narrowed to an interface so callers outside of `go test` could satisfy
// it with their own adapter if they wanted the same Logf/Fatalf reporting
// shape.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
}

// Check drives prop through Drive and reports the result to t: Logf with
// the console report on success (cfg.Verbose does not change this),
// Fatalf with the full console report on failure — the library's
// user-facing assertion helper, spec.md §4.4's `check` and §6's `Check`.
//
//	gencheck.Check(t, "min commutes", gencheck.DefaultConfig(),
//		gencheck.Product(gencheck.ForAll[int](r), gencheck.ForAll[int](r), pair),
//		func(p [2]int) bool { return min(p[0], p[1]) == min(p[1], p[0]) })
func Check[T any](t TB, label string, cfg Config, prop Prop[T], condition func(T) bool) *Report[T] {
	t.Helper()
	rep := Drive(label, cfg, prop, condition)
	if rep.Failed {
		t.Fatalf("%s", rep.ConsoleText)
		return rep
	}
	t.Logf("%s", rep.ConsoleText)
	return rep
}
