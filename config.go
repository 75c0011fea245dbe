package gencheck

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/shipq/gencheck/inifile"
	"github.com/shipq/gencheck/rng"
)

// Config controls a Check run's trial count, reproducibility seed, size
// budget, and logging — generalized from db/proptest/runner.go's Config.
type Config struct {
	// NumTrials is the number of Generate-phase iterations. Default: 100.
	NumTrials int

	// Seed is the random seed for reproducibility. 0 means "derive one"
	// (from gencheck.ini's seed or wall-clock). GENCHECK_SEED, when set,
	// overrides it either way.
	Seed int64

	// InitialSize is the Generate phase's starting size budget (spec.md
	// §4.5: "size = 10"). Default: 10.
	InitialSize rng.Size

	// Verbose is carried in the config but is not read by Drive or Check;
	// it does not change what is reported.
	Verbose bool

	// Logger receives Debug-level phase-transition and shrink-step traces.
	// Nil disables tracing.
	Logger *slog.Logger
}

// DefaultConfig returns spec.md's defaults: 100 trials, size 10, seed
// derived at run time.
func DefaultConfig() Config {
	return Config{NumTrials: 100, Seed: 0, InitialSize: 10}
}

// iniDefaults holds whatever gencheck.ini supplies, to be merged beneath
// explicit Config fields.
type iniDefaults struct {
	numTrials   int
	seed        int64
	initialSize rng.Size
}

// loadINIDefaults reads ./gencheck.ini's [check] section, supplementing
// db/proptest's pure-env-var config with the file-based settings pattern
// internal/config used (shipq.ini via inifile) — kept here as the
// optional second layer of defaults. A missing or malformed file yields
// the zero iniDefaults and ok=false; this is not an error, just "no file
// present". Each field is read through inifile's typed Section.GetInt/
// GetInt64 rather than hand-rolled strconv calls, so a malformed value
// for one key falls through to its own default without affecting the
// others.
func loadINIDefaults() (iniDefaults, bool) {
	var d iniDefaults
	f, err := inifile.ParseFile("gencheck.ini")
	if err != nil {
		return d, false
	}
	section := f.Section("check")
	if section == nil {
		return d, false
	}
	if n, ok := section.GetInt("num_trials"); ok {
		d.numTrials = n
	}
	if n, ok := section.GetInt64("seed"); ok {
		d.seed = n
	}
	if n, ok := section.GetInt("initial_size"); ok {
		d.initialSize = rng.Size(n)
	}
	return d, true
}

// effectiveConfig fills in zero fields of cfg from gencheck.ini, then from
// DefaultConfig — explicit Config fields always win over the file, and
// the file always wins over the built-in default.
func effectiveConfig(cfg Config) Config {
	defaults := DefaultConfig()
	if ini, ok := loadINIDefaults(); ok {
		if ini.numTrials > 0 {
			defaults.NumTrials = ini.numTrials
		}
		if ini.seed != 0 {
			defaults.Seed = ini.seed
		}
		if ini.initialSize > 0 {
			defaults.InitialSize = ini.initialSize
		}
	}
	if cfg.NumTrials <= 0 {
		cfg.NumTrials = defaults.NumTrials
	}
	if cfg.InitialSize <= 0 {
		cfg.InitialSize = defaults.InitialSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaults.Seed
	}
	return cfg
}

// getEffectiveSeed returns the seed to use, checking GENCHECK_SEED first —
// the same env-var-wins-over-explicit-config precedence as db/proptest's
// PROPTEST_SEED (DESIGN.md Open Question #4): a seed forced via the
// environment to reproduce a known-bad run must not be silently
// overridden by whatever the call site passes.
func getEffectiveSeed(cfg Config) int64 {
	if envSeed := os.Getenv("GENCHECK_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}
