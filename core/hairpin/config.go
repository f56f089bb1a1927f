// core/hairpin/config.go
package hairpin

import (
	"errors"
	"fmt"
	"strings"

	"hairpin/core/thermo"
)

var (
	// ErrInvalidInput reports a sequence too short for the configured
	// minimum stem/loop geometry.
	ErrInvalidInput = errors.New("hairpin: invalid input")
	// ErrInvalidConfig reports non-positive or inconsistent parameters.
	ErrInvalidConfig = errors.New("hairpin: invalid config")
)

// TieBreak decides which of two folds with the same rounded dG is reported.
type TieBreak int

const (
	// TieLastWins keeps the fold found last in scan order
	// (offsets ascending, runs left to right, trims descending).
	TieLastWins TieBreak = iota
	// TieShorterLoop keeps the fold with the shorter loop, then the earlier one.
	TieShorterLoop
)

func (t TieBreak) String() string {
	switch t {
	case TieLastWins:
		return "last"
	case TieShorterLoop:
		return "shorter-loop"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak accepts "last" or "shorter-loop".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return TieLastWins, nil
	case "shorter-loop", "shorter", "loop":
		return TieShorterLoop, nil
	}
	return 0, fmt.Errorf("%w: unknown tie-break %q (want last | shorter-loop)", ErrInvalidConfig, s)
}

// Config controls the fold search.
type Config struct {
	MinimumBindLen int // shortest contiguous pairing run that seeds a stem
	MinStem        int // shortest stem reported
	MinLoop        int // shortest loop (bases nearest the fold cannot pair)
	MaxLoop        int // longest loop considered
	TieBreak       TieBreak
}

// DefaultConfig returns the standard geometry (stem ≥ 3, loop 3..30).
func DefaultConfig(minimumBindLen int) Config {
	return Config{
		MinimumBindLen: minimumBindLen,
		MinStem:        3,
		MinLoop:        3,
		MaxLoop:        30,
	}
}

// MinSeqLen is the shortest sequence that can close a hairpin.
func (c Config) MinSeqLen() int { return 2*c.MinStem + c.MinLoop }

func (c Config) check() error {
	switch {
	case c.MinimumBindLen <= 0:
		return fmt.Errorf("%w: minimum bind length must be > 0 (got %d)", ErrInvalidConfig, c.MinimumBindLen)
	case c.MinStem <= 0:
		return fmt.Errorf("%w: min stem must be > 0 (got %d)", ErrInvalidConfig, c.MinStem)
	case c.MinLoop <= 0:
		return fmt.Errorf("%w: min loop must be > 0 (got %d)", ErrInvalidConfig, c.MinLoop)
	case c.MaxLoop <= 0:
		return fmt.Errorf("%w: max loop must be > 0 (got %d)", ErrInvalidConfig, c.MaxLoop)
	case c.MinLoop > c.MaxLoop:
		return fmt.Errorf("%w: min loop %d exceeds max loop %d", ErrInvalidConfig, c.MinLoop, c.MaxLoop)
	case c.TieBreak != TieLastWins && c.TieBreak != TieShorterLoop:
		return fmt.Errorf("%w: unknown tie-break %d", ErrInvalidConfig, int(c.TieBreak))
	}
	return nil
}

// Calculator evaluates hairpin folds for one Config and one set of energy
// tables. It holds no per-call state and is safe for concurrent use.
type Calculator struct {
	cfg    Config
	tables *thermo.Tables

	pass     int // trailing bases that can never start a stem
	loopWing int // half of the minimum loop, rounded up
}

// NewCalculator validates cfg and precomputes derived constants.
// A nil tables uses thermo.Default().
func NewCalculator(cfg Config, tables *thermo.Tables) (*Calculator, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if tables == nil {
		tables = thermo.Default()
	}
	wing := (cfg.MinLoop + 1) / 2
	return &Calculator{
		cfg:      cfg,
		tables:   tables,
		pass:     cfg.MinStem + wing,
		loopWing: wing,
	}, nil
}

// Config returns the calculator's configuration.
func (c *Calculator) Config() Config { return c.cfg }

// Validate rejects sequences shorter than 2*MinStem + MinLoop.
func (c *Calculator) Validate(seqLen int) error {
	if need := c.cfg.MinSeqLen(); seqLen < need {
		return fmt.Errorf("%w: minimum seq length is %d, but the given seq length is %d", ErrInvalidInput, need, seqLen)
	}
	return nil
}
