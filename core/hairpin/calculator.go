// core/hairpin/calculator.go
package hairpin

import (
	"context"

	"hairpin/core/thermo"
)

// NoHairpinDG is the dG reported when no fold satisfies the constraints.
const NoHairpinDG = 999.0

// Result is the outcome of one hairpin calculation.
type Result struct {
	IsHairpin   bool
	DG          float64 // minimum total dG, or NoHairpinDG
	Description string  // Candidate.Description of the winner, or ""
	Best        *Candidate
}

// NoHairpin is the sentinel result.
var NoHairpin = Result{DG: NoHairpinDG}

// selector keeps the minimum-energy candidate under a tie-break policy.
// With TieLastWins a later candidate replaces an equal one, which is what
// keying candidates by dG and overwriting on collision amounts to.
type selector struct {
	policy TieBreak
	best   Candidate
	found  bool
}

func (s *selector) offer(c Candidate) error {
	switch {
	case !s.found, c.TotalDG < s.best.TotalDG:
	case c.TotalDG > s.best.TotalDG:
		return nil
	case s.policy == TieLastWins:
	case s.policy == TieShorterLoop && c.LoopLen < s.best.LoopLen:
	default:
		return nil
	}
	s.best, s.found = c, true
	return nil
}

func (s *selector) result() Result {
	if !s.found {
		return NoHairpin
	}
	best := s.best
	return Result{
		IsHairpin:   true,
		DG:          best.TotalDG,
		Description: best.Description(),
		Best:        &best,
	}
}

// Calculate returns the most stable hairpin of seq. It fails with
// ErrInvalidInput when seq is shorter than 2*MinStem + MinLoop, and with
// ctx.Err() when ctx is cancelled mid-scan.
func (c *Calculator) Calculate(ctx context.Context, seq string) (Result, error) {
	sel := selector{policy: c.cfg.TieBreak}
	if err := c.Scan(ctx, seq, sel.offer); err != nil {
		return NoHairpin, err
	}
	return sel.result(), nil
}

// CalculateHairpinDG is Calculate without cancellation.
func (c *Calculator) CalculateHairpinDG(seq string) (Result, error) {
	return c.Calculate(context.Background(), seq)
}

// CalculateHairpinDG evaluates seq under cfg with the built-in tables.
func CalculateHairpinDG(seq string, cfg Config) (Result, error) {
	calc, err := NewCalculator(cfg, thermo.Default())
	if err != nil {
		return NoHairpin, err
	}
	return calc.CalculateHairpinDG(seq)
}
