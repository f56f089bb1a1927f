// core/hairpin/candidate.go
package hairpin

import (
	"strconv"
	"strings"
)

// FieldSep joins the fields of a result description.
const FieldSep = ":;:"

// Candidate is one hypothesized fold: a pairing run [RunStart,RunEnd) on the
// diagonal at Offset, with the stem/loop boundary placed at Trim.
type Candidate struct {
	Offset   int
	RunStart int
	RunEnd   int
	Trim     int

	LoopLen int
	LoopDG  float64
	StemDG  float64
	TotalDG float64

	// LoopTabulated is false when LoopLen had no table entry and LoopDG
	// defaulted to zero.
	LoopTabulated bool

	Upper   string // 5' arm, right-aligned toward the fold
	Binding string // '|' per stem pair, then the vertex mark
	Lower   string // 3' arm read backwards
	Match   string // paired upper-arm bases (IUPAC)
}

// StemLen is the number of base pairs in the stem.
func (c Candidate) StemLen() int { return c.Trim - c.RunStart }

// Description renders loop length, loop dG, stem dG and the three drawing
// lines joined with FieldSep.
func (c Candidate) Description() string {
	loop := "0"
	if c.LoopTabulated {
		loop = formatEnergy(c.LoopDG)
	}
	return strings.Join([]string{
		strconv.Itoa(c.LoopLen),
		loop,
		formatEnergy(c.StemDG),
		c.Upper,
		c.Binding,
		c.Lower,
	}, FieldSep)
}

// Diagram returns the fold as three aligned lines.
func (c Candidate) Diagram() string {
	return c.Upper + "\n" + c.Binding + "\n" + c.Lower
}

// formatEnergy prints the shortest round-trip form, keeping one decimal
// for integral values (3 → "3.0").
func formatEnergy(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// round2 rounds half-to-even on the exact binary value, to 2 decimals.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
