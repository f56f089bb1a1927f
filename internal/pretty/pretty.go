package pretty

import (
	"fmt"
	"strings"

	"hairpin/core/hairpin"
)

// Options control the ASCII rendering.
type Options struct {
	// Glyphs for a pair through concrete bases and through an ambiguity code.
	ExactGlyph   string // default "|"
	PartialGlyph string // default "¦"

	// Append a one-line energy summary under the drawing.
	ShowSummary bool
}

// DefaultOptions keeps the standard look.
var DefaultOptions = Options{
	ExactGlyph:   "|",
	PartialGlyph: "¦",
	ShowSummary:  true,
}

const (
	linePrefix = "# "
	prefixPlus = "5'-"
	prefixBars = "   "
	prefixBack = "3'-"
)

func isACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }

// bars redraws the binding line, marking stem pairs whose matched base is
// still ambiguous with the partial glyph.
func bars(c *hairpin.Candidate, exact, partial string) string {
	var b strings.Builder
	b.Grow(len(c.Binding))
	for i := 0; i < len(c.Binding); i++ {
		ch := c.Binding[i]
		if ch != '|' {
			b.WriteByte(ch)
			continue
		}
		k := i - c.RunStart
		if k >= 0 && k < len(c.Match) && !isACGT(c.Match[k]) {
			b.WriteString(partial)
		} else {
			b.WriteString(exact)
		}
	}
	return b.String()
}

// RenderFold prints the winning fold of r as a commented block, 5' arm on
// top and 3' arm underneath, followed by a blank line.
func RenderFold(r hairpin.Result, opt Options) string {
	c := r.Best
	if c == nil {
		return linePrefix + "(no hairpin)\n\n"
	}
	exact := opt.ExactGlyph
	if exact == "" {
		exact = DefaultOptions.ExactGlyph
	}
	partial := opt.PartialGlyph
	if partial == "" {
		partial = DefaultOptions.PartialGlyph
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, prefixPlus, c.Upper)
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, prefixBars, bars(c, exact, partial))
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, prefixBack, c.Lower)
	if opt.ShowSummary {
		loop := "n/a"
		if c.LoopTabulated {
			loop = fmt.Sprintf("%.2f", c.LoopDG)
		}
		fmt.Fprintf(&b, "%sloop %d nt (%s), stem %d bp (%.2f), dG %.2f\n",
			linePrefix, c.LoopLen, loop, c.StemLen(), c.StemDG, c.TotalDG)
	}
	b.WriteByte('\n')
	return b.String()
}
