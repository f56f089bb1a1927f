// core/hairpin/stem.go
package hairpin

import "hairpin/core/nucleotide"

// StemDG sums nearest-neighbor stem energies over adjacent pairs of a
// concrete sequence. Unknown pairs contribute 0.
func (c *Calculator) StemDG(seq string) float64 {
	dg := 0.0
	for i := 0; i+1 < len(seq); i++ {
		dg += c.tables.StemDG(seq[i : i+2])
	}
	return dg
}

// MaxStemDGFromMatch returns the strongest stem energy over every concrete
// resolution of the ambiguous symbols in match (N and I included), or 0.
//
// This equals the maximum of StemDG over nucleotide.Decompose(match) but is
// computed position by position, keeping for each concrete base the best
// prefix sum ending in it, so runs of N stay linear.
func (c *Calculator) MaxStemDGFromMatch(match string) float64 {
	if len(match) == 0 {
		return 0
	}
	prevAlts := nucleotide.Alternatives(match[0], nucleotide.DecomposeAll)
	prev := make([]float64, len(prevAlts))
	pair := make([]byte, 2)
	for i := 1; i < len(match); i++ {
		alts := nucleotide.Alternatives(match[i], nucleotide.DecomposeAll)
		cur := make([]float64, len(alts))
		for bi, b := range alts {
			best := 0.0
			for ai, a := range prevAlts {
				pair[0], pair[1] = a, b
				v := prev[ai] + c.tables.StemDG(string(pair))
				if ai == 0 || v > best {
					best = v
				}
			}
			cur[bi] = best
		}
		prevAlts, prev = alts, cur
	}
	best := 0.0
	for _, v := range prev {
		if v > best {
			best = v
		}
	}
	return best
}

// MaxStemDG computes the maximum stem energy for two independently given
// arms aligned position by position: seqUp 5'→3' and seqDw its partner read
// in the same direction. A concrete upper base is used as-is; otherwise a
// concrete lower base contributes its complement; when both are ambiguous
// their shared resolutions decide: one shared base is used, several keep the
// upper code unresolved, none drops the position.
func (c *Calculator) MaxStemDG(seqUp, seqDw string) float64 {
	n := min(len(seqUp), len(seqDw))
	cal := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		up, dw := seqUp[i], seqDw[i]
		switch {
		case nucleotide.IsNucleotide(up):
			cal = append(cal, nucleotide.Alternatives(up, nucleotide.DecomposeAll)[0])
		case nucleotide.IsNucleotide(dw):
			cal = append(cal, nucleotide.Alternatives(nucleotide.Complement(dw), nucleotide.DecomposeAll)[0])
		default:
			shared := intersect(
				nucleotide.Alternatives(up, nucleotide.DecomposeAll),
				nucleotide.Alternatives(dw, nucleotide.DecomposeAll),
			)
			switch len(shared) {
			case 0:
			case 1:
				cal = append(cal, shared[0])
			default:
				cal = append(cal, up)
			}
		}
	}
	return c.MaxStemDGFromMatch(string(cal))
}

func intersect(a, b []byte) []byte {
	var out []byte
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
