// core/hairpin/scan.go
package hairpin

import (
	"context"
	"strings"

	"hairpin/core/nucleotide"
)

// Scan enumerates every fold candidate of seq and hands each to visit, in
// order: diagonal offsets ascending, runs left to right, trims descending.
// A non-nil error from visit stops the scan and is returned. ctx is checked
// between diagonals.
//
// The pairing matrix M[j][i] = F[i] & R[j] compares the forward encoding F
// with the complement encoding R of the reversed sequence, both trimmed by
// pass bases. Each diagonal is one fold geometry; its offset is the length
// difference between the two arms.
func (c *Calculator) Scan(ctx context.Context, seq string, visit func(Candidate) error) error {
	L := len(seq)
	if err := c.Validate(L); err != nil {
		return err
	}
	n := L - c.pass
	rev := nucleotide.Reverse(seq)
	fw := nucleotide.Encode(seq[:n])
	rc := nucleotide.EncodeComplement(rev[:n])

	reach := L - c.cfg.MinSeqLen()
	diag := make(nucleotide.Encoded, 0, n)
	bind := make([]bool, 0, L)

	for k := 0; k <= 2*reach; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := k - reach
		ad := abs(d)

		diag = diagonal(diag[:0], fw, rc, d)
		overlap := (len(diag) + c.pass) / 2
		foldAt := overlap + max(d, 0)
		total := overlap + ad

		// An odd-length fold has a single unpaired base at its vertex. The
		// parity flips with every offset.
		vertex := (c.cfg.MinLoop & 1) ^ (k & 1)

		// Unmatched offset region on the left, then the pairing pattern.
		bind = bind[:0]
		for i := 0; i < ad; i++ {
			bind = append(bind, false)
		}
		for i := 0; i < overlap; i++ {
			bind = append(bind, diag[i] != 0)
		}
		// Bases adjacent to the fold are held apart by the minimum loop.
		for i := max(total-(c.loopWing-vertex), 0); i < total; i++ {
			bind[i] = false
		}

		var upper, lower, vertexMark string
		for _, r := range runs(bind, c.cfg.MinimumBindLen) {
			if upper == "" {
				upper = padLeft(seq[:foldAt], total)
				lower = padLeft(rev[:L-foldAt-vertex], total)
				vertexMark = "]"
				if vertex == 1 {
					vertexMark = seq[foldAt : foldAt+1]
				}
			}
			for t := r.end; t >= r.start+c.cfg.MinStem; t-- {
				loopLen := L - 2*t + ad
				if loopLen > c.cfg.MaxLoop {
					break
				}
				match := nucleotide.Decode(diag[r.start-ad : t-ad])
				loopDG := c.tables.LoopDG(loopLen)
				stemDG := c.MaxStemDGFromMatch(match)
				cand := Candidate{
					Offset:        d,
					RunStart:      r.start,
					RunEnd:        r.end,
					Trim:          t,
					LoopLen:       loopLen,
					LoopDG:        loopDG,
					StemDG:        stemDG,
					TotalDG:       round2(loopDG - stemDG),
					LoopTabulated: c.tables.HasLoop(loopLen),
					Upper:         upper,
					Binding:       bindingLine(r.start, t, total, vertexMark),
					Lower:         lower,
					Match:         match,
				}
				if err := visit(cand); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Candidates collects every candidate Scan yields.
func (c *Calculator) Candidates(ctx context.Context, seq string) ([]Candidate, error) {
	var out []Candidate
	err := c.Scan(ctx, seq, func(cand Candidate) error {
		out = append(out, cand)
		return nil
	})
	return out, err
}

// diagonal appends the offset-d diagonal of the pairing matrix to dst.
// Element x is F[x+d] & R[x] for d ≥ 0 and F[x] & R[x-d] for d < 0.
func diagonal(dst, fw, rc nucleotide.Encoded, d int) nucleotide.Encoded {
	if d >= 0 {
		for x := 0; x+d < len(fw) && x < len(rc); x++ {
			dst = append(dst, fw[x+d]&rc[x])
		}
		return dst
	}
	for x := 0; x < len(fw) && x-d < len(rc); x++ {
		dst = append(dst, fw[x]&rc[x-d])
	}
	return dst
}

type run struct{ start, end int }

// runs returns the maximal stretches of true values at least minLen long.
func runs(bind []bool, minLen int) []run {
	var out []run
	for i := 0; i < len(bind); {
		if !bind[i] {
			i++
			continue
		}
		j := i
		for j < len(bind) && bind[j] {
			j++
		}
		if j-i >= minLen {
			out = append(out, run{i, j})
		}
		i = j
	}
	return out
}

func bindingLine(s, t, total int, vertexMark string) string {
	var b strings.Builder
	b.Grow(total + len(vertexMark))
	b.WriteString(strings.Repeat(" ", s))
	b.WriteString(strings.Repeat("|", t-s))
	b.WriteString(strings.Repeat(" ", total-t))
	b.WriteString(vertexMark)
	return b.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
