// core/nucleotide/decompose.go
package nucleotide

// DecomposeOptions selects which wildcard symbols are expanded. Other IUPAC
// ambiguity codes are always expanded.
type DecomposeOptions struct {
	Inosine bool // expand I to A/C/G/T
	N       bool // expand N to A/C/G/T
}

// DecomposeAll expands both wildcards.
var DecomposeAll = DecomposeOptions{Inosine: true, N: true}

const concrete = "ACGT"

// Alternatives returns the concrete bases symbol b may resolve to, in A/C/G/T
// order. Concrete bases resolve to themselves (U as T); unknown bytes and
// unexpanded wildcards are returned as-is.
func Alternatives(b byte, opt DecomposeOptions) []byte {
	if b >= 'a' && b <= 'z' {
		b -= 0x20
	}
	switch b {
	case 'U':
		return []byte{'T'}
	case 'N':
		if !opt.N {
			return []byte{b}
		}
	case 'I':
		if !opt.Inosine {
			return []byte{b}
		}
		return []byte(concrete)
	}
	m := forwardMask[b]
	if m == 0 {
		return []byte{b}
	}
	out := make([]byte, 0, 4)
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 {
			out = append(out, concrete[i])
		}
	}
	return out
}

// Decompose enumerates every concrete sequence implied by the ambiguous
// symbols of seq. The result is ordered lexicographically by position and
// never contains duplicates. An empty seq yields a single empty string.
func Decompose(seq string, opt DecomposeOptions) []string {
	out := []string{""}
	for i := 0; i < len(seq); i++ {
		alts := Alternatives(seq[i], opt)
		next := make([]string, 0, len(out)*len(alts))
		for _, prefix := range out {
			for _, a := range alts {
				next = append(next, prefix+string(a))
			}
		}
		out = next
	}
	return out
}

// IsAmbiguous reports whether seq contains any symbol that is not a concrete base.
func IsAmbiguous(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !IsNucleotide(seq[i]) {
			return true
		}
	}
	return false
}
