// core/nucleotide/rc.go
package nucleotide

var complement [256]byte

func init() {
	pairs := [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'R', 'Y'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'B', 'V'}, {'D', 'H'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p[0]], complement[p[1]] = p[1], p[0]
		complement[p[0]|0x20], complement[p[1]|0x20] = p[1]|0x20, p[0]|0x20
	}
	complement['U'], complement['u'] = 'A', 'a'
	complement['I'], complement['i'] = 'H', 'h'
}

// Complement returns the IUPAC complement of b ('N' for unknown bytes).
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// Reverse returns seq read 3'→5'.
func Reverse(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = seq[n-1-i]
	}
	return string(out)
}

// ReverseComplement returns the reverse-complement of an IUPAC sequence.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return string(out)
}
