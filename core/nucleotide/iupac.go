// core/nucleotide/iupac.go
package nucleotide

// Mask is a 4-bit base set: bit0=A bit1=C bit2=G bit3=T.
type Mask uint8

const (
	MaskA Mask = 1 << iota
	MaskC
	MaskG
	MaskT

	MaskN = MaskA | MaskC | MaskG | MaskT
)

// Encoded is one Mask per input symbol.
type Encoded []Mask

/* -------------------------- IUPAC lookup tables ------------------------- */

var (
	forwardMask    [256]Mask // bases a symbol stands for
	complementMask [256]Mask // bases a symbol pairs with
	maskSymbol     [16]byte  // canonical IUPAC code for a base set
)

func init() {
	set := func(c byte, m Mask) {
		forwardMask[c] = m
		forwardMask[c|0x20] = m // lowercase mirrors uppercase
	}
	set('A', MaskA)
	set('C', MaskC)
	set('G', MaskG)
	set('T', MaskT)
	set('U', MaskT)
	set('R', MaskA|MaskG)
	set('Y', MaskC|MaskT)
	set('S', MaskC|MaskG)
	set('W', MaskA|MaskT)
	set('K', MaskG|MaskT)
	set('M', MaskA|MaskC)
	set('B', MaskC|MaskG|MaskT)
	set('D', MaskA|MaskG|MaskT)
	set('H', MaskA|MaskC|MaskT)
	set('V', MaskA|MaskC|MaskG)
	set('N', MaskN)
	// Inosine pairs with A, C and T, so it stands for their complements.
	set('I', MaskA|MaskG|MaskT)

	for c := 0; c < 256; c++ {
		complementMask[c] = swapStrands(forwardMask[c])
	}

	maskSymbol = [16]byte{
		'-', 'A', 'C', 'M', 'G', 'R', 'S', 'V',
		'T', 'W', 'Y', 'H', 'K', 'D', 'B', 'N',
	}
}

// swapStrands maps a base set to the set of its Watson-Crick partners
// (A<->T, C<->G), i.e. it reverses the four bits.
func swapStrands(m Mask) Mask {
	return (m&MaskA)<<3 | (m&MaskC)<<1 | (m&MaskG)>>1 | (m&MaskT)>>3
}

// MaskOf returns the forward base set of symbol b (0 for non-IUPAC bytes).
func MaskOf(b byte) Mask { return forwardMask[b] }

// Symbol returns the IUPAC code of m ('-' for the empty set).
func (m Mask) Symbol() byte { return maskSymbol[m&MaskN] }

// Encode maps each symbol of seq to the base set it stands for.
func Encode(seq string) Encoded {
	out := make(Encoded, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = forwardMask[seq[i]]
	}
	return out
}

// EncodeComplement maps each symbol of seq to the base set it can pair with,
// so Encode(a)[i] & EncodeComplement(b)[j] != 0 exactly when a[i] pairs b[j].
func EncodeComplement(seq string) Encoded {
	out := make(Encoded, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complementMask[seq[i]]
	}
	return out
}

// Decode renders masks back to IUPAC symbols.
func Decode(enc Encoded) string {
	b := make([]byte, len(enc))
	for i, m := range enc {
		b[i] = m.Symbol()
	}
	return string(b)
}

// IsNucleotide reports whether b is a concrete base (A, C, G, T or U).
func IsNucleotide(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T', 'U', 'a', 'c', 'g', 't', 'u':
		return true
	}
	return false
}

// Pairs reports whether symbols a and b can form a Watson-Crick pair.
func Pairs(a, b byte) bool { return forwardMask[a]&complementMask[b] != 0 }
