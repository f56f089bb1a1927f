package nucleotide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask_Snapshot(t *testing.T) {
	// Spot check canonical bases
	if MaskOf('A') != 1 || MaskOf('C') != 2 || MaskOf('G') != 4 || MaskOf('T') != 8 {
		t.Fatalf("canonical masks corrupted: A=%d C=%d G=%d T=%d", MaskOf('A'), MaskOf('C'), MaskOf('G'), MaskOf('T'))
	}
	// U must behave like T
	if MaskOf('U') != MaskOf('T') || MaskOf('u') != MaskOf('t') {
		t.Fatalf("U/u must equal T/t")
	}
	if MaskOf('R') != (1|4) || MaskOf('Y') != (2|8) || MaskOf('N') != (1|2|4|8) {
		t.Fatalf("ambiguity masks corrupted: R=%d Y=%d N=%d", MaskOf('R'), MaskOf('Y'), MaskOf('N'))
	}
	if MaskOf('r') != MaskOf('R') || MaskOf('n') != MaskOf('N') {
		t.Fatalf("lowercase masks must mirror uppercase")
	}
	if MaskOf('X') != 0 {
		t.Fatalf("unknown byte must map to 0")
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'A', 'T', true},
		{'A', 'U', true},
		{'C', 'G', true},
		{'G', 'T', false}, // no wobble
		{'A', 'A', false},
		{'N', 'C', true},
		{'R', 'Y', true}, // A-T or G-C
		{'S', 'W', false},
		{'I', 'A', true}, // inosine pairs A, C, T
		{'I', 'C', true},
		{'I', 'T', true},
		{'I', 'G', false},
		{'X', 'A', false},
	}
	for _, tt := range tests {
		if got := Pairs(tt.a, tt.b); got != tt.want {
			t.Errorf("Pairs(%q,%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := Pairs(tt.b, tt.a); got != tt.want {
			t.Errorf("Pairs(%q,%q) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	seq := "ACGTRYSWKMBDHVN"
	assert.Equal(t, seq, Decode(Encode(seq)))
	assert.Equal(t, "T", Decode(Encode("U")))
	assert.Equal(t, "D", Decode(Encode("I")))
	assert.Equal(t, "-", Decode(Encoded{0}))
}

func TestEncodeComplement_AndIsPairing(t *testing.T) {
	fw := Encode("ACGTN")
	rc := EncodeComplement("TGCAA")
	want := []bool{true, true, true, true, true}
	for i := range fw {
		assert.Equal(t, want[i], fw[i]&rc[i] != 0, "pos %d", i)
	}
	// The AND of a pairing keeps the upper-strand identity.
	assert.Equal(t, "ACGTT", Decode(Encoded{fw[0] & rc[0], fw[1] & rc[1], fw[2] & rc[2], fw[3] & rc[3], fw[4] & rc[4]}))
}

func TestIsNucleotide(t *testing.T) {
	for _, b := range []byte("ACGTUacgtu") {
		assert.True(t, IsNucleotide(b), string(b))
	}
	for _, b := range []byte("NIRYSWKMBDHV-X") {
		assert.False(t, IsNucleotide(b), string(b))
	}
}
