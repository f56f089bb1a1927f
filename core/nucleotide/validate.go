// core/nucleotide/validate.go
package nucleotide

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate returns a normalized sequence or an error if any char is not an
// IUPAC nucleotide code (U and I included).
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if forwardMask[s[i]] == 0 {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T U I R Y S W K M B D H V N", s[i], i+1)
		}
	}
	return s, nil
}
