// core/oligo/oligo.go
package oligo

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"hairpin/core/fasta"
	"hairpin/core/nucleotide"
)

// Oligo is a named sequence (5'→3') to evaluate.
type Oligo struct {
	ID  string
	Seq string
}

// ParseInline parses "ID:SEQ" or "SEQ". Unnamed oligos are numbered from
// idx (0-based) as O1, O2, ...
func ParseInline(spec string, idx int) (Oligo, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Oligo{}, fmt.Errorf("empty oligo at position %d", idx+1)
	}
	id := ""
	seq := spec
	if k := strings.IndexByte(spec, ':'); k >= 0 {
		id = strings.TrimSpace(spec[:k])
		seq = strings.TrimSpace(spec[k+1:])
	}
	if id == "" {
		id = fmt.Sprintf("O%d", idx+1)
	}
	norm, err := nucleotide.Validate(seq)
	if err != nil {
		return Oligo{}, fmt.Errorf("oligo %q: %w", spec, err)
	}
	return Oligo{ID: id, Seq: norm}, nil
}

// ReadTSV reads one oligo per line: "seq" or "id seq". Blank lines and
// lines starting with '#' are skipped. name labels error messages.
func ReadTSV(r io.Reader, name string) ([]Oligo, error) {
	var list []Oligo
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		var id, raw string
		switch len(fields) {
		case 1:
			id, raw = fmt.Sprintf("O%d", len(list)+1), fields[0]
		case 2:
			id, raw = fields[0], fields[1]
		default:
			return nil, fmt.Errorf("%s:%d: expected 1 or 2 columns (id seq), got %d", name, ln, len(fields))
		}
		norm, err := nucleotide.Validate(raw)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		list = append(list, Oligo{ID: id, Seq: norm})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadTSV opens path (plain, gzip or "-") and reads it with ReadTSV.
func LoadTSV(path string) ([]Oligo, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadTSV(rc, path)
}

// FromRecord validates a FASTA record as an oligo.
func FromRecord(r fasta.Record) (Oligo, error) {
	norm, err := nucleotide.Validate(r.Seq)
	if err != nil {
		return Oligo{}, fmt.Errorf("record %q: %w", r.ID, err)
	}
	return Oligo{ID: r.ID, Seq: norm}, nil
}
