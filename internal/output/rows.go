// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"hairpin/internal/pipeline"
)

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// FormatRowTSV returns the TSV columns of one outcome (no trailing newline).
// Fold columns are empty when no hairpin was found.
func FormatRowTSV(o pipeline.Outcome) string {
	cols := []string{
		o.Oligo.ID,
		strconv.Itoa(len(o.Oligo.Seq)),
		strconv.FormatBool(o.Result.IsHairpin),
		formatFloat(o.Result.DG),
		"", "", "", "", "",
		o.Oligo.Seq,
	}
	if c := o.Result.Best; c != nil {
		cols[4] = strconv.Itoa(c.LoopLen)
		cols[5] = formatFloat(c.LoopDG)
		cols[6] = strconv.Itoa(c.StemLen())
		cols[7] = formatFloat(c.StemDG)
		cols[8] = c.Match
	}
	return strings.Join(cols, "\t")
}
