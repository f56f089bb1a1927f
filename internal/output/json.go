// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"hairpin/internal/pipeline"
	"hairpin/pkg/api"
)

// ToAPI converts an outcome to the stable wire schema (v1).
func ToAPI(o pipeline.Outcome) api.HairpinV1 {
	v := api.HairpinV1{
		ID:          o.Oligo.ID,
		Seq:         o.Oligo.Seq,
		Length:      len(o.Oligo.Seq),
		IsHairpin:   o.Result.IsHairpin,
		DG:          o.Result.DG,
		Description: o.Result.Description,
	}
	if c := o.Result.Best; c != nil {
		v.Fold = &api.FoldV1{
			Offset:    c.Offset,
			StemStart: c.RunStart,
			StemEnd:   c.Trim,
			StemLen:   c.StemLen(),
			LoopLen:   c.LoopLen,
			LoopDG:    c.LoopDG,
			StemDG:    c.StemDG,
			Match:     c.Match,
			Upper:     c.Upper,
			Binding:   c.Binding,
			Lower:     c.Lower,
		}
	}
	return v
}

func toAPIList(list []pipeline.Outcome) []api.HairpinV1 {
	out := make([]api.HairpinV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPI(o))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPIList(list))
}
