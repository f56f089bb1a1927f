// pkg/api/hairpin_v1.go
package api

// HairpinV1 is the stable JSON/JSONL schema for one evaluated sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HairpinV1 struct {
	ID          string  `json:"id"`
	Seq         string  `json:"seq"`
	Length      int     `json:"length"`
	IsHairpin   bool    `json:"is_hairpin"`
	DG          float64 `json:"dg"`
	Description string  `json:"description,omitempty"`
	Fold        *FoldV1 `json:"fold,omitempty"`
}

// FoldV1 describes the winning fold. Positions index the binding line.
type FoldV1 struct {
	Offset    int     `json:"offset"`
	StemStart int     `json:"stem_start"`
	StemEnd   int     `json:"stem_end"`
	StemLen   int     `json:"stem_len"`
	LoopLen   int     `json:"loop_len"`
	LoopDG    float64 `json:"loop_dg"`
	StemDG    float64 `json:"stem_dg"`
	Match     string  `json:"match"`
	Upper     string  `json:"upper"`
	Binding   string  `json:"binding"`
	Lower     string  `json:"lower"`
}
