// core/thermo/tables.go
// Hairpin energy tables (kcal/mol, 37 °C).
//
// Stem entries are nearest-neighbor stacking free energies from the
// SantaLucia (1998) unified set, stored as positive magnitudes keyed by the
// 5'→3' dinucleotide of the upper arm. Loop entries are hairpin loop
// initiation penalties keyed by loop length (SantaLucia & Hicks 2004).
//
// A hairpin's total dG is loop - stem, so a stronger stem lowers it.

package thermo

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed hairpin.json
var defaultJSON []byte

// Tables holds stem and loop free-energy lookups. It is read-only after
// construction and safe for concurrent use.
type Tables struct {
	stem map[string]float64
	loop map[int]float64
}

// New builds tables from explicit maps. Stem keys are upper-cased.
func New(stem map[string]float64, loop map[int]float64) *Tables {
	t := &Tables{
		stem: make(map[string]float64, len(stem)),
		loop: make(map[int]float64, len(loop)),
	}
	for k, v := range stem {
		t.stem[strings.ToUpper(k)] = v
	}
	for k, v := range loop {
		t.loop[k] = v
	}
	return t
}

// StemDG returns the stacking energy of a dinucleotide, or 0 if unknown.
func (t *Tables) StemDG(pair string) float64 { return t.stem[pair] }

// LoopDG returns the loop penalty for a loop of n bases, or 0 if unknown.
func (t *Tables) LoopDG(n int) float64 { return t.loop[n] }

// HasLoop reports whether a loop length has an explicit entry.
func (t *Tables) HasLoop(n int) bool {
	_, ok := t.loop[n]
	return ok
}

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(defaultJSON)); err != nil {
		return nil, err
	}
	return fromViper(v)
})

// Default returns the built-in tables.
func Default() *Tables {
	t, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("thermo: embedded tables: %v", err))
	}
	return t
}

// Load reads tables from a json, yaml or toml file with the same layout as
// the embedded hairpin.json (stem_dg_dict / loop_dg_dict).
func Load(path string) (*Tables, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("thermo: read %s: %w", path, err)
	}
	t, err := fromViper(v)
	if err != nil {
		return nil, fmt.Errorf("thermo: %s: %w", path, err)
	}
	return t, nil
}

type rawTables struct {
	Stem map[string]float64 `mapstructure:"stem_dg_dict"`
	Loop map[string]float64 `mapstructure:"loop_dg_dict"`
}

func fromViper(v *viper.Viper) (*Tables, error) {
	var raw rawTables
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode tables: %w", err)
	}
	if len(raw.Stem) == 0 {
		return nil, fmt.Errorf("stem_dg_dict is empty")
	}
	// viper lower-cases keys; New restores the dinucleotide case.
	loop := make(map[int]float64, len(raw.Loop))
	for k, dg := range raw.Loop {
		n, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("loop_dg_dict: bad loop length %q", k)
		}
		loop[n] = dg
	}
	return New(raw.Stem, loop), nil
}
