package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairpin/core/hairpin"
)

// isolate keeps a developer's own ~/.config/hairpin out of the tests.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	cfg, err := s.HairpinConfig()
	require.NoError(t, err)
	assert.Equal(t, hairpin.DefaultConfig(3), cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min-bind: 4\nmax-loop: 12\ntie: shorter-loop\noutput: jsonl\nheader: false\n"), 0o644))

	s, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.MinBind)
	assert.Equal(t, 12, s.MaxLoop)
	assert.Equal(t, 3, s.MinStem)
	assert.Equal(t, "jsonl", s.Output)
	assert.False(t, s.Header)

	cfg, err := s.HairpinConfig()
	require.NoError(t, err)
	assert.Equal(t, hairpin.TieShorterLoop, cfg.TieBreak)
}

func TestLoad_SearchPath(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "hairpin")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hairpin.yaml"), []byte("threads: 2\n"), 0o644))

	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Threads)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"min-bind": 4}`), 0o644))
	t.Setenv("HAIRPIN_MIN_BIND", "6")
	t.Setenv("HAIRPIN_ONLY_HAIRPINS", "true")

	s, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.MinBind)
	assert.True(t, s.OnlyHairpins)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	v := New()
	v.Set("output", "xml")
	_, err = Load(v, "")
	assert.ErrorContains(t, err, "--output")

	v = New()
	v.Set("threads", -1)
	_, err = Load(v, "")
	assert.ErrorContains(t, err, "--threads")
}

func TestHairpinConfig_BadTie(t *testing.T) {
	s := Default()
	s.Tie = "first"
	_, err := s.HairpinConfig()
	assert.ErrorIs(t, err, hairpin.ErrInvalidConfig)
}

func TestKeep(t *testing.T) {
	hp := hairpin.Result{IsHairpin: true, DG: -2}
	weak := hairpin.Result{IsHairpin: true, DG: 1.5}

	s := Default()
	assert.True(t, s.Keep(hp))
	assert.True(t, s.Keep(hairpin.NoHairpin))

	s.OnlyHairpins = true
	assert.False(t, s.Keep(hairpin.NoHairpin))

	s.MaxDG = 0
	assert.True(t, s.Keep(hp))
	assert.False(t, s.Keep(weak))
}
