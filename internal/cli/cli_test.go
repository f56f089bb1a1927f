package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairpin/internal/output"
	"hairpin/pkg/api"
)

const fixture = "CCCCGGAAACTGTCTGGCTGCTTTTTGCGGGG"

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := Run(argv, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func decodeJSON(t *testing.T, s string) []api.HairpinV1 {
	t.Helper()
	var v []api.HairpinV1
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestCalc_Text(t *testing.T) {
	code, out, errOut := run(t, "calc", fixture, "flat:AAAAAAAAAAAA")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, []string{
		output.TSVHeader,
		"O1\t32\ttrue\t-1.79\t22\t5.9\t5\t7.69\tCCCCG\t" + fixture,
		"flat\t12\tfalse\t999\t\t\t\t\t\tAAAAAAAAAAAA",
	}, lines(out))
	assert.Empty(t, errOut)
}

func TestCalc_NoHeaderPretty(t *testing.T) {
	code, out, _ := run(t, "calc", "--no-header", "--pretty", "x:GGACNAAAAANGTCC")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "x\t15\ttrue\t-3.45\t5\t3.3\t5\t6.75\tGGACN\tGGACNAAAAANGTCC\n"+
		"# 5'-GGACNAA\n"+
		"#    ||||¦  A\n"+
		"# 3'-CCTGNAA\n"+
		"# loop 5 nt (3.30), stem 5 bp (6.75), dG -3.45\n\n", out)
}

func TestCalc_TieBreakFlag(t *testing.T) {
	const seq = "GTCGTCGCGGACCTCGGTCGA"
	code, out, _ := run(t, "calc", "-o", "json", seq)
	require.Equal(t, ExitOK, code)
	last := decodeJSON(t, out)
	require.Len(t, last, 1)
	require.NotNil(t, last[0].Fold)
	assert.Equal(t, 0.76, last[0].DG)
	assert.Equal(t, 4, last[0].Fold.LoopLen)

	code, out, _ = run(t, "calc", "-o", "json", "--tie", "shorter-loop", seq)
	require.Equal(t, ExitOK, code)
	short := decodeJSON(t, out)
	require.Len(t, short, 1)
	assert.Equal(t, 0.76, short[0].DG)
	assert.Equal(t, 3, short[0].Fold.LoopLen)
	assert.Equal(t, "3:;:3.5:;:2.74:;:      GTCGTCG:;:         ||| C:;:AGCTGGCTCCAGG", short[0].Description)
}

func TestCalc_Filters(t *testing.T) {
	code, out, _ := run(t, "calc", "--only-hairpins", "--no-header", "a:"+fixture, "b:AAAAAAAAAAAA", "c:GTCGTCGCGGACCTCGGTCGA")
	require.Equal(t, ExitOK, code)
	assert.Len(t, lines(out), 2)

	code, out, _ = run(t, "calc", "--max-dg", "0", "--no-header", "a:"+fixture, "c:GTCGTCGCGGACCTCGGTCGA")
	require.Equal(t, ExitOK, code)
	got := lines(out)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "a\t"))
}

func TestCalc_MinBind(t *testing.T) {
	code, out, _ := run(t, "calc", "--min-bind", "6", "-o", "jsonl", "GGACGAAAAACGTCC")
	require.Equal(t, ExitOK, code)
	var v api.HairpinV1
	require.NoError(t, json.Unmarshal([]byte(lines(out)[0]), &v))
	assert.False(t, v.IsHairpin)
	assert.Equal(t, 999.0, v.DG)
}

func TestCalc_ShortSequenceWarns(t *testing.T) {
	code, out, errOut := run(t, "calc", "--no-header", "tiny:ACGTAC", fixture)
	require.Equal(t, ExitOK, code)
	assert.Len(t, lines(out), 1)
	assert.Contains(t, errOut, "WARN: tiny: hairpin: invalid input: minimum seq length is 9")

	_, _, errOut = run(t, "calc", "-q", "tiny:ACGTAC")
	assert.Empty(t, errOut)
}

func TestCalc_FailOnNone(t *testing.T) {
	code, _, errOut := run(t, "calc", "--fail-on-none", "AAAAAAAAAAAA")
	assert.Equal(t, ExitNone, code)
	assert.Empty(t, errOut)

	code, _, _ = run(t, "calc", "--fail-on-none", fixture)
	assert.Equal(t, ExitOK, code)
}

func TestUsageErrors(t *testing.T) {
	for name, argv := range map[string][]string{
		"bad base":     {"calc", "ACGTXACGT"},
		"no args":      {"calc"},
		"unknown flag": {"calc", "--nope", fixture},
		"unknown cmd":  {"fold", fixture},
		"bad output":   {"calc", "-o", "xml", fixture},
		"bad tie":      {"calc", "--tie", "first", fixture},
		"bad config":   {"calc", "--min-loop", "40", fixture},
		"bad tables":   {"calc", "--tables", "/nonexistent/tables.json", fixture},
		"missing file": {"scan", "/nonexistent/seqs.fa"},
	} {
		t.Run(name, func(t *testing.T) {
			code, out, errOut := run(t, argv...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, errOut, "error: ")
			assert.NotContains(t, out, "true")
		})
	}
}

func TestScan_FASTA(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqs.fa")
	fa := ">hp some description\n" + fixture[:16] + "\n" + fixture[16:] + "\n" +
		">bad\nACGTZZ\n" +
		">flat\nAAAAAAAAAAAA\n"
	require.NoError(t, os.WriteFile(path, []byte(fa), 0o644))

	code, out, errOut := run(t, "scan", "--no-header", "-t", "2", path)
	require.Equal(t, ExitOK, code, errOut)
	got := lines(out)
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0], "hp\t32\ttrue\t-1.79\t"))
	assert.True(t, strings.HasPrefix(got[1], "flat\t12\tfalse\t"))
	assert.Contains(t, errOut, "WARN: "+path+": record \"bad\"")
}

func TestScan_Oligos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oligos.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# id seq\np1\tGCGCGCTTTTTGCGCGC\nGGACGAAAAACGTCC\n"), 0o644))

	code, out, errOut := run(t, "scan", "--oligos", "-o", "jsonl", path)
	require.Equal(t, ExitOK, code, errOut)
	got := lines(out)
	require.Len(t, got, 2)
	var a, b api.HairpinV1
	require.NoError(t, json.Unmarshal([]byte(got[0]), &a))
	require.NoError(t, json.Unmarshal([]byte(got[1]), &b))
	assert.Equal(t, "p1", a.ID)
	assert.Equal(t, -7.76, a.DG)
	assert.Equal(t, "O2", b.ID)
	assert.Equal(t, -3.45, b.DG)
}

func TestSettingsLayers(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "hairpin.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: json\nonly-hairpins: true\n"), 0o644))

	code, out, _ := run(t, "calc", "--config", cfg, "a:"+fixture, "b:AAAAAAAAAAAA")
	require.Equal(t, ExitOK, code)
	assert.Len(t, decodeJSON(t, out), 1)

	// flags beat the file
	code, out, _ = run(t, "calc", "--config", cfg, "-o", "jsonl", "a:"+fixture)
	require.Equal(t, ExitOK, code)
	assert.Len(t, lines(out), 1)
	assert.True(t, strings.HasPrefix(out, "{"))

	// env beats defaults
	t.Setenv("HAIRPIN_OUTPUT", "jsonl")
	code, out, _ = run(t, "calc", fixture)
	require.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, `{"id":"O1"`))
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "hairpin version dev\n", out)
}

func TestHelp(t *testing.T) {
	code, out, _ := run(t, "-h")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "calc")
	assert.Contains(t, out, "scan")
}

func TestCancelled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := RunContext(ctx, []string{"calc", fixture}, &stdout, &stderr)
	assert.Equal(t, ExitSignal, code)
}
