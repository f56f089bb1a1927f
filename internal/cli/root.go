// Package cli is the command line interface of the hairpin tool.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hairpin/internal/settings"
	"hairpin/internal/version"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v        *viper.Viper
	stdout   io.Writer
	stderr   io.Writer
	cfgFile  string
	noHeader bool
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: settings.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "hairpin",
		Short: "Predict hairpin self-folding of primers and probes",
		Long: `Predict whether a single-stranded sequence folds back on itself into a
hairpin and estimate the free energy (dG, kcal/mol) of the most stable fold.

Settings come from built-in defaults, a settings file (--config, or
hairpin.yaml in the working directory or ~/.config/hairpin), HAIRPIN_*
environment variables (e.g. HAIRPIN_MIN_BIND=4) and flags, in that order.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(ExitUsage, err)
	})

	addSettingsFlags(root)
	_ = a.v.BindPFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "settings file (json/yaml/toml)")
	root.PersistentFlags().BoolVar(&a.noHeader, "no-header", false, "omit the TSV header (text)")

	root.AddCommand(newCalcCmd(a), newScanCmd(a), newVersionCmd())
	return root
}

func addSettingsFlags(cmd *cobra.Command) {
	d := settings.Default()
	fs := cmd.PersistentFlags()
	fs.Int("min-bind", d.MinBind, "shortest contiguous pairing run that seeds a stem")
	fs.Int("min-stem", d.MinStem, "shortest stem (bp)")
	fs.Int("min-loop", d.MinLoop, "shortest loop (nt)")
	fs.Int("max-loop", d.MaxLoop, "longest loop (nt)")
	fs.String("tie", d.Tie, "folds with equal dG: last | shorter-loop")
	fs.String("tables", d.Tables, "thermodynamic table file (json/yaml/toml); built-in if empty")
	fs.StringP("output", "o", d.Output, "output format: text | json | jsonl")
	fs.Bool("header", d.Header, "print the TSV header (text)")
	fs.Bool("pretty", d.Pretty, "draw the winning fold under each row (text)")
	fs.Bool("only-hairpins", d.OnlyHairpins, "drop sequences without a hairpin")
	fs.Float64("max-dg", d.MaxDG, "keep results with dG <= value")
	fs.IntP("threads", "t", d.Threads, "worker goroutines (0 = all CPUs)")
	fs.Bool("progress", d.Progress, "show a progress bar on stderr")
	fs.BoolP("quiet", "q", d.Quiet, "suppress warnings")
	fs.Bool("fail-on-none", d.FailOnNone, "exit 1 when no sequence forms a hairpin")
}

// RunContext executes argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(argv)
	return exitCode(stderr, root.ExecuteContext(ctx))
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
