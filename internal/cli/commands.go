// internal/cli/commands.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hairpin/core/fasta"
	"hairpin/core/oligo"
	"hairpin/internal/cmdutil"
	"hairpin/internal/pipeline"
	"hairpin/internal/version"
)

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc SEQ...",
		Short: "Evaluate sequences given on the command line",
		Long: `Evaluate each SEQ (or ID:SEQ) and report its most stable hairpin.
Unnamed sequences are numbered O1, O2, ...`,
		Example: `  hairpin calc CCCCGGAAACTGTCTGGCTGCTTTTTGCGGGG
  hairpin calc p1:GGACGAAAAACGTCC p2:GCGCGCTTTTTGCGCGC --pretty
  hairpin calc -o json --tie shorter-loop GTCGTCGCGGACCTCGGTCGA`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]oligo.Oligo, 0, len(args))
			for i, spec := range args {
				o, err := oligo.ParseInline(spec, i)
				if err != nil {
					return withCode(ExitUsage, err)
				}
				list = append(list, o)
			}
			s, err := a.load()
			if err != nil {
				return err
			}
			return a.evaluate(cmd.Context(), s, pipeline.Slice(list), int64(len(list)))
		},
	}
}

func newScanCmd(a *app) *cobra.Command {
	var oligos bool
	cmd := &cobra.Command{
		Use:   "scan FILE...",
		Short: "Evaluate every sequence of FASTA or oligo files",
		Long: `Evaluate every record of each FASTA FILE ("-" reads stdin; gzip is
detected). With --oligos each FILE lists one oligo per line as "seq" or
"id seq". Records with non-IUPAC characters are skipped with a warning.`,
		Example: `  hairpin scan primers.fa
  zcat probes.fa.gz | hairpin scan - --only-hairpins --max-dg -2
  hairpin scan --oligos oligos.tsv -o jsonl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load()
			if err != nil {
				return err
			}
			warn := func(format string, v ...any) { cmdutil.Warnf(a.stderr, s.Quiet, format, v...) }
			src := fileSource(cmd.Context(), args, oligos, warn)
			return a.evaluate(cmd.Context(), s, src, 0)
		},
	}
	cmd.Flags().BoolVar(&oligos, "oligos", false, "read FILEs as oligo lists (id<TAB>seq) instead of FASTA")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "hairpin version %s\n", version.Version); err != nil {
				return withCode(ExitOutput, err)
			}
			return nil
		},
	}
}

// fileSource streams oligos from each path in order.
func fileSource(ctx context.Context, paths []string, oligos bool, warn func(string, ...any)) pipeline.Source {
	return func(emit func(oligo.Oligo) error) error {
		for _, path := range paths {
			if oligos {
				list, err := oligo.LoadTSV(path)
				if err != nil {
					return err
				}
				for _, o := range list {
					if err := emit(o); err != nil {
						return err
					}
				}
				continue
			}
			err := fasta.ScanPath(ctx, path, func(r fasta.Record) error {
				o, err := oligo.FromRecord(r)
				if err != nil {
					warn("%s: %v (skipped)", path, err)
					return nil
				}
				return emit(o)
			})
			if err != nil {
				return err
			}
		}
		return nil
	}
}
