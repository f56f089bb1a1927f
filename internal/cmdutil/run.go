// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"hairpin/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	ev pipeline.Evaluator,
	src pipeline.Source,
	visit func(pipeline.Outcome) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.Run(ctx, cfg, ev, src, func(o pipeline.Outcome) error {
		keep, out, vErr := visit(o)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
