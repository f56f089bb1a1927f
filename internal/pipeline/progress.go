// internal/pipeline/progress.go
package pipeline

import (
	"context"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progress wraps an mpb bar; a nil *progress is a no-op.
type progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgress(ctx context.Context, cfg Config) *progress {
	if cfg.Progress == nil {
		return nil
	}
	p := mpb.NewWithContext(ctx, mpb.WithOutput(cfg.Progress), mpb.WithWidth(60))
	bar := p.AddBar(cfg.Total,
		mpb.PrependDecorators(
			decor.Name("hairpin "),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done"),
		),
	)
	return &progress{p: p, bar: bar}
}

func (pr *progress) increment() {
	if pr != nil {
		pr.bar.Increment()
	}
}

// finish completes the bar (total fixed to the count seen) or aborts it.
func (pr *progress) finish(ok bool) {
	if pr == nil {
		return
	}
	if ok {
		pr.bar.SetTotal(-1, true)
	} else {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}
