// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"

	"hairpin/core/hairpin"
	"hairpin/core/oligo"
)

// Evaluator computes one hairpin result.
type Evaluator interface {
	Calculate(ctx context.Context, seq string) (hairpin.Result, error)
}

// Source feeds oligos through emit until exhausted. It must stop and return
// the error when emit fails.
type Source func(emit func(oligo.Oligo) error) error

// Config controls the worker pool.
type Config struct {
	Threads  int       // worker goroutines (0 = all CPUs)
	Progress io.Writer // progress bar destination; nil disables it
	Total    int64     // expected item count for the bar (0 = unknown)
}

// Outcome is the result for one input oligo. Err is set (and Result is the
// no-hairpin sentinel) when the sequence was rejected, e.g. too short.
type Outcome struct {
	Index  int
	Oligo  oligo.Oligo
	Result hairpin.Result
	Err    error
}

// Run evaluates every oligo from src and calls visit once per oligo, in
// source order. Per-sequence input errors are reported through Outcome.Err;
// Run itself returns the first visit or source error, or the context error
// on cancellation.
func Run(ctx context.Context, cfg Config, ev Evaluator, src Source, visit func(Outcome) error) error {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx int
		o   oligo.Oligo
	}
	jobs := make(chan job, threads*2)
	results := make(chan Outcome, threads*2)
	bar := newProgress(ctx, cfg)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := ev.Calculate(ctx, j.o.Seq)
				if err != nil && ctx.Err() != nil {
					return
				}
				select {
				case results <- Outcome{Index: j.idx, Oligo: j.o, Result: res, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed work
	var srcErr error
	go func() {
		defer close(jobs)
		idx := 0
		srcErr = src(func(o oligo.Oligo) error {
			select {
			case jobs <- job{idx: idx, o: o}:
				idx++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	// Re-order and visit
	var (
		visitErr error
		pending  = make(map[int]Outcome)
		next     int
	)
	for out := range results {
		bar.increment()
		if visitErr != nil {
			continue
		}
		pending[out.Index] = out
		for {
			o, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := visit(o); err != nil {
				visitErr = err
				cancel()
				break
			}
		}
	}

	switch {
	case visitErr != nil:
		bar.finish(false)
		return visitErr
	case parent.Err() != nil:
		bar.finish(false)
		return parent.Err()
	case srcErr != nil && !errors.Is(srcErr, context.Canceled):
		bar.finish(false)
		return srcErr
	}
	bar.finish(true)
	return nil
}

// Slice adapts a fixed list of oligos to a Source.
func Slice(list []oligo.Oligo) Source {
	return func(emit func(oligo.Oligo) error) error {
		for _, o := range list {
			if err := emit(o); err != nil {
				return err
			}
		}
		return nil
	}
}
