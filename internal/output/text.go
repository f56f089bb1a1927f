// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"hairpin/internal/pipeline"
)

// Renderer draws the optional pretty block printed after a row.
type Renderer func(pipeline.Outcome) string

// WriteText prints the header (optional) and one TSV row per outcome,
// each followed by its pretty block when prettyMode is set.
func WriteText(w io.Writer, list []pipeline.Outcome, header, prettyMode bool, render Renderer) error {
	in := make(chan pipeline.Outcome, len(list))
	for _, o := range list {
		in <- o
	}
	close(in)
	return StreamText(w, in, header, prettyMode, render)
}

// StreamText is WriteText over a channel. On a write error the rest of in
// is drained so the sender never blocks.
func StreamText(w io.Writer, in <-chan pipeline.Outcome, header, prettyMode bool, render Renderer) error {
	bw := bufio.NewWriter(w)
	err := streamText(bw, in, header, prettyMode, render)
	if err == nil {
		err = bw.Flush()
	}
	for range in {
	}
	return err
}

func streamText(bw *bufio.Writer, in <-chan pipeline.Outcome, header, prettyMode bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for o := range in {
		if _, err := fmt.Fprintln(bw, FormatRowTSV(o)); err != nil {
			return err
		}
		if prettyMode && render != nil {
			if _, err := io.WriteString(bw, render(o)); err != nil {
				return err
			}
		}
	}
	return nil
}
