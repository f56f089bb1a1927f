// internal/writers/hairpin.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"hairpin/internal/jsonlutil"
	"hairpin/internal/output"
	"hairpin/internal/pipeline"
	"hairpin/internal/pretty"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "jsonl"}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// StartHairpinWriter spins up a writer goroutine for pipeline outcomes.
// text streams TSV rows (with pretty blocks when prettyMode is set), json
// buffers everything into one array, jsonl streams one object per line.
func StartHairpinWriter(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- pipeline.Outcome, <-chan error) {
	if format == "jsonl" {
		return StartHairpinJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Outcome, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []pipeline.Outcome
			for o := range in {
				buf = append(buf, o)
			}
			err = output.WriteJSON(out, buf)

		case "text":
			err = output.StreamText(out, in, header, prettyMode,
				func(o pipeline.Outcome) string { return pretty.RenderFold(o.Result, popt) },
			)

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

// StartHairpinJSONLWriter streams each outcome as one JSON line (v1).
func StartHairpinJSONLWriter(out io.Writer, bufSize int) (chan<- pipeline.Outcome, <-chan error) {
	return jsonlutil.Start[pipeline.Outcome](out, bufSize,
		func(enc *json.Encoder, o pipeline.Outcome) error {
			return enc.Encode(output.ToAPI(o))
		},
		IsBrokenPipe,
	)
}
