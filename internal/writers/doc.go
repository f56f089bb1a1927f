// Package writers provides goroutine-backed writers for hairpin outcomes.
//
// Each Start function returns an input channel and an error channel; callers
// send outcomes, close the input channel, and then read exactly one error.
// Broken pipes (e.g. piping into `head`) are reported as success.
package writers
