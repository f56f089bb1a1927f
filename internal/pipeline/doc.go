// Package pipeline evaluates many sequences in parallel against one shared,
// read-only Evaluator and hands the outcomes back in input order.
//
// The only contract to implement is Evaluator (Calculate); *hairpin.Calculator
// satisfies it.
package pipeline
