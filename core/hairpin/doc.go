// Package hairpin predicts whether a single-stranded nucleotide sequence
// folds back on itself into a hairpin and estimates the free energy of the
// most stable fold.
//
// The search compares the sequence with its own reverse complement along
// every diagonal of a pairing matrix. Each diagonal is one fold geometry;
// contiguous pairing runs on it are stem seeds, and every stem/loop boundary
// inside a run is scored as loop dG minus stem dG. The lowest score wins.
//
// Only simple hairpins are modeled: one stem, one loop, no bulges, internal
// loops or pseudoknots.
package hairpin
