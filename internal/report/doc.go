// Package report assembles the final engagement document.
//
// Each section builder is a pure function from record collections to a
// document fragment; the Assembler concatenates fragments in a fixed,
// non-configurable order and applies a single global whitespace pass at
// the end. No builder performs I/O: the only external resource the
// document touches (evidence files) is checked by the downstream
// typesetter, not here.
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
package report
