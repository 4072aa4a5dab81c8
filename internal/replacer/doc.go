// Package replacer drives the batch replacement workflow: for each
// instruction it opens the document, builds the media catalog, resolves
// references, normalizes replacement images, and writes the patched
// package into the run's output directory.
//
// Documents are processed strictly one at a time with no shared mutable
// state. Failures stay contained: an unresolvable target skips only that
// target, a corrupt or missing document fails only that document, and the
// batch always runs to completion and reports counts. PDFs are a handled
// unsupported outcome with a pass-through copy. A file lock on the output
// root keeps two batches from interleaving their runs.
package replacer
