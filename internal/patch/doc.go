// Package patch resolves replacement instructions against a media catalog
// and produces the patched output package.
//
// Resolution yields one result per reference, in instruction order; a
// reference that fails to resolve is reported and skipped without
// affecting the remaining targets of the same instruction. The engine then
// rewrites every source entry in native order, substituting the payloads
// of resolved targets and copying everything else byte-identical, so the
// output differs from the input only at the replaced media entries.
package patch
