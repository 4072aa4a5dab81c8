// Package archive provides the Container abstraction over Office Open XML
// packages: a read-only view of named ZIP entries in native archive order
// plus an atomic writer that assembles a new package from ordered entries.
//
// Two backing stores implement Container. ZipContainer reads entries
// straight from the ZIP stream and is the store the patch pipeline uses.
// DirContainer serves an exploded directory tree produced by Explode and
// exists for external tooling that needs direct file access; its entry
// order is the sorted walk order of the tree, not the ZIP native order, so
// it must never feed ordinal resolution.
//
// Output packages are always written through a temporary file and renamed
// into place, so a failed write never leaves a partial archive behind.
package archive
