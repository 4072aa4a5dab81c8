// Package order parses tabular replacement specifications into normalized
// instructions.
//
// Each row names a document in column 0 followed by (reference, source
// image path) pairs. A reference is either an ordinal token ("image2",
// 1-based into the media catalog's native order) or a literal media leaf
// filename; the distinction is carried as a tagged Reference so resolution
// has a single code path. A row may also carry an "@catalog" pair whose
// value is the fingerprint of the media catalog the row was authored
// against, letting the patcher detect catalog drift before resolving
// ordinals.
//
// Order files arrive in whatever encoding the authoring spreadsheet tool
// produced, so decoding tries a fixed candidate list (UTF-8, UTF-8 with
// BOM, Shift-JIS, EUC-JP, ISO-2022-JP, Latin-1) and accepts the first
// candidate that decodes the whole file cleanly.
package order
