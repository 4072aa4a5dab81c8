// Package catalog derives the ordered media view of a Word package: the
// subsequence of container entries under the media prefix, in native
// archive order.
//
// Native order is the implicit identity for ordinal references ("image2"
// means the second media entry as the archive stores it), so the catalog
// is rebuilt fresh every time a document is opened and never cached.
// Filename lookup compares only the final path component and is a separate
// concern from ordinal identity.
//
// A Snapshot captures the catalog as an ordered path list plus a sha256
// fingerprint. Replacement orders can pin the fingerprint they were
// authored against; a mismatch at patch time means ordinals would silently
// target the wrong image, so the document is refused instead.
package catalog
