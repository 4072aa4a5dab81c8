// Package imaging prepares replacement images for insertion into a Word
// package: decode the source file, flatten transparency, and re-encode to
// a payload compatible with the target entry's extension.
//
// Flattening follows the discard-alpha policy: images with an alpha channel
// or a palette-indexed color model are redrawn onto an opaque RGB canvas
// and the alpha values are thrown away, never composited against a
// background color. The encode policy is fixed and explicit: .png targets
// stay lossless PNG, every other target extension gets a high-quality
// JPEG. Images are inserted at native resolution; no resizing happens here.
package imaging
