// Package scan crawls a directory tree for candidate documents and probes
// whether they embed media. It feeds the replacement workflow the paths an
// order file may reference, and backs the `docpatch scan` command.
package scan
