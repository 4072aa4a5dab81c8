package patch

import (
	"docpatch/internal/archive"
)

// Apply writes a new package at outputPath: every source entry reappears in
// native order, with the payloads map substituting the targeted entries and
// everything else copied byte-identical. Zero targets produce a package
// whose entries match the source exactly.
func Apply(c archive.Container, payloads map[string][]byte, outputPath string) error {
	entries := c.Entries()
	out := make([]archive.OutputEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Dir {
			out = append(out, archive.OutputEntry{Path: entry.Path, Dir: true})
			continue
		}
		if data, ok := payloads[entry.Path]; ok {
			out = append(out, archive.OutputEntry{Path: entry.Path, Data: data})
			continue
		}
		data, err := c.Read(entry.Path)
		if err != nil {
			return err
		}
		out = append(out, archive.OutputEntry{Path: entry.Path, Data: data})
	}
	return archive.WriteContainer(outputPath, out)
}
