package patch

import (
	"fmt"

	"docpatch/internal/archive"
	"docpatch/internal/catalog"
	"docpatch/internal/order"
)

// Target is one resolved substitution: the entry to replace and the image
// file that replaces it.
type Target struct {
	EntryPath  string
	Ref        order.Reference
	SourcePath string
}

// Skip records a reference that could not be resolved, alongside the
// reason. Skips never abort the rest of an instruction.
type Skip struct {
	Ref        order.Reference
	SourcePath string
	Err        error
}

// Resolve maps every pair of the instruction to a catalog entry, in
// instruction order. Failed references land in the skip list; the rest
// proceed.
func Resolve(inst order.Instruction, cat catalog.Catalog) ([]Target, []Skip) {
	var targets []Target
	var skips []Skip
	for _, pair := range inst.Pairs {
		entry, err := resolveRef(pair.Ref, cat)
		if err != nil {
			skips = append(skips, Skip{Ref: pair.Ref, SourcePath: pair.SourcePath, Err: err})
			continue
		}
		targets = append(targets, Target{EntryPath: entry.Path, Ref: pair.Ref, SourcePath: pair.SourcePath})
	}
	return targets, skips
}

func resolveRef(ref order.Reference, cat catalog.Catalog) (archive.Entry, error) {
	switch ref.Kind {
	case order.RefOrdinal:
		return cat.ResolveOrdinal(ref.Ordinal)
	case order.RefFilename:
		return cat.ResolveFilename(ref.Filename)
	default:
		return archive.Entry{}, fmt.Errorf("unknown reference kind %d", ref.Kind)
	}
}
