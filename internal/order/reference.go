package order

import (
	"regexp"
	"strconv"
)

// RefKind discriminates the two reference grammars.
type RefKind int

const (
	// RefOrdinal is a 1-based position into the media catalog's native order.
	RefOrdinal RefKind = iota
	// RefFilename is a literal media leaf filename.
	RefFilename
)

// Reference is a tagged replacement target: an ordinal parsed from the
// image<digits> grammar, or a literal leaf filename.
type Reference struct {
	Kind     RefKind
	Ordinal  int
	Filename string
	raw      string
}

var ordinalPattern = regexp.MustCompile(`(?i)^image([0-9]+)$`)

// ParseReference classifies a reference token. Tokens matching the
// case-insensitive image<digits> grammar become ordinals; everything else
// is treated as a literal leaf filename.
func ParseReference(token string) Reference {
	if m := ordinalPattern.FindStringSubmatch(token); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return Reference{Kind: RefOrdinal, Ordinal: n, raw: token}
		}
	}
	return Reference{Kind: RefFilename, Filename: token, raw: token}
}

func (r Reference) String() string {
	return r.raw
}
