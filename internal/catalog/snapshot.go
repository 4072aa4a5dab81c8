package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrSnapshotDrift marks a patch-time catalog that no longer matches the
// snapshot an order was authored against.
var ErrSnapshotDrift = errors.New("catalog drift")

// Snapshot is a versioned capture of a catalog: the ordered entry paths and
// a fingerprint over them.
type Snapshot struct {
	Paths       []string
	Fingerprint string
}

// Snapshot captures the catalog's current native order.
func (c Catalog) Snapshot() Snapshot {
	paths := make([]string, len(c.entries))
	for i, entry := range c.entries {
		paths[i] = entry.Path
	}
	return Snapshot{Paths: paths, Fingerprint: fingerprint(paths)}
}

// VerifyFingerprint compares the catalog's current fingerprint against the
// one an order was authored with. A mismatch means ordinal references would
// resolve against a different native order than intended.
func (c Catalog) VerifyFingerprint(want string) error {
	got := c.Snapshot().Fingerprint
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: order authored against %s, document now has %s", ErrSnapshotDrift, want, got)
	}
	return nil
}

func fingerprint(paths []string) string {
	h := sha256.New()
	for _, p := range paths {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
