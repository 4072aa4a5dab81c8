package order

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// ErrUndecodable marks an order file no candidate encoding could decode.
var ErrUndecodable = errors.New("undecodable order file")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type legacyCandidate struct {
	name string
	enc  encoding.Encoding
}

// The legacy candidates mirror the encodings replacement orders have been
// observed in; cp932 collapses into Shift-JIS here. Latin-1 accepts any
// byte stream, so it terminates the list.
var legacyCandidates = []legacyCandidate{
	{"shift-jis", japanese.ShiftJIS},
	{"euc-jp", japanese.EUCJP},
	{"iso-2022-jp", japanese.ISO2022JP},
	{"latin-1", charmap.ISO8859_1},
}

// decodeText converts raw order-file bytes to UTF-8 text, reporting the
// accepted encoding name. UTF-8 (plain or BOM-prefixed) is validated
// strictly; legacy candidates are accepted only when they decode the whole
// file without producing replacement runes.
func decodeText(data []byte) (string, string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		rest := data[len(utf8BOM):]
		if utf8.Valid(rest) {
			return string(rest), "utf-8-sig", nil
		}
	} else if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	return decodeLegacy(data, legacyCandidates)
}

func decodeLegacy(data []byte, candidates []legacyCandidate) (string, string, error) {
	for _, candidate := range candidates {
		out, err := candidate.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		if !utf8.Valid(out) || bytes.ContainsRune(out, utf8.RuneError) {
			continue
		}
		return string(out), candidate.name, nil
	}
	return "", "", fmt.Errorf("%w: no candidate encoding accepted the file", ErrUndecodable)
}
