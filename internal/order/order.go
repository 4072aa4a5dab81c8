package order

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Pair is one substitution request: which media entry, and the image file
// that replaces it.
type Pair struct {
	Ref        Reference
	SourcePath string
}

// Instruction is one document's ordered list of substitution requests.
// Instructions are immutable once parsed.
type Instruction struct {
	DocumentPath string
	Pairs        []Pair
	// CatalogPin is the media-catalog fingerprint the row was authored
	// against, when the row carries an @catalog pair. Empty means no pin.
	CatalogPin string
}

// catalogPinToken marks the pair slot carrying a catalog fingerprint pin.
const catalogPinToken = "@catalog"

// headerLabels are the column-0 values that identify a header row.
var headerLabels = map[string]struct{}{
	"documentpath":  {},
	"document_path": {},
	"filepath":      {},
	"file_path":     {},
	"path":          {},
	"ファイルパス":        {},
}

// Load parses the order file at path into instructions, preserving row
// order. Rows with an empty document column are skipped, pairs need both
// cells, and a row with no valid pairs yields no instruction.
func Load(path string) ([]Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}

	text, _, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse order file %s: %w", path, err)
	}

	var instructions []Instruction
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		docPath := strings.TrimSpace(row[0])
		if docPath == "" {
			continue
		}
		if i == 0 && isHeader(docPath) {
			continue
		}

		inst := Instruction{DocumentPath: docPath}
		for col := 1; col < len(row); col += 2 {
			ref := strings.TrimSpace(row[col])
			var src string
			if col+1 < len(row) {
				src = strings.TrimSpace(row[col+1])
			}
			if ref == "" || src == "" {
				continue
			}
			if strings.EqualFold(ref, catalogPinToken) {
				inst.CatalogPin = src
				continue
			}
			inst.Pairs = append(inst.Pairs, Pair{Ref: ParseReference(ref), SourcePath: src})
		}
		if len(inst.Pairs) == 0 {
			continue
		}
		instructions = append(instructions, inst)
	}
	return instructions, nil
}

func isHeader(cell string) bool {
	_, ok := headerLabels[strings.ToLower(cell)]
	return ok
}
