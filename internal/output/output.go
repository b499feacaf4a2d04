// Package output serializes a manifest to its CSV and JSON files.
//
// Both encodings happen fully in memory before either file is touched, and
// the files themselves are written atomically, so an I/O failure aborts the
// run without leaving partial output behind.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/hartswf0/abundant-nes/internal/fileutil"
	"github.com/hartswf0/abundant-nes/internal/manifest"
)

// header is the fixed CSV column order, matching the JSON key order.
var header = []string{"id", "prefix", "last3", "file"}

// EncodeCSV renders records as the manifest CSV. The header row is always
// present, so an empty manifest yields a header-only file.
func EncodeCSV(records []manifest.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write([]string{r.ID, r.Prefix, r.Last3, r.File}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON renders records as a pretty-printed JSON array with 2-space
// indentation. Non-ASCII characters pass through unescaped, and an empty
// manifest serializes as [].
func EncodeJSON(records []manifest.Record) ([]byte, error) {
	if records == nil {
		records = []manifest.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes records and writes both manifest files into dir,
// returning the written paths. Encoding errors surface before any file is
// created; write errors leave no partial file.
func Write(dir, csvName, jsonName string, records []manifest.Record) (string, string, error) {
	csvData, err := EncodeCSV(records)
	if err != nil {
		return "", "", fmt.Errorf("encode csv: %w", err)
	}
	jsonData, err := EncodeJSON(records)
	if err != nil {
		return "", "", fmt.Errorf("encode json: %w", err)
	}

	csvPath := filepath.Join(dir, csvName)
	jsonPath := filepath.Join(dir, jsonName)

	if err := fileutil.WriteFileAtomic(csvPath, csvData, 0o644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", csvName, err)
	}
	if err := fileutil.WriteFileAtomic(jsonPath, jsonData, 0o644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", jsonName, err)
	}
	return csvPath, jsonPath, nil
}
