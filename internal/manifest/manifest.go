package manifest

import "sort"

// Record describes one HTML file in the manifest. Field order matches the
// serialized column/key order.
type Record struct {
	ID     string `json:"id"`
	Prefix string `json:"prefix"`
	Last3  string `json:"last3"`
	File   string `json:"file"`
}

// Build derives one Record per filename and returns the set sorted by
// (prefix, file) ascending. Filenames are unique within a directory, so
// the order is a stable total order regardless of input order.
func Build(files []string) []Record {
	records := make([]Record, 0, len(files))
	for _, name := range files {
		prefix := DerivePrefix(name)
		last3 := DeriveLast3(name)
		records = append(records, Record{
			ID:     prefix + "_" + last3,
			Prefix: prefix,
			Last3:  last3,
			File:   name,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Prefix != records[j].Prefix {
			return records[i].Prefix < records[j].Prefix
		}
		return records[i].File < records[j].File
	})
	return records
}
