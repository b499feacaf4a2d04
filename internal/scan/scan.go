// Package scan lists the HTML files a manifest run operates on. It reads a
// single directory without recursing and returns names in sorted order so
// downstream output never depends on filesystem enumeration order.
package scan

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const htmlExt = ".html"

// HTMLFiles returns the names of the HTML files directly inside dir,
// sorted. Directories and non-HTML files are skipped. The extension match
// is case-sensitive by default, mirroring a lowercase *.html glob; with
// foldCase set, .HTML/.Html variants are included as well.
func HTMLFiles(dir string, foldCase bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !matchesExt(entry.Name(), foldCase) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

func matchesExt(name string, foldCase bool) bool {
	if foldCase {
		return strings.HasSuffix(strings.ToLower(name), htmlExt)
	}
	return strings.HasSuffix(name, htmlExt)
}
