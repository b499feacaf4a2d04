// Package summary renders the console report for a manifest run: total
// file count, the first few entries, and the most common prefixes.
package summary

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/hartswf0/abundant-nes/internal/manifest"
)

// Options controls how much of the manifest the summary shows.
type Options struct {
	// EntryLimit is the number of leading records listed individually.
	EntryLimit int
	// IDWidth is the column width identifiers are left-justified to.
	IDWidth int
	// TopPrefixes is the number of prefix-frequency rows shown.
	TopPrefixes int
}

type prefixCount struct {
	prefix string
	count  int
}

// Print writes the run summary for records to w.
func Print(w io.Writer, records []manifest.Record, opts Options) {
	fmt.Fprintf(w, "Found %d HTML files\n", len(records))
	if len(records) == 0 {
		return
	}

	limit := opts.EntryLimit
	if limit > len(records) {
		limit = len(records)
	}
	fmt.Fprintf(w, "\nFirst %d entries:\n", limit)
	for _, r := range records[:limit] {
		fmt.Fprintf(w, "  %-*s -> %s\n", opts.IDWidth, r.ID, r.File)
	}

	fmt.Fprintf(w, "\nPrefix distribution:\n")
	fmt.Fprintln(w, renderPrefixTable(w, topPrefixes(records, opts.TopPrefixes)))
}

// topPrefixes tallies records per prefix and returns the n most frequent,
// count descending with prefix ascending as tie-break so the listing is
// reproducible across runs.
func topPrefixes(records []manifest.Record, n int) []prefixCount {
	tally := make(map[string]int)
	for _, r := range records {
		tally[r.Prefix]++
	}

	counts := make([]prefixCount, 0, len(tally))
	for prefix, count := range tally {
		counts = append(counts, prefixCount{prefix: prefix, count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].prefix < counts[j].prefix
	})

	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

func renderPrefixTable(w io.Writer, counts []prefixCount) string {
	tw := table.NewWriter()
	if isTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"Prefix", "Files"})
	for _, c := range counts {
		tw.AppendRow(table.Row{c.prefix, c.count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
