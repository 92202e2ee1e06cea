// Package markdown extracts pipe-delimited tables from leaderboard
// snapshot text, associating each table with the nearest preceding
// heading or bold label.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Table is one pipe table found in a document. Label is the nearest
// heading or bold line above the table (empty when there is none).
// SourceID combines the document name with the table's position so that
// several tables under one label stay distinguishable.
type Table struct {
	Label    string
	SourceID string
	Header   []string
	Rows     [][]string
}

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	boldLabelPattern = regexp.MustCompile(`^\*\*([^*]+)\*\*$`)
)

// ExtractTables walks the document line by line, tracking the current
// section label and collecting every pipe table. A table starts at a line
// containing pipes whose next line is a dash/colon separator; it ends at
// the first line that is not a table row. Candidate tables with a
// malformed separator line are left as plain text.
func ExtractTables(doc, text string) []Table {
	lines := strings.Split(text, "\n")
	var tables []Table
	label := ""

	for i := 0; i < len(lines); {
		trimmed := strings.TrimSpace(lines[i])

		if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
			label = strings.TrimSpace(m[2])
			i++
			continue
		}
		if m := boldLabelPattern.FindStringSubmatch(trimmed); m != nil {
			label = strings.TrimSpace(m[1])
			i++
			continue
		}

		if strings.Contains(trimmed, "|") && i+1 < len(lines) && isSeparator(lines[i+1]) {
			header := splitRow(lines[i])
			j := i + 2
			var rows [][]string
			for j < len(lines) {
				row := strings.TrimSpace(lines[j])
				if !strings.Contains(row, "|") || headingPattern.MatchString(row) {
					break
				}
				cells := splitRow(lines[j])
				if anyNonEmpty(cells) {
					rows = append(rows, cells)
				}
				j++
			}
			tables = append(tables, Table{
				Label:    label,
				SourceID: fmt.Sprintf("%s#%d", doc, len(tables)+1),
				Header:   header,
				Rows:     rows,
			})
			i = j
			continue
		}

		i++
	}

	return tables
}

// Select returns the nth table (0-based ordinal) whose label contains the
// given text, case-insensitively. An empty label matches every table.
func Select(tables []Table, label string, ordinal int) (Table, bool) {
	needle := strings.ToLower(label)
	seen := 0
	for _, t := range tables {
		if !strings.Contains(strings.ToLower(t.Label), needle) {
			continue
		}
		if seen == ordinal {
			return t, true
		}
		seen++
	}
	return Table{}, false
}

// ColumnIndex finds the first header cell containing name,
// case-insensitively. Returns -1 when no cell matches.
func ColumnIndex(header []string, name string) int {
	needle := strings.ToLower(name)
	for i, cell := range header {
		if strings.Contains(strings.ToLower(cell), needle) {
			return i
		}
	}
	return -1
}

// isSeparator reports whether the line is a table separator such as
// "| --- | :---: |".
func isSeparator(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.Contains(s, "|") || !strings.ContainsAny(s, "-:") {
		return false
	}
	return strings.Trim(s, "-:| \t") == ""
}

// splitRow splits a table line on unescaped pipes, trims each cell, and
// drops the empty outer cells produced by leading/trailing pipes.
func splitRow(line string) []string {
	s := strings.TrimSpace(line)
	var cells []string
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(b.String()))

	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func anyNonEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return true
		}
	}
	return false
}
