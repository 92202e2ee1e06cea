package rank

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/robertdamiano/llm-metascore/internal/markdown"
)

// Source is one normalized rank list derived from a single table. Ranks
// are dense: contiguous from 1, ties sharing a value, no gaps. MaxRank is
// the highest rank assigned, which equals the number of distinct rank
// values the table carried.
type Source struct {
	Name    string
	Ranks   map[string]int
	MaxRank int
}

var (
	linkPattern      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	rankValuePattern = regexp.MustCompile(`\d+`)
)

// BuildSource normalizes one table into a Source. nameCol and rankCol
// select columns by case-insensitive header substring; an empty rankCol
// means rank by row order. Rows whose name or rank cannot be parsed are
// skipped; a table yielding no usable rows is an error, which callers
// treat as "drop this source", not as fatal.
func BuildSource(name string, t markdown.Table, nameCol, rankCol string) (Source, error) {
	nameIdx := markdown.ColumnIndex(t.Header, nameCol)
	if nameIdx < 0 {
		return Source{}, fmt.Errorf("table %s: no %q column", t.SourceID, nameCol)
	}
	rankIdx := -1
	if rankCol != "" {
		rankIdx = markdown.ColumnIndex(t.Header, rankCol)
		if rankIdx < 0 {
			return Source{}, fmt.Errorf("table %s: no %q column", t.SourceID, rankCol)
		}
	}

	type entry struct {
		name string
		raw  int
	}
	var entries []entry
	for i, cells := range t.Rows {
		if nameIdx >= len(cells) {
			continue
		}
		entity := cleanCell(cells[nameIdx])
		if entity == "" {
			continue
		}
		raw := i + 1
		if rankIdx >= 0 {
			if rankIdx >= len(cells) {
				continue
			}
			v, ok := parseRank(cells[rankIdx])
			if !ok {
				continue
			}
			raw = v
		}
		entries = append(entries, entry{name: entity, raw: raw})
	}
	if len(entries) == 0 {
		return Source{}, fmt.Errorf("table %s: no usable rows", t.SourceID)
	}

	raws := make([]int, len(entries))
	for i, e := range entries {
		raws[i] = e.raw
	}
	dense := densify(raws)
	ranks := make(map[string]int, len(entries))
	for _, e := range entries {
		r := dense[e.raw]
		// Duplicate entity names keep their best rank.
		if prev, ok := ranks[e.name]; !ok || r < prev {
			ranks[e.name] = r
		}
	}
	return Source{Name: name, Ranks: ranks, MaxRank: len(dense)}, nil
}

// densify maps raw rank values to a contiguous 1..n sequence preserving
// ties, e.g. observed ranks 1,1,3,4 become 1,1,2,3.
func densify(raws []int) map[int]int {
	distinct := make(map[int]bool, len(raws))
	for _, v := range raws {
		distinct[v] = true
	}
	values := make([]int, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Ints(values)
	dense := make(map[int]int, len(values))
	for i, v := range values {
		dense[v] = i + 1
	}
	return dense
}

// parseRank extracts the first integer from a rank cell, tolerating
// decorations like "#3" or "3.".
func parseRank(cell string) (int, bool) {
	digits := rankValuePattern.FindString(cell)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.Atoi(digits)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

// cleanCell strips markdown decoration from a name cell: links collapse
// to their display text, bold/italic markers and backticks are removed.
func cleanCell(cell string) string {
	s := linkPattern.ReplaceAllString(cell, "$1")
	s = strings.NewReplacer("**", "", "*", "", "`", "").Replace(s)
	return strings.TrimSpace(s)
}
