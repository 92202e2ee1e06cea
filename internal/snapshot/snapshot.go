// Package snapshot locates cached leaderboard snapshots and assembles
// the ranking sources each mode declares.
package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/robertdamiano/llm-metascore/internal/markdown"
	"github.com/robertdamiano/llm-metascore/internal/rank"
)

// SourceSpec declares one ranking source: which snapshot file it comes
// from, which labeled table inside it, and which columns carry the
// entity name and the rank. An empty RankColumn ranks by row order.
type SourceSpec struct {
	Name       string // source id shown in output, e.g. "lmarena:coding"
	Snapshot   string // snapshot file prefix: "lmarena" or "openrouter"
	Label      string // case-insensitive substring of the table label
	Ordinal    int    // nth matching table under that label, 0-based
	NameColumn string
	RankColumn string
}

// Latest returns the newest snapshot file matching <prefix>-*.md in dir.
// Snapshot names are date-stamped, so lexicographic order is
// chronological.
func Latest(dir, prefix string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"-*.md"))
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no %s-*.md snapshot in %s", prefix, dir)
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// BuildSources resolves every spec against the snapshot files in dir.
// A spec whose snapshot, table, or columns cannot be found is dropped
// with a warning; aggregation proceeds over whatever survives.
func BuildSources(dir string, specs []SourceSpec) []rank.Source {
	tables := make(map[string][]markdown.Table)
	var out []rank.Source

	for _, spec := range specs {
		docTables, loaded := tables[spec.Snapshot]
		if !loaded {
			docTables = loadTables(dir, spec.Snapshot)
			tables[spec.Snapshot] = docTables
		}
		t, found := markdown.Select(docTables, spec.Label, spec.Ordinal)
		if !found {
			slog.Warn("dropping source: table not found",
				"source", spec.Name, "label", spec.Label, "ordinal", spec.Ordinal)
			continue
		}
		src, err := rank.BuildSource(spec.Name, t, spec.NameColumn, spec.RankColumn)
		if err != nil {
			slog.Warn("dropping source", "source", spec.Name, "error", err)
			continue
		}
		out = append(out, src)
	}
	return out
}

func loadTables(dir, prefix string) []markdown.Table {
	path, err := Latest(dir, prefix)
	if err != nil {
		slog.Warn("snapshot unavailable", "prefix", prefix, "error", err)
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("snapshot unreadable", "path", path, "error", err)
		return nil
	}
	return markdown.ExtractTables(filepath.Base(path), string(data))
}
