package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robertdamiano/llm-metascore/internal/rank"
)

const lmarenaSnapshot = `# LMArena Leaderboard

## Leaderboard Overview

| Rank | Model | Score | Coding |
| ---- | ----- | ----- | ------ |
| 1 | gemini-2.5-pro | 1450 | 2 |
| 2 | gpt-5 | 1440 | 1 |
| 3 | claude-opus-4 | 1430 | 3 |
| 4 | grok-4 | 1425 | 4 |
| 5 | llama-4 | 1410 | 5 |

## Category: Coding

| Rank | Model | Score |
| ---- | ----- | ----- |
| 1 | gpt-5 | 1445 |
| 2 | claude-opus-4 | 1440 |
`

const openrouterSnapshot = `# OpenRouter Rankings

**Usage Leaderboard**

| Model | Tokens |
| ----- | ------ |
| google/gemini-2.5-flash | 1.2T |
| anthropic/claude-sonnet-4 | 900B |
| openai/gpt-5-mini | 850B |
| deepseek/deepseek-v3 | 600B |

**Market Share**

| Author | Share |
| ------ | ----- |
| Google | 34% |
| Anthropic | 22% |
| OpenAI | 20% |
| Others | 24% |

**Programming**

| Model | Tokens |
| ----- | ------ |
| anthropic/claude-sonnet-4 | 300B |
| openai/gpt-5 | 250B |
| x-ai/grok-code | 120B |
`

func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

func TestLatest(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "lmarena-2025-08-01.md", "old")
	writeSnapshot(t, dir, "lmarena-2025-08-15.md", "new")
	writeSnapshot(t, dir, "openrouter-2025-08-20.md", "other provider")

	path, err := Latest(dir, "lmarena")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if filepath.Base(path) != "lmarena-2025-08-15.md" {
		t.Errorf("Latest = %q, want the newest stamp", path)
	}

	if _, err := Latest(dir, "missing"); err == nil {
		t.Error("expected error for missing prefix")
	}
	if _, err := Latest(filepath.Join(dir, "nope"), "lmarena"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"general", ModeGeneral, false},
		{"coding", ModeCoding, false},
		{"Coding", "", true},
		{"", "", true},
		{"speed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildSourcesGeneral(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "lmarena-2025-08-15.md", lmarenaSnapshot)

	sources := BuildSources(dir, Specs(ModeGeneral))
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	src := sources[0]
	if src.Name != "lmarena:general" {
		t.Errorf("source name = %q", src.Name)
	}
	if src.Ranks["gemini-2.5-pro"] != 1 || src.Ranks["gpt-5"] != 2 {
		t.Errorf("general ranks wrong: %v", src.Ranks)
	}
	if src.MaxRank != 5 {
		t.Errorf("MaxRank = %d, want 5", src.MaxRank)
	}
}

func TestBuildSourcesCoding(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "lmarena-2025-08-15.md", lmarenaSnapshot)
	writeSnapshot(t, dir, "openrouter-2025-08-15.md", openrouterSnapshot)

	sources := BuildSources(dir, Specs(ModeCoding))
	if len(sources) != 5 {
		t.Fatalf("expected 5 sources, got %d: %v", len(sources), sourceNames(sources))
	}

	byName := make(map[string]rank.Source, len(sources))
	for _, s := range sources {
		byName[s.Name] = s
	}

	// Overview coding column reorders the models.
	if byName["lmarena:overview-coding"].Ranks["gpt-5"] != 1 {
		t.Errorf("overview coding rank wrong: %v", byName["lmarena:overview-coding"].Ranks)
	}
	// Row-order sources rank by position.
	if byName["openrouter:usage"].Ranks["google/gemini-2.5-flash"] != 1 {
		t.Errorf("usage ranks wrong: %v", byName["openrouter:usage"].Ranks)
	}
	if byName["openrouter:market-share"].Ranks["Google"] != 1 {
		t.Errorf("market share ranks wrong: %v", byName["openrouter:market-share"].Ranks)
	}
}

func TestBuildSourcesDropsMissing(t *testing.T) {
	// Only the arena snapshot exists: every openrouter source drops,
	// aggregation still works over the remainder.
	dir := t.TempDir()
	writeSnapshot(t, dir, "lmarena-2025-08-15.md", lmarenaSnapshot)

	sources := BuildSources(dir, Specs(ModeCoding))
	if len(sources) != 2 {
		t.Fatalf("expected 2 surviving sources, got %d: %v", len(sources), sourceNames(sources))
	}

	results, err := rank.Aggregate(sources)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 creators, got %d", len(results))
	}
	for _, cr := range results {
		if len(cr.PerSource) != 2 {
			t.Errorf("%v has %d per-source entries, want 2", cr.Creator, len(cr.PerSource))
		}
	}
}

func TestBuildSourcesDropsUnknownSection(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "lmarena-2025-08-15.md", lmarenaSnapshot)

	specs := []SourceSpec{
		{Name: "lmarena:general", Snapshot: "lmarena", Label: "Leaderboard Overview", NameColumn: "Model", RankColumn: "Rank"},
		{Name: "lmarena:vision", Snapshot: "lmarena", Label: "Vision", NameColumn: "Model", RankColumn: "Rank"},
	}
	sources := BuildSources(dir, specs)
	if len(sources) != 1 || sources[0].Name != "lmarena:general" {
		t.Fatalf("expected only the general source, got %v", sourceNames(sources))
	}
}

func TestBuildSourcesEmptyDir(t *testing.T) {
	sources := BuildSources(t.TempDir(), Specs(ModeCoding))
	if len(sources) != 0 {
		t.Fatalf("expected no sources, got %v", sourceNames(sources))
	}
	if _, err := rank.Aggregate(sources); err == nil {
		t.Error("expected ErrNoData from empty aggregation")
	}
}

func sourceNames(sources []rank.Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	return names
}
