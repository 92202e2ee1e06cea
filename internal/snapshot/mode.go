package snapshot

import "fmt"

// Mode selects which sources feed the aggregation.
type Mode string

const (
	// ModeGeneral ranks by the arena overview table alone.
	ModeGeneral Mode = "general"
	// ModeCoding aggregates every coding-flavored table across both
	// snapshot providers.
	ModeCoding Mode = "coding"
)

// ParseMode checks the given mode string and returns the Mode.
func ParseMode(mode string) (Mode, error) {
	switch Mode(mode) {
	case ModeGeneral:
		return ModeGeneral, nil
	case ModeCoding:
		return ModeCoding, nil
	default:
		return "", fmt.Errorf("unknown type: %q (valid options: general, coding)", mode)
	}
}

var generalSpecs = []SourceSpec{
	{
		Name:       "lmarena:general",
		Snapshot:   "lmarena",
		Label:      "Leaderboard Overview",
		NameColumn: "Model",
		RankColumn: "Rank",
	},
}

var codingSpecs = []SourceSpec{
	{
		Name:       "lmarena:overview-coding",
		Snapshot:   "lmarena",
		Label:      "Leaderboard Overview",
		NameColumn: "Model",
		RankColumn: "Coding",
	},
	{
		Name:       "lmarena:coding",
		Snapshot:   "lmarena",
		Label:      "Coding",
		NameColumn: "Model",
		RankColumn: "Rank",
	},
	{
		Name:       "openrouter:usage",
		Snapshot:   "openrouter",
		Label:      "Usage Leaderboard",
		NameColumn: "Model",
	},
	{
		Name:       "openrouter:market-share",
		Snapshot:   "openrouter",
		Label:      "Market Share",
		NameColumn: "Author",
	},
	{
		Name:       "openrouter:programming",
		Snapshot:   "openrouter",
		Label:      "Programming",
		NameColumn: "Model",
	},
}

// Specs returns the declarative source list for a mode. The extractor and
// aggregator stay mode-agnostic; this list is the only place modes
// differ.
func Specs(mode Mode) []SourceSpec {
	if mode == ModeCoding {
		return codingSpecs
	}
	return generalSpecs
}
