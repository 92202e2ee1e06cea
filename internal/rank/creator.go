// Package rank normalizes leaderboard tables into per-source rank lists
// and aggregates them into one average-rank ordering over the four
// tracked creators.
package rank

import (
	"regexp"
	"strings"
)

// Creator is one of the four companies this tool ranks. The set is
// closed: MapCreator never produces a value outside it.
type Creator int

const (
	OpenAI Creator = iota
	Google
	Anthropic
	XAI
)

// Creators is the fixed set in canonical order. Aggregation output always
// covers exactly this set.
var Creators = [4]Creator{OpenAI, Google, Anthropic, XAI}

func (c Creator) String() string {
	switch c {
	case OpenAI:
		return "OpenAI"
	case Google:
		return "Google"
	case Anthropic:
		return "Anthropic"
	case XAI:
		return "xAI"
	}
	return "unknown"
}

var (
	// o-series model names: o3, o4-mini, ...
	oSeriesPattern = regexp.MustCompile(`^o\d+\b`)

	// Provider slugs as they appear in author columns and
	// "author/model" namespaces.
	providerSlugs = map[string]Creator{
		"openai":    OpenAI,
		"google":    Google,
		"anthropic": Anthropic,
		"x-ai":      XAI,
		"xai":       XAI,
	}
)

// MapCreator classifies a model or author name. Exact provider slugs are
// normalized first, then model-name patterns in priority order, then the
// prefix of an "author/model" name is retried the same way. The second
// return is false for names belonging to none of the tracked creators.
func MapCreator(name string) (Creator, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if c, ok := providerSlugs[n]; ok {
		return c, true
	}
	if c, ok := matchModelName(n); ok {
		return c, true
	}
	if prefix, _, found := strings.Cut(n, "/"); found {
		prefix = strings.TrimSpace(prefix)
		if c, ok := providerSlugs[prefix]; ok {
			return c, true
		}
		if c, ok := matchModelName(prefix); ok {
			return c, true
		}
	}
	return 0, false
}

// matchModelName applies the substring rules. Order matters: the first
// matching rule wins.
func matchModelName(n string) (Creator, bool) {
	switch {
	case strings.Contains(n, "gpt"), strings.Contains(n, "chatgpt"), oSeriesPattern.MatchString(n):
		return OpenAI, true
	case strings.Contains(n, "gemini"), strings.Contains(n, "imagen"), strings.Contains(n, "veo"):
		return Google, true
	case strings.Contains(n, "claude"):
		return Anthropic, true
	case strings.Contains(n, "grok"):
		return XAI, true
	}
	return 0, false
}
