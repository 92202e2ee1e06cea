package rank

import (
	"testing"
)

func TestMapCreator(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Creator
		ignored bool
	}{
		{"gpt model", "gpt-4-turbo", OpenAI, false},
		{"chatgpt", "ChatGPT-4o-latest", OpenAI, false},
		{"o-series", "o3-mini", OpenAI, false},
		{"o-series bare", "o4", OpenAI, false},
		{"o prefix without digits", "olympus-1", 0, true},
		{"gemini", "Gemini 2.5 Pro", Google, false},
		{"imagen", "imagen-3", Google, false},
		{"veo", "veo-3", Google, false},
		{"claude", "Claude Opus 4.1", Anthropic, false},
		{"grok", "Grok 4", XAI, false},
		{"author slug", "Google", Google, false},
		{"author slug lowercase", "anthropic", Anthropic, false},
		{"x-ai slug", "x-ai", XAI, false},
		{"namespaced model", "openai/gpt-5-mini", OpenAI, false},
		{"namespaced by slug only", "x-ai/unreleased-model", XAI, false},
		{"namespaced untracked", "meta-llama/llama-3-70b", 0, true},
		{"untracked model", "llama-3-70b", 0, true},
		{"placeholder", "Others", 0, true},
		{"empty", "", 0, true},
		{"whitespace", "   ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapCreator(tt.input)
			if ok == tt.ignored {
				t.Fatalf("MapCreator(%q) ok = %v, want %v", tt.input, ok, !tt.ignored)
			}
			if ok && got != tt.want {
				t.Errorf("MapCreator(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapCreatorClosedSet(t *testing.T) {
	// Whatever comes in, the output is one of the four creators or ignored.
	inputs := []string{
		"deepseek-v3", "qwen3-max", "mistral-large", "command-r",
		"gpt-5", "gemini-2.5-flash", "claude-haiku", "grok-3",
		"openrouter/auto", "o200", "GPT/claude",
	}
	valid := map[Creator]bool{OpenAI: true, Google: true, Anthropic: true, XAI: true}
	for _, in := range inputs {
		if c, ok := MapCreator(in); ok && !valid[c] {
			t.Errorf("MapCreator(%q) produced %v outside the fixed set", in, c)
		}
	}
}

func TestCreatorString(t *testing.T) {
	tests := []struct {
		creator Creator
		want    string
	}{
		{OpenAI, "OpenAI"},
		{Google, "Google"},
		{Anthropic, "Anthropic"},
		{XAI, "xAI"},
	}
	for _, tt := range tests {
		if got := tt.creator.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
