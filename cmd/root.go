package cmd

import (
	"fmt"
	"os"

	"github.com/robertdamiano/llm-metascore/internal/config"
	"github.com/robertdamiano/llm-metascore/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llm-metascore",
	Short: "Rank top LLM creators from public leaderboards",
	Long: `LLM Metascore aggregates rank positions from locally cached leaderboard
snapshots (an arena-style leaderboard and a programmatic-usage leaderboard)
into a single average-rank ordering of the four tracked creators:
OpenAI, Google, Anthropic, and xAI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Initialize()
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("llm-metascore %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
