package cmd

import (
	"fmt"

	"github.com/robertdamiano/llm-metascore/internal/config"
	"github.com/robertdamiano/llm-metascore/internal/rank"
	"github.com/robertdamiano/llm-metascore/internal/report"
	"github.com/robertdamiano/llm-metascore/internal/snapshot"
	"github.com/spf13/cobra"
)

var topType string
var topK int
var topOut string
var topDetails bool
var topCacheDir string

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the creator ranking for a mode",
	Long: `Show the creator ranking aggregated from the newest cached snapshots.

Mode "general" reads the arena overview table; mode "coding" aggregates
every coding-flavored table across both snapshot providers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flags left at their defaults fall back to config/env values.
		if !cmd.Flags().Changed("type") {
			topType = config.DefaultType()
		}
		if !cmd.Flags().Changed("out") {
			topOut = config.DefaultOut()
		}
		if !cmd.Flags().Changed("k") {
			topK = config.DefaultK()
		}
		if !cmd.Flags().Changed("cache-dir") {
			topCacheDir = config.CacheDir()
		}

		mode, err := snapshot.ParseMode(topType)
		if err != nil {
			return err
		}
		format, err := report.ParseFormat(topOut)
		if err != nil {
			return err
		}
		if topK < 1 {
			return fmt.Errorf("--k must be at least 1")
		}

		sources := snapshot.BuildSources(topCacheDir, snapshot.Specs(mode))
		results, err := rank.Aggregate(sources)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		switch format {
		case report.FormatMarkdown:
			fmt.Fprint(w, report.Markdown(results, topK, topDetails))
		case report.FormatPretty:
			report.FormatHeader(w, string(mode), len(sources))
			return report.RenderPretty(w, results, topK, topDetails)
		default:
			report.FormatHeader(w, string(mode), len(sources))
			report.Text(w, results, topK, topDetails)
		}
		return nil
	},
}

func init() {
	topCmd.Flags().StringVar(&topType, "type", "general", "Ranking mode (general, coding)")
	topCmd.Flags().IntVar(&topK, "k", 4, "Number of creators to print")
	topCmd.Flags().StringVar(&topOut, "out", "txt", "Output format (txt, md, pretty)")
	topCmd.Flags().BoolVar(&topDetails, "details", false, "Show per-source ranks")
	topCmd.Flags().StringVar(&topCacheDir, "cache-dir", "data/.cache", "Directory holding leaderboard snapshots")

	rootCmd.AddCommand(topCmd)
}
