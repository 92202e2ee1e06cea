// Package config holds the viper-backed application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton. Called once at
// application startup, before any command runs.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	// Optional user config: ~/.config/llm-metascore/config.yaml
	if configDir, err := os.UserConfigDir(); err == nil {
		configPath := filepath.Join(configDir, "llm-metascore", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
		}
	}

	// Environment variables take precedence over the config file,
	// e.g. LLMRANK_CACHE_DIR, LLMRANK_TYPE, LLMRANK_OUT.
	v.SetEnvPrefix("LLMRANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("cache-dir", filepath.Join("data", ".cache"))
	v.SetDefault("type", "general")
	v.SetDefault("out", "txt")
	v.SetDefault("k", 4)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// CacheDir returns the directory holding leaderboard snapshots.
func CacheDir() string { return v.GetString("cache-dir") }

// DefaultType returns the default ranking mode.
func DefaultType() string { return v.GetString("type") }

// DefaultOut returns the default output format.
func DefaultOut() string { return v.GetString("out") }

// DefaultK returns the default number of creators to print.
func DefaultK() int { return v.GetInt("k") }
