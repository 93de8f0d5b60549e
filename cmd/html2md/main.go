// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the html2md CLI. It converts one saved
// HTML page into "<seq>-<slug>/README.md" with an assets directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/html2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts the page named by its first argument.
var rootCmd = &cobra.Command{
	Use:   "html2md <file.html> [screenshot]",
	Short: "Convert a saved HTML page to Markdown with an assets directory",
	Long: `html2md converts a browser-saved HTML page into a numbered directory
next to it containing README.md and an assets/ folder with the page's images.

The Markdown is checked against the page's text. When the check passes the
HTML file and its _files/ resource folder are deleted; when it fails the
output is kept, the originals stay, and the command exits with status 1.

The optional screenshot argument is accepted for compatibility and ignored.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig()
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./html2md.yaml or ~/.config/html2md/html2md.yaml)")
	rootCmd.Flags().Bool("keep-source", defaults.Output.KeepSource, "keep the HTML file and its resource folder after a successful conversion")
	rootCmd.Flags().String("code-language", defaults.Extraction.CodeLanguage, "info string for fenced code blocks")
	rootCmd.Flags().Int("tolerance", defaults.Verification.Tolerance, "maximum differing words (exclusive) on each side for verification to pass")
	rootCmd.Flags().BoolP("quiet", "q", false, "suppress progress output")

	mustBind("output.keep_source", "keep-source")
	mustBind("extraction.code_language", "code-language")
	mustBind("verification.tolerance", "tolerance")
	setDefaults(defaults)
}

func mustBind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// setDefaults registers every configuration key so that env variables and
// the config subcommand see the full tree.
func setDefaults(cfg types.Config) {
	viper.SetDefault("noise.paragraph_markers", cfg.Noise.ParagraphMarkers)
	viper.SetDefault("noise.paragraph_prefixes", cfg.Noise.ParagraphPrefixes)
	viper.SetDefault("noise.image_markers", cfg.Noise.ImageMarkers)
	viper.SetDefault("noise.heading_badges", cfg.Noise.HeadingBadges)
	viper.SetDefault("extraction.code_language", cfg.Extraction.CodeLanguage)
	viper.SetDefault("extraction.assets_dir", cfg.Extraction.AssetsDir)
	viper.SetDefault("verification.tolerance", cfg.Verification.Tolerance)
	viper.SetDefault("output.readme_name", cfg.Output.ReadmeName)
	viper.SetDefault("output.keep_source", cfg.Output.KeepSource)
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("html2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "html2md"))
		}
	}

	viper.SetEnvPrefix("HTML2MD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the effective configuration: defaults overlaid by the
// config file, HTML2MD_* environment variables, and flags.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if cfg.Verification.Tolerance <= 0 {
		return types.Config{}, fmt.Errorf("verification tolerance must be positive, got %d", cfg.Verification.Tolerance)
	}
	if cfg.Output.ReadmeName == "" || strings.ContainsAny(cfg.Output.ReadmeName, `/\`) {
		return types.Config{}, fmt.Errorf("invalid readme name %q", cfg.Output.ReadmeName)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
