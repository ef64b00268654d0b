package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	cfgpkg "github.com/KaramelBytes/gapmap-cli/internal/config"
	"github.com/KaramelBytes/gapmap-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "gapmap",
	Short: "GapMap CLI: visualize missing values across similar datasets",
	Long:  `GapMap renders a colored heatmap of missing-data flags: each row is a boolean indicator (field present in dataset X), each column a record, and color encodes the source dataset plus whether the record's link is active.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gapmap/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// defaultWorkspaceDir resolves and creates the workspace folder from config,
// expanding a leading "~".
func defaultWorkspaceDir() (string, error) {
	if cfg != nil && cfg.WorkspaceDir != "" {
		dir, err := utils.ExpandHome(cfg.WorkspaceDir)
		if err != nil {
			return "", err
		}
		dir = filepath.Clean(dir)
		if err := utils.EnsureDir(dir); err != nil {
			return "", err
		}
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".gapmap", "workspace")
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}
