package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DisplayPlot bool `mapstructure:"display_plot" yaml:"display_plot"`
	SavePlot    bool `mapstructure:"save_plot" yaml:"save_plot"`

	SortDataset bool   `mapstructure:"sort_dataset" yaml:"sort_dataset"`
	SortColumn  string `mapstructure:"sort_column" yaml:"sort_column"`

	DatasetFile  string `mapstructure:"dataset_file" yaml:"dataset_file"`
	PlotFile     string `mapstructure:"plot_file" yaml:"plot_file"`
	WorkspaceDir string `mapstructure:"workspace_dir" yaml:"workspace_dir"`

	// ExportFlags writes the boolean-normalized table back over dataset_file
	// after a render.
	ExportFlags bool `mapstructure:"export_flags" yaml:"export_flags"`

	// ExpectedHeaders is advisory: inspect warns when any are missing.
	ExpectedHeaders []string `mapstructure:"expected_headers" yaml:"expected_headers"`

	FigureWidth  int `mapstructure:"figure_width" yaml:"figure_width"`
	FigureHeight int `mapstructure:"figure_height" yaml:"figure_height"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.gapmap/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".gapmap")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("GAPMAP")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("display_plot", false)
	v.SetDefault("save_plot", true)
	v.SetDefault("sort_dataset", false)
	v.SetDefault("sort_column", "Link")
	v.SetDefault("export_flags", false)
	v.SetDefault("expected_headers", []string{
		"Title", "Link", "Add Date", "Last Modified",
		"last_checked", "Active", "h1", "p", "meta_description",
	})
	v.SetDefault("figure_width", 1500)
	v.SetDefault("figure_height", 800)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".gapmap")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve workspace_dir default: ~/.gapmap/workspace
	if c.WorkspaceDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.WorkspaceDir = filepath.Join(home, ".gapmap", "workspace")
	}
	if c.PlotFile == "" {
		c.PlotFile = filepath.Join(c.WorkspaceDir, "missing_values_comparison.png")
	}
	return &c, nil
}
