package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/gapmap-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set GapMap configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("display_plot: %t\n", cfg.DisplayPlot)
		fmt.Printf("save_plot: %t\n", cfg.SavePlot)
		fmt.Printf("sort_dataset: %t\n", cfg.SortDataset)
		fmt.Printf("sort_column: %s\n", cfg.SortColumn)
		fmt.Printf("dataset_file: %s\n", cfg.DatasetFile)
		fmt.Printf("plot_file: %s\n", cfg.PlotFile)
		fmt.Printf("workspace_dir: %s\n", cfg.WorkspaceDir)
		fmt.Printf("export_flags: %t\n", cfg.ExportFlags)
		if len(cfg.ExpectedHeaders) > 0 {
			fmt.Printf("expected_headers: %s\n", strings.Join(cfg.ExpectedHeaders, ", "))
		}
		fmt.Printf("figure_width: %d\n", cfg.FigureWidth)
		fmt.Printf("figure_height: %d\n", cfg.FigureHeight)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "display_plot":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for display_plot: %v", val)
			}
			cfg.DisplayPlot = b
		case "save_plot":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for save_plot: %v", val)
			}
			cfg.SavePlot = b
		case "sort_dataset":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for sort_dataset: %v", val)
			}
			cfg.SortDataset = b
		case "sort_column":
			cfg.SortColumn = val
		case "dataset_file":
			cfg.DatasetFile = val
		case "plot_file":
			cfg.PlotFile = val
		case "workspace_dir":
			cfg.WorkspaceDir = val
		case "export_flags":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for export_flags: %v", val)
			}
			cfg.ExportFlags = b
		case "expected_headers":
			cfg.ExpectedHeaders = splitTrimmed(val)
		case "figure_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for figure_width: %v", val)
			}
			cfg.FigureWidth = i
		case "figure_height":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for figure_height: %v", val)
			}
			cfg.FigureHeight = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func splitTrimmed(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
