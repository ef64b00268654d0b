package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/gapmap-cli/internal/dataset"
	"github.com/KaramelBytes/gapmap-cli/internal/heatmap"
	"github.com/KaramelBytes/gapmap-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	renOutput     string
	renBases      []string
	renIgnore     []string
	renStatusCol  string
	renDisplay    bool
	renSave       bool
	renSortBy     string
	renReportFile string
	renWidth      int
	renHeight     int
)

var renderCmd = &cobra.Command{
	Use:   "render [dataset]",
	Short: "Render the missing-values heatmap for a dataset",
	Example: `  gapmap render flags.csv
  gapmap render flags.csv -o plot.png --bases h1,p
  gapmap render --display --save=false
  gapmap render flags.csv.zst --sort-by Link --report-file normalized.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else if cfg != nil {
			path = cfg.DatasetFile
		}
		if path == "" {
			return fmt.Errorf("no dataset given: pass a path or set dataset_file in config")
		}

		t, err := dataset.Load(path)
		if err != nil {
			return err
		}
		if debug {
			fmt.Printf("Loaded %s: %d records, %d columns\n", path, t.NumRecords(), len(t.Header))
		}

		sortBy := renSortBy
		if sortBy == "" && cfg != nil && cfg.SortDataset {
			sortBy = cfg.SortColumn
		}
		if sortBy != "" {
			if err := t.SortBy(sortBy); err != nil {
				return err
			}
		}

		opts := heatmap.DefaultRunOptions()
		if len(renIgnore) > 0 {
			opts.IgnoreColumns = renIgnore
		}
		opts.SelectedBases = renBases
		if renStatusCol != "" {
			opts.StatusColumn = renStatusCol
			if !containsString(opts.IgnoreColumns, renStatusCol) {
				opts.IgnoreColumns = append(opts.IgnoreColumns, renStatusCol)
			}
		}
		if renWidth > 0 {
			opts.Style.Width = renWidth
		} else if cfg != nil && cfg.FigureWidth > 0 {
			opts.Style.Width = cfg.FigureWidth
		}
		if renHeight > 0 {
			opts.Style.Height = renHeight
		} else if cfg != nil && cfg.FigureHeight > 0 {
			opts.Style.Height = cfg.FigureHeight
		}

		// Side effects: flags win when set in this run, config decides otherwise.
		save := cfg == nil || cfg.SavePlot
		display := cfg != nil && cfg.DisplayPlot
		if cmd.Flags().Changed("save") {
			save = renSave
		}
		if cmd.Flags().Changed("display") {
			display = renDisplay
		}
		opts.Display = display
		if save {
			opts.SavePath = renOutput
			if opts.SavePath == "" && cfg != nil {
				opts.SavePath = cfg.PlotFile
			}
			if opts.SavePath == "" {
				return fmt.Errorf("no plot path: pass --output or set plot_file in config")
			}
		}

		opts.ReportPath = renReportFile
		if opts.ReportPath == "" && cfg != nil && cfg.ExportFlags {
			opts.ReportPath = path
		}

		sum, err := heatmap.Run(t, opts)
		if err != nil {
			return err
		}

		if sum.Fields == 0 {
			fmt.Fprintln(os.Stderr, "⚠ Warning: no boolean columns selected; plotted the status row only")
		}
		if sum.PlotPath != "" {
			fmt.Printf("💾 Plot saved: %s\n", sum.PlotPath)
			if err := recordRun(path, sum); err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: failed to record run: %v\n", err)
			}
		}
		if sum.ReportPath != "" {
			fmt.Printf("💾 Flags report saved: %s\n", sum.ReportPath)
		}
		fmt.Printf("✓ Rendered %d records × %d fields (%d datasets)\n", sum.Records, sum.Fields, len(sum.Suffixes))
		return nil
	},
}

// recordRun appends the finished render to the workspace manifest.
func recordRun(datasetPath string, sum *heatmap.Summary) error {
	dir, err := defaultWorkspaceDir()
	if err != nil {
		return err
	}
	w, err := workspace.Load(dir)
	if err != nil {
		return err
	}
	w.Record(workspace.Entry{
		Dataset:  datasetPath,
		Plot:     sum.PlotPath,
		Records:  sum.Records,
		Fields:   sum.Fields,
		Suffixes: sum.Suffixes,
	})
	return w.Save()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renOutput, "output", "o", "", "plot file path (default from config plot_file)")
	renderCmd.Flags().StringSliceVar(&renBases, "bases", nil, "base names to include, in display order (default: all)")
	renderCmd.Flags().StringSliceVar(&renIgnore, "ignore", nil, "columns to skip entirely (default: Link and the status column)")
	renderCmd.Flags().StringVar(&renStatusCol, "status-column", "", "column holding the yes/no activity value (default Website_active)")
	renderCmd.Flags().BoolVar(&renDisplay, "display", false, "open the plot in the system image viewer")
	renderCmd.Flags().BoolVar(&renSave, "save", true, "write the plot to a file")
	renderCmd.Flags().StringVar(&renSortBy, "sort-by", "", "sort records by this column before rendering")
	renderCmd.Flags().StringVar(&renReportFile, "report-file", "", "write the boolean-normalized table to this path")
	renderCmd.Flags().IntVar(&renWidth, "width", 0, "figure width in pixels (default from config)")
	renderCmd.Flags().IntVar(&renHeight, "height", 0, "figure height in pixels (default from config)")
}
