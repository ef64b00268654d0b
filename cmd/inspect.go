package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/KaramelBytes/gapmap-cli/internal/dataset"
	"github.com/KaramelBytes/gapmap-cli/internal/heatmap"
	"github.com/KaramelBytes/gapmap-cli/internal/palette"
	"github.com/spf13/cobra"
)

var (
	insBases     []string
	insIgnore    []string
	insStatusCol string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [dataset]",
	Short: "Report how a dataset would classify without rendering",
	Long:  `Inspect runs the classification and color-assignment stages and prints what the heatmap would contain: each retained column with its base, suffix, assigned color and present-count, plus the palette choice and the status breakdown. Nothing is drawn or written.`,
	Args:  cobra.MaximumNArgs(1),
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
		if cfg != nil && len(cfg.ExpectedHeaders) > 0 {
			if missing := t.ValidateHeaders(cfg.ExpectedHeaders); len(missing) > 0 {
				fmt.Fprintf(os.Stderr, "⚠ Warning: expected headers missing: %s\n", strings.Join(missing, ", "))
			}
		}

		statusCol := insStatusCol
		if statusCol == "" {
			statusCol = "Website_active"
		}
		opts := heatmap.DefaultOptions()
		if len(insIgnore) > 0 {
			opts.IgnoreColumns = insIgnore
		}
		if !containsString(opts.IgnoreColumns, statusCol) {
			opts.IgnoreColumns = append(opts.IgnoreColumns, statusCol)
		}
		opts.SelectedBases = insBases

		c, err := heatmap.Classify(t, opts)
		if err != nil {
			return err
		}
		assign := palette.Assign(c.Suffixes)

		var b strings.Builder
		b.WriteString("[DATASET]\n")
		b.WriteString(fmt.Sprintf("File: %s\n", path))
		b.WriteString(fmt.Sprintf("Records: %d\n", t.NumRecords()))
		b.WriteString(fmt.Sprintf("Indicator columns: %d\n\n", c.NumFields()))

		b.WriteString("[CLASSIFICATION]\n")
		for i, col := range c.Columns {
			present := 0
			for _, row := range c.Matrix {
				if row[i] {
					present++
				}
			}
			cc := assign.ColumnColors[i]
			b.WriteString(fmt.Sprintf("- %s: base %s, suffix %s, color #%02x%02x%02x, present %d/%d\n",
				col, c.Bases[i], palette.DisplayName(c.Suffixes[i]), cc.R, cc.G, cc.B, present, t.NumRecords()))
		}

		distinct := assign.SortedSuffixes()
		scheme := "10-color"
		if len(distinct) > 10 {
			scheme = "20-color"
		}
		b.WriteString("\n[PALETTE]\n")
		b.WriteString(fmt.Sprintf("Distinct suffixes: %d (%s qualitative scheme)\n", len(distinct), scheme))
		for _, s := range distinct {
			cc := assign.Colors[s]
			b.WriteString(fmt.Sprintf("- %s: #%02x%02x%02x\n", palette.DisplayName(s), cc.R, cc.G, cc.B))
		}

		if status, err := t.Column(statusCol); err == nil {
			active := 0
			for _, v := range status {
				if strings.EqualFold(strings.TrimSpace(v), "yes") {
					active++
				}
			}
			b.WriteString("\n[STATUS]\n")
			b.WriteString(fmt.Sprintf("Column: %s\n", statusCol))
			b.WriteString(fmt.Sprintf("Active: %d, inactive: %d\n", active, len(status)-active))
		} else {
			fmt.Fprintf(os.Stderr, "⚠ Warning: status column %q not found\n", statusCol)
		}

		fmt.Print(b.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringSliceVar(&insBases, "bases", nil, "base names to include, in display order (default: all)")
	inspectCmd.Flags().StringSliceVar(&insIgnore, "ignore", nil, "columns to skip entirely (default: Link and the status column)")
	inspectCmd.Flags().StringVar(&insStatusCol, "status-column", "", "column holding the yes/no activity value (default Website_active)")
}
