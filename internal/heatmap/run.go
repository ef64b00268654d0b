package heatmap

import (
	"fmt"

	"github.com/KaramelBytes/gapmap-cli/internal/dataset"
	"github.com/KaramelBytes/gapmap-cli/internal/palette"
	"github.com/KaramelBytes/gapmap-cli/internal/raster"
	"github.com/KaramelBytes/gapmap-cli/internal/render"
)

// RunOptions configures one pipeline invocation.
type RunOptions struct {
	// Classification
	IgnoreColumns []string
	SelectedBases []string
	StatusColumn  string

	// Presentation
	Style render.Style

	// Side effects, each independently gated. Empty SavePath disables the
	// file write; Display false skips the viewer. Both off still composes
	// the figure and then discards it.
	SavePath string
	Display  bool

	// ReportPath, when set, writes the boolean-normalized table there.
	ReportPath string
}

// DefaultRunOptions ignores the link column, reads status from
// Website_active and uses the default style.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		IgnoreColumns: []string{"Link", "Website_active"},
		StatusColumn:  "Website_active",
		Style:         render.DefaultStyle(),
	}
}

// Summary describes one completed run for callers that report or record it.
type Summary struct {
	Records    int
	Fields     int
	Suffixes   []string
	PlotPath   string
	ReportPath string
}

// Run executes the whole pipeline over t: classify the indicator columns,
// assign suffix colors, build and stack the rasters, compose the figure and
// perform the gated outputs. The input table is never modified; the optional
// report write-back serializes a normalized copy.
func Run(t *dataset.Table, opts RunOptions) (*Summary, error) {
	if opts.StatusColumn == "" {
		opts.StatusColumn = "Website_active"
	}
	status, err := t.Column(opts.StatusColumn)
	if err != nil {
		return nil, err
	}

	classOpts := Options{IgnoreColumns: opts.IgnoreColumns, SelectedBases: opts.SelectedBases}
	c, err := Classify(t, classOpts)
	if err != nil {
		return nil, err
	}

	assign := palette.Assign(c.Suffixes)
	imgBool := raster.BoolImage(c.Matrix, assign.ColumnColors, opts.Style.Background)
	imgStatus := raster.StatusImage(status, opts.Style.Secondary, opts.Style.Inactive)
	full, err := raster.Stack(imgBool, imgStatus)
	if err != nil {
		return nil, err
	}

	fig := render.Figure{
		Raster: full,
		Labels: rowLabels(c, assign, opts.Style),
		Legend: legendEntries(assign, opts.Style),
	}
	img, err := render.Compose(fig, opts.Style)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Records:  t.NumRecords(),
		Fields:   c.NumFields(),
		Suffixes: assign.SortedSuffixes(),
	}
	if opts.SavePath != "" {
		if err := render.Save(img, opts.SavePath); err != nil {
			return nil, err
		}
		sum.PlotPath = opts.SavePath
	}
	if opts.Display {
		if err := render.Display(img); err != nil {
			return nil, err
		}
	}
	if opts.ReportPath != "" {
		normalized, err := Normalize(t, classOpts)
		if err != nil {
			return nil, err
		}
		if err := normalized.Save(opts.ReportPath); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
		sum.ReportPath = opts.ReportPath
	}
	return sum, nil
}

// rowLabels pairs each boolean row with its base name in the row's suffix
// color and appends the fixed status label in the secondary color.
func rowLabels(c *Classification, assign palette.Assignment, style render.Style) []render.RowLabel {
	labels := make([]render.RowLabel, 0, len(c.Bases)+1)
	for i, base := range c.Bases {
		labels = append(labels, render.RowLabel{Text: base, Color: assign.ColumnColors[i]})
	}
	labels = append(labels, render.RowLabel{Text: style.StatusLabel, Color: style.Secondary})
	return labels
}

// legendEntries lists one swatch per distinct suffix, then a spacer, the
// status section header and the two fixed status entries.
func legendEntries(assign palette.Assignment, style render.Style) []render.LegendEntry {
	var entries []render.LegendEntry
	for _, suffix := range assign.SortedSuffixes() {
		entries = append(entries, render.LegendEntry{
			Label:  palette.DisplayName(suffix),
			Color:  assign.Colors[suffix],
			Swatch: true,
		})
	}
	entries = append(entries,
		render.LegendEntry{},
		render.LegendEntry{Label: "LINK ACTIVE"},
		render.LegendEntry{Label: style.ActiveText, Color: style.Secondary, Swatch: true},
		render.LegendEntry{Label: style.InactiveText, Color: style.Inactive, Swatch: true},
	)
	return entries
}
