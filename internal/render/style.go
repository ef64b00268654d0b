// Package render composes the heatmap figure and handles its output.
package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Style carries every presentation setting the renderer needs, replacing the
// process-wide style state a plotting library would hold. Composition is a
// pure function of the figure plus one Style value.
type Style struct {
	Width  int
	Height int

	Background color.NRGBA // figure and false-cell fill
	Primary    color.NRGBA // titles, axis text
	Secondary  color.NRGBA // status row label, active status cells
	Inactive   color.NRGBA // inactive status cells

	Title        string
	Subtitle     string
	XLabel       string
	LegendTitle  string
	StatusLabel  string // row label for the activity strip
	ActiveText   string // legend entry for active records
	InactiveText string

	TitleSize    float64
	SubtitleSize float64
	LabelSize    float64
	AxisSize     float64
}

// DefaultStyle mirrors the tool's fixed presentation: alice-blue canvas,
// dim-grey text, dark-slate-grey/dark-orange status colors.
func DefaultStyle() Style {
	return Style{
		Width:  1500,
		Height: 800,

		Background: nrgba(colornames.Aliceblue),
		Primary:    nrgba(colornames.Dimgray),
		Secondary:  nrgba(colornames.Darkslategray),
		Inactive:   nrgba(colornames.Darkorange),

		Title:        "MISSING VALUES COMPARISON",
		Subtitle:     "This tool helps compare datasets relative to their missing values",
		XLabel:       "I N D E X",
		LegendTitle:  "DATASETS",
		StatusLabel:  "link active",
		ActiveText:   "yes",
		InactiveText: "no",

		TitleSize:    22,
		SubtitleSize: 13,
		LabelSize:    13,
		AxisSize:     11,
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	// Named colors are fully opaque, so the premultiplied values carry over.
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
