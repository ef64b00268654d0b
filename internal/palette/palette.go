// Package palette assigns qualitative colors to dataset suffixes.
package palette

import (
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// The two standard qualitative schemes, small and large. Up to ten distinct
// suffixes use the 10-color scheme; beyond that the 20-color scheme keeps
// adjacent entries distinguishable.
var (
	small = mustColors(
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	)
	large = mustColors(
		"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
		"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
		"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
		"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
	)
)

// Assignment maps each distinct suffix to its color and carries the color of
// every input column in input order.
type Assignment struct {
	Colors       map[string]color.NRGBA
	ColumnColors []color.NRGBA
}

// Assign gives each distinct suffix a color from a qualitative palette.
// Suffixes are sorted before indices are assigned, so the same suffix set
// always produces the same map regardless of column order. More than twenty
// distinct suffixes wrap around the large palette.
func Assign(suffixes []string) Assignment {
	distinct := make(map[string]bool, len(suffixes))
	for _, s := range suffixes {
		distinct[s] = true
	}
	ordered := make([]string, 0, len(distinct))
	for s := range distinct {
		ordered = append(ordered, s)
	}
	sort.Strings(ordered)

	scheme := small
	if len(ordered) > len(small) {
		scheme = large
	}
	a := Assignment{Colors: make(map[string]color.NRGBA, len(ordered))}
	for i, s := range ordered {
		a.Colors[s] = scheme[i%len(scheme)]
	}
	a.ColumnColors = make([]color.NRGBA, len(suffixes))
	for i, s := range suffixes {
		a.ColumnColors[i] = a.Colors[s]
	}
	return a
}

// DisplayName renders a suffix for legend text: the empty suffix (a column
// with no underscore) shows as "default", and a trailing ".csv" marker from
// source file names is stripped.
func DisplayName(suffix string) string {
	if suffix == "" {
		return "default"
	}
	return strings.TrimSuffix(suffix, ".csv")
}

// SortedSuffixes returns the assignment's suffixes in their color order.
func (a Assignment) SortedSuffixes() []string {
	out := make([]string, 0, len(a.Colors))
	for s := range a.Colors {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func mustColors(hexes ...string) []color.NRGBA {
	out := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("palette: bad hex constant " + h)
		}
		r, g, b := c.RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}
