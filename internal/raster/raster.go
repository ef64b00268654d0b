// Package raster turns classified data into color grids, one cell per value.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Raster is a dense grid of colors: rows are fields, columns are records.
// A raster with zero rows is legal and stacks to nothing.
type Raster struct {
	Cells [][]color.NRGBA
}

// NumRows returns the field-axis size.
func (r *Raster) NumRows() int { return len(r.Cells) }

// NumCols returns the record-axis size.
func (r *Raster) NumCols() int {
	if len(r.Cells) == 0 {
		return 0
	}
	return len(r.Cells[0])
}

// BoolImage colors the boolean matrix: cell (field, record) takes the field's
// assigned color when matrix[record][field] is true, the background color
// otherwise. The result is the transpose of the matrix — fields become raster
// rows so each record renders as one vertical slice.
func BoolImage(matrix [][]bool, columnColors []color.NRGBA, background color.NRGBA) *Raster {
	fields := len(columnColors)
	records := len(matrix)
	cells := make([][]color.NRGBA, fields)
	for f := 0; f < fields; f++ {
		row := make([]color.NRGBA, records)
		for r := 0; r < records; r++ {
			if matrix[r][f] {
				row[r] = columnColors[f]
			} else {
				row[r] = background
			}
		}
		cells[f] = row
	}
	return &Raster{Cells: cells}
}

// StatusImage builds the one-row activity raster. A value equal to "yes"
// after trimming, compared case-insensitively, takes the active color; every
// other value, missing ones included, takes the inactive color. The rule is
// deliberately binary — there is no third state.
func StatusImage(values []string, active, inactive color.NRGBA) *Raster {
	row := make([]color.NRGBA, len(values))
	for i, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), "yes") {
			row[i] = active
		} else {
			row[i] = inactive
		}
	}
	return &Raster{Cells: [][]color.NRGBA{row}}
}

// Stack concatenates rasters vertically in argument order. Zero-row rasters
// are skipped; the remaining ones must agree on record count.
func Stack(rs ...*Raster) (*Raster, error) {
	out := &Raster{}
	cols := -1
	for _, r := range rs {
		if r == nil || r.NumRows() == 0 {
			continue
		}
		if cols >= 0 && r.NumCols() != cols {
			return nil, fmt.Errorf("stack rasters: record count mismatch (%d vs %d)", r.NumCols(), cols)
		}
		cols = r.NumCols()
		out.Cells = append(out.Cells, r.Cells...)
	}
	return out, nil
}

// Image renders the raster at one pixel per cell. The renderer scales it up
// with nearest-neighbor interpolation so cells stay crisp.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.NumCols(), r.NumRows()))
	for y, row := range r.Cells {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
