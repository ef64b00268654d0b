package raster_test

import (
	"image/color"
	"testing"

	"github.com/KaramelBytes/gapmap-cli/internal/raster"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
	bg   = color.NRGBA{R: 240, G: 248, B: 255, A: 255}
)

func TestBoolImageTransposesAndColors(t *testing.T) {
	// 2 records × 3 fields.
	matrix := [][]bool{
		{true, false, true},
		{false, false, true},
	}
	r := raster.BoolImage(matrix, []color.NRGBA{red, blue, red}, bg)
	if r.NumRows() != 3 || r.NumCols() != 2 {
		t.Fatalf("expected shape (3,2), got (%d,%d)", r.NumRows(), r.NumCols())
	}
	if r.Cells[0][0] != red {
		t.Fatalf("cell (field0, record0) should be the field color")
	}
	if r.Cells[0][1] != bg {
		t.Fatalf("false cell should be background")
	}
	if r.Cells[1][0] != bg || r.Cells[1][1] != bg {
		t.Fatalf("all-false field should be background throughout")
	}
	if r.Cells[2][0] != red || r.Cells[2][1] != red {
		t.Fatalf("all-true field should carry its color throughout")
	}
}

func TestBoolImageZeroFields(t *testing.T) {
	r := raster.BoolImage([][]bool{{}, {}}, nil, bg)
	if r.NumRows() != 0 {
		t.Fatalf("zero fields must give a zero-row raster, got %d rows", r.NumRows())
	}
}

func TestStatusImageBinaryRule(t *testing.T) {
	active := color.NRGBA{G: 255, A: 255}
	inactive := color.NRGBA{R: 255, G: 140, A: 255}
	values := []string{"Yes", " YES ", "yes", "No", "N/A", "", "yessir"}
	r := raster.StatusImage(values, active, inactive)
	if r.NumRows() != 1 || r.NumCols() != len(values) {
		t.Fatalf("expected shape (1,%d), got (%d,%d)", len(values), r.NumRows(), r.NumCols())
	}
	wantActive := []bool{true, true, true, false, false, false, false}
	for i, want := range wantActive {
		got := r.Cells[0][i] == active
		if got != want {
			t.Fatalf("value %q: active=%v, want %v", values[i], got, want)
		}
	}
}

func TestStackConcatenatesStatusLast(t *testing.T) {
	boolR := raster.BoolImage([][]bool{{true}, {false}}, []color.NRGBA{red}, bg)
	statusR := raster.StatusImage([]string{"yes", "no"}, blue, bg)
	full, err := raster.Stack(boolR, statusR)
	if err != nil {
		t.Fatalf("stack: %v", err)
	}
	if full.NumRows() != 2 || full.NumCols() != 2 {
		t.Fatalf("expected shape (2,2), got (%d,%d)", full.NumRows(), full.NumCols())
	}
	if full.Cells[1][0] != blue {
		t.Fatalf("status row must be last")
	}
}

func TestStackSkipsEmptyRasters(t *testing.T) {
	empty := raster.BoolImage(nil, nil, bg)
	statusR := raster.StatusImage([]string{"yes"}, blue, bg)
	full, err := raster.Stack(empty, statusR)
	if err != nil {
		t.Fatalf("stack: %v", err)
	}
	if full.NumRows() != 1 {
		t.Fatalf("expected only the status row, got %d rows", full.NumRows())
	}
}

func TestStackRejectsMismatchedRecordCounts(t *testing.T) {
	a := raster.StatusImage([]string{"yes", "no"}, blue, bg)
	b := raster.StatusImage([]string{"yes"}, blue, bg)
	if _, err := raster.Stack(a, b); err == nil {
		t.Fatalf("expected record count mismatch error")
	}
}

func TestImagePixelPerCell(t *testing.T) {
	r := raster.StatusImage([]string{"yes", "no", "no"}, red, blue)
	img := r.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 1 {
		t.Fatalf("unexpected image bounds: %v", img.Bounds())
	}
	if img.NRGBAAt(0, 0) != red || img.NRGBAAt(1, 0) != blue {
		t.Fatalf("pixels do not match cells")
	}
}
