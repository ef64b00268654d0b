package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/KaramelBytes/gapmap-cli/internal/raster"
)

// RowLabel is the text shown left of one raster row, in that row's color.
type RowLabel struct {
	Text  string
	Color color.NRGBA
}

// LegendEntry is one line of the legend column. Entries with Swatch render a
// color patch before the label; the rest are spacers or section headers.
type LegendEntry struct {
	Label  string
	Color  color.NRGBA
	Swatch bool
}

// Figure is everything Compose needs: the stacked raster plus its labels and
// legend, status row last by construction.
type Figure struct {
	Raster *raster.Raster
	Labels []RowLabel
	Legend []LegendEntry
}

// Fixed layout metrics. The label gutter holds right-aligned row labels, the
// legend column sits right of the plot.
const (
	marginTop    = 78
	marginBottom = 52
	labelGutter  = 170
	legendWidth  = 230
	marginRight  = 16
	swatchSize   = 13
	legendLine   = 22
)

type faces struct {
	title    font.Face
	subtitle font.Face
	label    font.Face
	axis     font.Face
}

func (f *faces) close() {
	for _, face := range []font.Face{f.title, f.subtitle, f.label, f.axis} {
		if face != nil {
			face.Close()
		}
	}
}

func newFaces(style Style) (*faces, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	italic, err := opentype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse italic font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	f := &faces{}
	for _, role := range []struct {
		dst  *font.Face
		src  *sfnt.Font
		size float64
	}{
		{&f.title, bold, style.TitleSize},
		{&f.subtitle, italic, style.SubtitleSize},
		{&f.label, regular, style.LabelSize},
		{&f.axis, regular, style.AxisSize},
	} {
		face, err := opentype.NewFace(role.src, &opentype.FaceOptions{
			Size: role.size, DPI: 72, Hinting: font.HintingFull,
		})
		if err != nil {
			f.close()
			return nil, fmt.Errorf("build font face: %w", err)
		}
		*role.dst = face
	}
	return f, nil
}

// Compose renders the figure onto a fresh canvas and returns it. It holds no
// state between calls; the same figure and style always produce the same
// pixels.
func Compose(fig Figure, style Style) (*image.NRGBA, error) {
	if style.Width <= 0 || style.Height <= 0 {
		return nil, fmt.Errorf("compose: invalid figure size %dx%d", style.Width, style.Height)
	}
	fc, err := newFaces(style)
	if err != nil {
		return nil, err
	}
	defer fc.close()

	canvas := image.NewNRGBA(image.Rect(0, 0, style.Width, style.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)

	plot := image.Rect(labelGutter, marginTop, style.Width-legendWidth-marginRight, style.Height-marginBottom)

	// Title centered, translucent italic subtitle under it.
	drawCentered(canvas, fc.title, style.Primary, style.Width/2, 34, style.Title)
	sub := style.Primary
	sub.A = 153
	drawCentered(canvas, fc.subtitle, sub, style.Width/2, 58, style.Subtitle)

	// Raster scaled into the plot rect with nearest-neighbor so each record
	// stays a crisp column.
	if fig.Raster != nil && fig.Raster.NumRows() > 0 && fig.Raster.NumCols() > 0 {
		src := fig.Raster.Image()
		xdraw.NearestNeighbor.Scale(canvas, plot, src, src.Bounds(), xdraw.Src, nil)
		drawRowLabels(canvas, fc.label, fig, plot)
	}

	// Index label under the plot's left edge.
	drawText(canvas, fc.axis, style.Primary, plot.Min.X, plot.Max.Y+28, style.XLabel)

	drawLegend(canvas, fc, style, fig.Legend, plot)
	return canvas, nil
}

func drawRowLabels(canvas *image.NRGBA, face font.Face, fig Figure, plot image.Rectangle) {
	rows := fig.Raster.NumRows()
	if rows == 0 || len(fig.Labels) == 0 {
		return
	}
	band := float64(plot.Dy()) / float64(rows)
	metrics := face.Metrics()
	for i, label := range fig.Labels {
		if i >= rows {
			break
		}
		center := float64(plot.Min.Y) + band*(float64(i)+0.5)
		baseline := int(center) + metrics.Ascent.Ceil()/2
		w := font.MeasureString(face, label.Text).Ceil()
		drawText(canvas, face, label.Color, plot.Min.X-10-w, baseline, label.Text)
	}
}

func drawLegend(canvas *image.NRGBA, fc *faces, style Style, entries []LegendEntry, plot image.Rectangle) {
	x := plot.Max.X + 24
	y := plot.Min.Y + 6
	drawText(canvas, fc.label, style.Primary, x, y, style.LegendTitle)
	y += legendLine + 8
	for _, e := range entries {
		if e.Swatch {
			sw := image.Rect(x, y-swatchSize, x+swatchSize, y)
			draw.Draw(canvas, sw, image.NewUniform(e.Color), image.Point{}, draw.Src)
			drawText(canvas, fc.label, style.Primary, x+swatchSize+8, y-1, e.Label)
		} else if e.Label != "" {
			drawText(canvas, fc.label, style.Primary, x, y-1, e.Label)
		}
		y += legendLine
	}
}

func drawText(dst *image.NRGBA, face font.Face, col color.NRGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

func drawCentered(dst *image.NRGBA, face font.Face, col color.NRGBA, cx, y int, s string) {
	w := font.MeasureString(face, s).Ceil()
	drawText(dst, face, col, cx-w/2, y, s)
}
