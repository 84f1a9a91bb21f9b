package chart

import (
	"context"
	"fmt"
	"math"
	"os"

	"semdiff/domain/core"
	"semdiff/domain/scale"
	"semdiff/internal/paths"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// xPadFraction pads the x axis by this share of the material count on each side
const xPadFraction = 0.2

// ErrorBarExporter renders a property as a PNG error-bar chart: one point per
// material with a +/- standard deviation bar, y axis pinned to the rating range.
type ErrorBarExporter struct {
	DPI    int
	Width  vg.Length
	Height vg.Length
}

// NewErrorBarExporter creates an exporter for a width x height inch image at dpi
func NewErrorBarExporter(dpi int, widthIn, heightIn float64) *ErrorBarExporter {
	return &ErrorBarExporter{
		DPI:    dpi,
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
	}
}

func (e *ErrorBarExporter) Kind() core.ArtifactKind { return core.ArtifactChart }

func (e *ErrorBarExporter) Description() string { return "semantic differential scale graph" }

func (e *ErrorBarExporter) FileName(property string) string {
	return paths.New("", property).WithExtras("png")
}

// WriteProperty draws the chart and writes it as PNG to path
func (e *ErrorBarExporter) WriteProperty(ctx context.Context, path string, p *scale.Property, r scale.Range) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pl, err := e.Build(p, r)
	if err != nil {
		return err
	}

	canvas := vgimg.NewWith(vgimg.UseWH(e.Width, e.Height), vgimg.UseDPI(e.DPI))
	pl.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return f.Close()
}

// errorPoints satisfies plotter.XYer and plotter.YErrorer
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Build lays out the chart without rendering it
func (e *ErrorBarExporter) Build(p *scale.Property, r scale.Range) (*plot.Plot, error) {
	rows := p.Rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("property %q has no materials to chart", p.Name)
	}

	n := len(rows)
	pts := errorPoints{
		XYs:     make(plotter.XYs, n),
		YErrors: make(plotter.YErrors, n),
	}
	ticks := make([]plot.Tick, n)
	for i, row := range rows {
		x := float64(i + 1)
		pts.XYs[i] = plotter.XY{X: x, Y: row.Average}
		pts.YErrors[i].Low = row.StdDev
		pts.YErrors[i].High = row.StdDev
		ticks[i] = plot.Tick{Value: x, Label: row.Material}
	}

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build error bars: %w", err)
	}
	bars.CapWidth = vg.Points(4)

	points, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, fmt.Errorf("failed to build points: %w", err)
	}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(3), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes

	pl := plot.New()
	pl.Add(grid, bars, points)

	pl.X.Label.Text = "Materials"
	pl.X.Label.TextStyle.Font.Weight = xfont.WeightBold
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	pl.X.Tick.Label.Rotation = math.Pi / 6
	pl.X.Tick.Label.XAlign = text.XRight
	pl.X.Tick.Label.YAlign = text.YCenter

	pl.Y.Label.Text = p.Name
	pl.Y.Label.TextStyle.Font.Weight = xfont.WeightBold

	// Add widened the axes to the data; pin them back to the layout.
	pl.X.Min, pl.X.Max = xLimits(n)
	pl.Y.Min, pl.Y.Max = yLimits(r)

	return pl, nil
}

func xLimits(n int) (float64, float64) {
	pad := xPadFraction * float64(n)
	return 1 - pad, float64(n) + pad
}

// yLimits returns the rating range, widened when it is a single point
func yLimits(r scale.Range) (float64, float64) {
	if r.Min == r.Max {
		return r.Min - 0.5, r.Max + 0.5
	}
	return r.Min, r.Max
}
