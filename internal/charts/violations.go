// Package charts draws the dashboard charts with gonum/plot.
package charts

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/securecheck/securecheck-webserver/internal/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	SkyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	LightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	DarkRed    = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	Gray       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// bucketColors is the draw order of the colour buckets.
var bucketColors = []color.RGBA{SkyBlue, LightGreen, DarkRed, Gray}

// BarColor picks the colour of a bar from its count.
func BarColor(count int64) color.RGBA {
	switch count {
	case 3:
		return SkyBlue
	case 2:
		return LightGreen
	case 1:
		return DarkRed
	default:
		return Gray
	}
}

// ContentType returns the MIME type for a chart format.
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ParseFormat maps a requested format onto a supported one. Blank means PNG.
func ParseFormat(raw string) (string, error) {
	switch raw {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", raw)
	}
}

// ViolationPlot builds the horizontal violation bar chart, one bar per violation with
// the first count drawn at the top, and the count written at the tip of each bar.
func ViolationPlot(counts []models.ViolationCount) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Violation Frequency"
	p.X.Label.Text = "Count"
	p.Y.Label.Text = "Violation"
	p.X.Min = 0

	if len(counts) == 0 {
		return p, nil
	}

	names := make([]string, len(counts))
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(counts)),
		Labels: make([]string, len(counts)),
	}
	var maxCount int64
	for i, c := range counts {
		row := rowOf(i, len(counts))
		names[row] = c.Violation
		labels.XYs[row] = plotter.XY{X: float64(c.Count), Y: float64(row)}
		labels.Labels[row] = strconv.FormatInt(c.Count, 10)
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	// One bar series per colour; bars outside the bucket are zero length.
	for _, bucket := range bucketColors {
		values := make(plotter.Values, len(counts))
		used := false
		for i, c := range counts {
			if BarColor(c.Count) == bucket {
				values[rowOf(i, len(counts))] = float64(c.Count)
				used = true
			}
		}
		if !used {
			continue
		}

		bars, err := plotter.NewBarChart(values, vg.Points(18))
		if err != nil {
			return nil, fmt.Errorf("could not create bar chart: %+v", err)
		}
		bars.Horizontal = true
		bars.Color = bucket
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	tips, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("could not create bar labels: %+v", err)
	}
	tips.Offset = vg.Point{X: vg.Points(4), Y: -vg.Points(4)}
	p.Add(tips)

	// Leave room for the tip labels.
	p.X.Max = float64(maxCount) * 1.15
	p.NominalY(names...)

	return p, nil
}

// RenderViolations draws the violation chart in the given format (png or svg).
func RenderViolations(counts []models.ViolationCount, format string) (io.WriterTo, error) {
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	p, err := ViolationPlot(counts)
	if err != nil {
		return nil, err
	}

	height := vg.Length(len(counts)+2) * vg.Centimeter
	if height < 8*vg.Centimeter {
		height = 8 * vg.Centimeter
	}

	writer, err := p.WriterTo(20*vg.Centimeter, height, format)
	if err != nil {
		return nil, fmt.Errorf("could not get plot writer: %+v", err)
	}

	return writer, nil
}

// RenderViolationsBytes renders the chart into memory.
func RenderViolationsBytes(counts []models.ViolationCount, format string) ([]byte, error) {
	writer, err := RenderViolations(counts, format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// rowOf maps a count index to its Y row. Row 0 is drawn at the bottom.
func rowOf(i, n int) int {
	return n - 1 - i
}
