package charts

import (
	"bytes"
	"testing"

	"github.com/securecheck/securecheck-webserver/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func sampleCounts() []models.ViolationCount {
	return []models.ViolationCount{
		{Violation: "Speeding", Count: 4},
		{Violation: "Seatbelt", Count: 3},
		{Violation: "DUI", Count: 2},
		{Violation: "Equipment", Count: 1},
	}
}

func TestBarColor(t *testing.T) {
	tests := []struct {
		count int64
		want  interface{}
	}{
		{3, SkyBlue},
		{2, LightGreen},
		{1, DarkRed},
		{0, Gray},
		{4, Gray},
		{10, Gray},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BarColor(tt.count), "count %d", tt.count)
	}
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, format)

	format, err = ParseFormat("svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, format)

	_, err = ParseFormat("gif")
	require.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType(FormatPNG))
	assert.Equal(t, "image/svg+xml", ContentType(FormatSVG))
}

func TestViolationPlot_Axes(t *testing.T) {
	p, err := ViolationPlot(sampleCounts())
	require.NoError(t, err)
	assert.Equal(t, "Violation Frequency", p.Title.Text)
	assert.InDelta(t, 4*1.15, p.X.Max, 1e-9)
}

func TestViolationPlot_MostFrequentOnTop(t *testing.T) {
	p, err := ViolationPlot(sampleCounts())
	require.NoError(t, err)

	ticks := p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max)
	require.Len(t, ticks, 4)

	top, bottom := ticks[0], ticks[0]
	for _, tick := range ticks {
		if tick.Value > top.Value {
			top = tick
		}
		if tick.Value < bottom.Value {
			bottom = tick
		}
	}
	assert.Equal(t, "Speeding", top.Label)
	assert.Equal(t, "Equipment", bottom.Label)
}

func TestRenderViolationsBytes_PNG(t *testing.T) {
	out, err := RenderViolationsBytes(sampleCounts(), FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pngMagic))
}

func TestRenderViolationsBytes_SVG(t *testing.T) {
	out, err := RenderViolationsBytes(sampleCounts(), FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")
	assert.Contains(t, string(out), "Speeding")
}

func TestRenderViolationsBytes_Empty(t *testing.T) {
	out, err := RenderViolationsBytes(nil, FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pngMagic))
}

func TestRenderViolations_UnsupportedFormat(t *testing.T) {
	_, err := RenderViolations(sampleCounts(), "bmp")
	require.Error(t, err)
}
