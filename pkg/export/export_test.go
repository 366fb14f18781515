package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/braunma/rackmap/pkg/engine"
	"github.com/braunma/rackmap/pkg/layout"
	"github.com/braunma/rackmap/pkg/models"
)

func intPtr(i int) *int { return &i }

func sampleResult() *engine.Result {
	catalog := &models.Catalog{
		Racks: []models.Rack{{ID: 1, Name: "A&B"}, {ID: 2, Name: "C"}},
		Servers: []models.Device{
			{ID: 1, Name: "web <1>", RackID: intPtr(1)},
			{ID: 2, Name: "web 2", RackID: intPtr(2)},
		},
		Switches: []models.Device{{ID: 1, Name: "tor", RackID: intPtr(1)}},
		Cables: []models.Cable{
			{ID: 1, Label: "uplink", OriginKind: "server", OriginID: 1, DestinationKind: "switch", DestinationID: 1},
			{ID: 2, Label: "cross", OriginKind: "server", OriginID: 2, DestinationKind: "server", DestinationID: 1, Color: "red"},
		},
	}
	return engine.Layout(catalog, engine.DefaultOptions())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "json", expected: FormatJSON},
		{input: "YAML", expected: FormatYAML},
		{input: "yml", expected: FormatYAML},
		{input: " svg ", expected: FormatSVG},
		{input: "png", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestWriteJSONIsByteIdentical(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WriteJSON(&first, sampleResult()))
	require.NoError(t, WriteJSON(&second, sampleResult()))
	assert.Equal(t, first.String(), second.String())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(first.Bytes(), &decoded))
	assert.Contains(t, decoded, "racks")
	assert.Contains(t, decoded, "cables")

	devices := decoded["devices"].([]any)
	require.NotEmpty(t, devices)
	assert.Equal(t, "switch", devices[0].(map[string]any)["kind"], "switch sorts before server on equal ids")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleResult()))

	var decoded struct {
		Racks []struct {
			ID    int     `yaml:"id"`
			X     float64 `yaml:"x"`
			Width float64 `yaml:"width"`
		} `yaml:"racks"`
		Cables []struct {
			ID    int    `yaml:"id"`
			Color string `yaml:"color"`
		} `yaml:"cables"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Racks, 2)
	assert.Equal(t, 260.0, decoded.Racks[0].Width)
	require.Len(t, decoded.Cables, 2)
	assert.Equal(t, "red", decoded.Cables[1].Color)
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(sampleResult()))

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, 2, strings.Count(svg, `class="rack"`))
	assert.Equal(t, 2, strings.Count(svg, `class="cable"`))
	assert.Equal(t, 4, strings.Count(svg, `<circle`))
	assert.Contains(t, svg, "A&amp;B")
	assert.Contains(t, svg, "web &lt;1&gt;")
	assert.NotContains(t, svg, "web <1>")
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(nil))
	assert.Contains(t, svg, `viewBox="0.0 0.0 80.0 80.0"`)
}

func TestRenderSVGKeepsLanesAboveTheCanvas(t *testing.T) {
	result := &engine.Result{
		Cables: []engine.CableRoute{{
			ID:     1,
			Points: []layout.Point{{X: 100, Y: 50}, {X: 100, Y: -200}, {X: 300, Y: -200}, {X: 300, Y: 50}},
		}},
	}

	svg := string(RenderSVG(result))

	assert.Contains(t, svg, `viewBox="0.0 -280.0 380.0 410.0"`)
	assert.Contains(t, svg, `<rect x="0.0" y="-280.0" width="380.0" height="410.0"`)
}

func TestRenderSVGCoversEveryRack(t *testing.T) {
	result := sampleResult()
	minX, minY, width, height := bounds(result)

	for _, r := range result.Racks {
		assert.GreaterOrEqual(t, r.Left(), minX)
		assert.GreaterOrEqual(t, r.Top(), minY)
		assert.LessOrEqual(t, r.Right(), minX+width)
		assert.LessOrEqual(t, r.Bottom(), minY+height)
	}
	for _, c := range result.Cables {
		for _, p := range c.Points {
			assert.GreaterOrEqual(t, p.Y, minY, "cable %d", c.ID)
		}
	}
}

func TestWriteDispatch(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatSVG} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleResult(), f), "format %s", f)
		assert.NotZero(t, buf.Len())
	}
	assert.Error(t, Write(&bytes.Buffer{}, sampleResult(), Format("pdf")))
}
