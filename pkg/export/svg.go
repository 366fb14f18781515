package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/engine"
)

const (
	svgPadding    = 80.0
	svgBackground = "#1e1e1e"
	svgRackFill   = "#2b2b2b"
	svgDeviceFill = "#3c3c3c"
	svgText       = "#e0e0e0"
	svgPortFill   = "#ffffff"
	fontFamily    = "monospace"
)

// RenderSVG draws racks, devices, cables and ports for inspection.
// It is a debugging aid, not a styled diagram.
func RenderSVG(result *engine.Result) []byte {
	if result == nil {
		result = &engine.Result{}
	}
	minX, minY, width, height := bounds(result)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, width, height, width, height)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		minX, minY, width, height, svgBackground)

	for _, r := range result.Racks {
		fmt.Fprintf(&buf, `  <rect class="rack" id="rack-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			r.ID, r.X, r.Y, r.Width, r.Height, svgRackFill, svgText)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" fill="%s" font-family="%s" font-size="14" text-anchor="middle">%s</text>`+"\n",
			r.CenterX(), r.Y+constants.RackTitleOffset, svgText, fontFamily, escapeXML(r.Name))
	}

	for _, d := range result.Devices {
		fmt.Fprintf(&buf, `  <rect class="device %s" id="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			d.Kind, escapeXML(d.Ref().String()), d.X, d.Y, d.Width, d.Height, svgDeviceFill, svgText)
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" fill="%s" font-family="%s" font-size="11" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			d.CenterX(), d.CenterY(), svgText, fontFamily, escapeXML(d.Name))
	}

	for _, c := range result.Cables {
		fmt.Fprintf(&buf, `  <path class="cable" id="cable-%d" data-group="%s" d="%s" fill="none" stroke="%s" stroke-width="2"><title>%s</title></path>`+"\n",
			c.ID, escapeXML(c.Group), c.Path, escapeXML(c.Color), escapeXML(c.Label))
	}

	for _, p := range result.Ports {
		fmt.Fprintf(&buf, `  <circle class="port %s" cx="%.1f" cy="%.1f" r="4" fill="%s" data-cable="%d"/>`+"\n",
			p.Side, p.X, p.Y, svgPortFill, p.CableID)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// bounds returns the origin and size of a canvas covering every rack, cable point and port.
// The origin stays at 0,0 unless a lane or loop reaches past the top or left edge.
func bounds(result *engine.Result) (minX, minY, width, height float64) {
	var maxX, maxY float64
	extend := func(left, top, right, bottom float64) {
		minX, minY = min(minX, left), min(minY, top)
		maxX, maxY = max(maxX, right), max(maxY, bottom)
	}
	for _, r := range result.Racks {
		extend(r.Left()-svgPadding, r.Top()-svgPadding, r.Right(), r.Bottom())
	}
	for _, c := range result.Cables {
		for _, p := range c.Points {
			extend(p.X-svgPadding, p.Y-svgPadding, p.X, p.Y)
		}
	}
	for _, p := range result.Ports {
		extend(p.X-svgPadding, p.Y-svgPadding, p.X, p.Y)
	}
	return minX, minY, maxX + svgPadding - minX, maxY + svgPadding - minY
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
