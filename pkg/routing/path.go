package routing

import (
	"strconv"
	"strings"

	"github.com/braunma/rackmap/pkg/layout"
)

// Case names the rule that chose a path's horizontal lane
type Case string

const (
	CaseSameDevice Case = "same_device"
	CaseDownward   Case = "downward"
	CaseClose      Case = "same_rack_close"
	CaseSameRack   Case = "same_rack"
	CaseNear       Case = "cross_rack_near"
	CaseFar        Case = "cross_rack_far"
)

// Path is an axis-aligned polyline from the origin boundary to the destination boundary
type Path struct {
	Points []layout.Point `json:"points" yaml:"points"`
	Case   Case           `json:"case" yaml:"case"`
	Sides  Sides          `json:"sides" yaml:"sides"`
	// MidY is the y of the shared horizontal lane
	MidY float64 `json:"mid_y" yaml:"mid_y"`
}

// Segments returns the number of line segments in the path
func (p Path) Segments() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

// Start returns the first point of the path
func (p Path) Start() layout.Point {
	if len(p.Points) == 0 {
		return layout.Point{}
	}
	return p.Points[0]
}

// End returns the last point of the path
func (p Path) End() layout.Point {
	if len(p.Points) == 0 {
		return layout.Point{}
	}
	return p.Points[len(p.Points)-1]
}

// D renders the path as SVG path data, e.g. "M 10 20 L 30 20"
func (p Path) D() string {
	var b strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
	}
	return b.String()
}

// dedupe drops consecutive repeated points
func dedupe(points []layout.Point) []layout.Point {
	out := make([]layout.Point, 0, len(points))
	for _, pt := range points {
		if n := len(out); n > 0 && out[n-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	return out
}
