package layout

// Point is an absolute canvas coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Box is an axis-aligned rectangle anchored at its top-left corner
type Box struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func (b Box) Left() float64    { return b.X }
func (b Box) Right() float64   { return b.X + b.Width }
func (b Box) Top() float64     { return b.Y }
func (b Box) Bottom() float64  { return b.Y + b.Height }
func (b Box) CenterX() float64 { return b.X + b.Width/2 }
func (b Box) CenterY() float64 { return b.Y + b.Height/2 }

// Intersects reports whether the interiors of two boxes overlap.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// OnBoundary reports whether p lies on the outline of the box
func (b Box) OnBoundary(p Point) bool {
	onVertical := (p.X == b.Left() || p.X == b.Right()) && p.Y >= b.Top() && p.Y <= b.Bottom()
	onHorizontal := (p.Y == b.Top() || p.Y == b.Bottom()) && p.X >= b.Left() && p.X <= b.Right()
	return onVertical || onHorizontal
}

// ContainsStrictly reports whether p lies in the interior of the box
func (b Box) ContainsStrictly(p Point) bool {
	return p.X > b.Left() && p.X < b.Right() && p.Y > b.Top() && p.Y < b.Bottom()
}
