package routing

import (
	"math"

	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/layout"
)

// RoutingStrategy computes the path of one cable between two endpoints
type RoutingStrategy interface {
	Name() Case
	ComputePath(origin, destination Endpoint) Path
}

// Anchors are the boundary points and their stand-offs for one cable
type Anchors struct {
	Sides Sides
	P1    layout.Point
	P1Out layout.Point
	P2    layout.Point
	P2In  layout.Point
}

func anchorOffset(e Endpoint) float64 {
	if e.IsPowerBackup {
		return constants.AnchorOffsetUPS
	}
	return constants.AnchorOffsetStandard
}

func clearance(e Endpoint) float64 {
	if e.IsPowerBackup {
		return constants.ClearanceUPS
	}
	return constants.ClearanceStandard
}

func edgeX(b layout.Box, side Side) float64 {
	if side == SideRight {
		return b.Right()
	}
	return b.Left()
}

// ComputeAnchors places the exit and entry points on the sides chosen by ResolveSides.
// A self-referential cable leaves at one third of the box height and returns at two thirds.
func ComputeAnchors(origin, destination Endpoint) Anchors {
	sides := ResolveSides(origin, destination)

	y1 := origin.Box.Y + anchorOffset(origin)
	y2 := destination.Box.Y + anchorOffset(destination)
	if origin.Ref == destination.Ref {
		y1 = origin.Box.Y + origin.Box.Height/3
		y2 = origin.Box.Y + 2*origin.Box.Height/3
	}

	p1 := layout.Point{X: edgeX(origin.Box, sides.Exit), Y: y1}
	p2 := layout.Point{X: edgeX(destination.Box, sides.Entry), Y: y2}
	return Anchors{
		Sides: sides,
		P1:    p1,
		P1Out: layout.Point{X: p1.X + sides.Exit.direction()*clearance(origin), Y: p1.Y},
		P2:    p2,
		P2In:  layout.Point{X: p2.X + sides.Entry.direction()*clearance(destination), Y: p2.Y},
	}
}

// isDownward reports whether the destination stand-off sits clearly below the origin stand-off
func (a Anchors) isDownward() bool {
	return a.P2In.Y > a.P1Out.Y+constants.DownwardEpsilon
}

// downwardLane drops straight to just above the entry height without rising above the origin
func (a Anchors) downwardLane(shift float64) float64 {
	return math.Max(a.P2In.Y-constants.EntryMargin-shift, a.P1Out.Y)
}

// columnLane keeps the lane between both stand-offs when they sit in one column,
// where any lane outside that span would double back over itself
func (a Anchors) columnLane(midY float64) float64 {
	if a.P1Out.X != a.P2In.X {
		return midY
	}
	top, bottom := math.Min(a.P1Out.Y, a.P2In.Y), math.Max(a.P1Out.Y, a.P2In.Y)
	return math.Min(math.Max(midY, top), bottom)
}

// powerBackupCorrection compensates for the taller anchors of power-backup units
func powerBackupCorrection(origin, destination Endpoint) float64 {
	switch {
	case origin.IsPowerBackup && destination.IsPowerBackup:
		return constants.UPSBothEndsCorrection
	case origin.IsPowerBackup:
		return constants.UPSOriginCorrection
	case destination.IsPowerBackup:
		return constants.UPSDestCorrection
	default:
		return 0
	}
}

// build joins the anchors through a horizontal lane at midY
func build(a Anchors, c Case, midY float64) Path {
	return Path{
		Points: dedupe([]layout.Point{
			a.P1,
			a.P1Out,
			{X: a.P1Out.X, Y: midY},
			{X: a.P2In.X, Y: midY},
			a.P2In,
			a.P2,
		}),
		Case:  c,
		Sides: a.Sides,
		MidY:  midY,
	}
}

// routeWithLane applies the downward rule first, then the strategy's own lane rule and the shift
func routeWithLane(origin, destination Endpoint, shift float64, lane func(Anchors) (Case, float64)) Path {
	a := ComputeAnchors(origin, destination)
	if a.isDownward() {
		return build(a, CaseDownward, a.downwardLane(shift))
	}
	c, midY := lane(a)
	return build(a, c, a.columnLane(midY+powerBackupCorrection(origin, destination)-shift))
}

// SameDevice loops a cable back into the device it leaves
type SameDevice struct {
	Shift float64
}

func (SameDevice) Name() Case { return CaseSameDevice }

// ComputePath exits right, runs down the stand-off column and re-enters right.
// The shift pushes the loop further out so parallel loops stay apart.
func (s SameDevice) ComputePath(origin, destination Endpoint) Path {
	a := ComputeAnchors(origin, destination)
	a.P1Out.X += s.Shift
	a.P2In.X += s.Shift
	return build(a, CaseSameDevice, a.P1Out.Y)
}

// SameRack routes along the outside of the rack both devices share
type SameRack struct {
	Shift float64
}

func (SameRack) Name() Case { return CaseSameRack }

func (s SameRack) ComputePath(origin, destination Endpoint) Path {
	return routeWithLane(origin, destination, s.Shift, func(a Anchors) (Case, float64) {
		if math.Abs(a.P1Out.Y-a.P2In.Y) < constants.CloseSeparation {
			return CaseClose, a.P1Out.Y
		}
		return CaseSameRack, (a.P1Out.Y + a.P2In.Y) / 2
	})
}

// CrossRackNear arcs slightly above both stand-offs between neighbouring racks
type CrossRackNear struct {
	Shift float64
}

func (CrossRackNear) Name() Case { return CaseNear }

func (s CrossRackNear) ComputePath(origin, destination Endpoint) Path {
	return routeWithLane(origin, destination, s.Shift, func(a Anchors) (Case, float64) {
		return CaseNear, math.Min(a.P1Out.Y, a.P2In.Y) - constants.NearLift
	})
}

// CrossRackFar arcs higher so long cables cross fewer short ones
type CrossRackFar struct {
	Shift float64
}

func (CrossRackFar) Name() Case { return CaseFar }

func (s CrossRackFar) ComputePath(origin, destination Endpoint) Path {
	return routeWithLane(origin, destination, s.Shift, func(a Anchors) (Case, float64) {
		return CaseFar, math.Min(a.P1Out.Y, a.P2In.Y) - constants.FarLift
	})
}

// SelectStrategy picks the strategy for a pair of endpoints.
// shift is the lane separation applied on top of the strategy's own lane.
func SelectStrategy(origin, destination Endpoint, shift float64) RoutingStrategy {
	switch {
	case origin.Ref == destination.Ref:
		return SameDevice{Shift: shift}
	case origin.RackID == destination.RackID:
		return SameRack{Shift: shift}
	}

	a := ComputeAnchors(origin, destination)
	if math.Abs(a.P1Out.X-a.P2In.X) < constants.NearDistance {
		return CrossRackNear{Shift: shift}
	}
	return CrossRackFar{Shift: shift}
}
