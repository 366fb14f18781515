// Package routing computes orthogonal cable paths between placed devices.
package routing

import (
	"fmt"

	"github.com/braunma/rackmap/pkg/layout"
	"github.com/braunma/rackmap/pkg/models"
)

// Side is the vertical device edge a cable leaves or enters through
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*s = SideLeft
	case "right":
		*s = SideRight
	default:
		return fmt.Errorf("unknown side %q", string(text))
	}
	return nil
}

// direction is -1 for the left edge and +1 for the right edge
func (s Side) direction() float64 {
	if s == SideRight {
		return 1
	}
	return -1
}

// Endpoint is one end of a cable: the device box plus the rack it sits in
type Endpoint struct {
	Ref           models.Ref
	RackID        int
	Box           layout.Box
	Rack          layout.Box
	IsPowerBackup bool
}

// EndpointFor builds an endpoint from a placed device and its rack
func EndpointFor(d layout.PlacedDevice, rack layout.PlacedRack) Endpoint {
	return Endpoint{
		Ref:           d.Ref(),
		RackID:        d.RackID,
		Box:           d.Box,
		Rack:          rack.Box,
		IsPowerBackup: d.IsPowerBackup,
	}
}

// Sides is the exit side on the origin and the entry side on the destination
type Sides struct {
	Exit  Side `json:"exit" yaml:"exit"`
	Entry Side `json:"entry" yaml:"entry"`
}

// ResolveSides decides both sides of a cable from a single comparison.
// Port allocation and the router both call it so they can never disagree.
func ResolveSides(origin, destination Endpoint) Sides {
	switch {
	case origin.Ref == destination.Ref:
		return Sides{Exit: SideRight, Entry: SideRight}
	case origin.RackID == destination.RackID:
		// stay outside the rack column, on the half the origin sits in
		side := SideRight
		if origin.Box.CenterX() < origin.Rack.CenterX() {
			side = SideLeft
		}
		return Sides{Exit: side, Entry: side}
	case origin.Box.CenterX() < destination.Box.CenterX():
		return Sides{Exit: SideRight, Entry: SideLeft}
	case origin.Box.CenterX() > destination.Box.CenterX():
		return Sides{Exit: SideLeft, Entry: SideRight}
	default:
		// racks stacked in one column
		return Sides{Exit: SideLeft, Entry: SideLeft}
	}
}
