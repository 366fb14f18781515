// Package ports places the per-device attachment dots for cables.
package ports

import (
	"github.com/samber/lo"

	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/layout"
	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/routing"
)

// Link is a cable whose two endpoints were both resolved
type Link struct {
	CableID     int
	Origin      routing.Endpoint
	Destination routing.Endpoint
}

// Port is one attachment point on a device edge. X and Y are the centre of the dot.
type Port struct {
	Device  models.Ref   `json:"device" yaml:"device"`
	Side    routing.Side `json:"side" yaml:"side"`
	CableID int          `json:"cable_id" yaml:"cable_id"`
	Index   int          `json:"index" yaml:"index"`
	X       float64      `json:"x" yaml:"x"`
	Y       float64      `json:"y" yaml:"y"`
}

type sideKey struct {
	device models.Ref
	side   routing.Side
}

type sideList struct {
	box    layout.Box
	cables []int
}

// Allocate assigns every link one port on each of its devices.
// Sides come from routing.ResolveSides; ports on one side keep the order links were given in.
func Allocate(links []Link) []Port {
	lists := make(map[sideKey]*sideList)
	var order []sideKey

	attach := func(e routing.Endpoint, side routing.Side, cableID int) {
		key := sideKey{device: e.Ref, side: side}
		list, ok := lists[key]
		if !ok {
			list = &sideList{box: e.Box}
			lists[key] = list
			order = append(order, key)
		}
		list.cables = append(list.cables, cableID)
	}

	for _, l := range links {
		sides := routing.ResolveSides(l.Origin, l.Destination)
		attach(l.Origin, sides.Exit, l.CableID)
		attach(l.Destination, sides.Entry, l.CableID)
	}

	var ports []Port
	for _, key := range order {
		list := lists[key]
		x := list.box.Left()
		if key.side == routing.SideRight {
			x = list.box.Right()
		}
		for i, cableID := range list.cables {
			ports = append(ports, Port{
				Device:  key.device,
				Side:    key.side,
				CableID: cableID,
				Index:   i,
				X:       x,
				Y:       portY(list.box, i, len(list.cables)),
			})
		}
	}
	return ports
}

// portY centres a lone port on the edge and stacks several from the top
func portY(box layout.Box, index, count int) float64 {
	if count == 1 {
		return box.CenterY()
	}
	return box.Y + constants.PortTopOffset + constants.PortSize/2 + float64(index)*(constants.PortSize+constants.PortGap)
}

// ForDevice returns the ports of one device, in allocation order
func ForDevice(ports []Port, ref models.Ref) []Port {
	return lo.Filter(ports, func(p Port, _ int) bool {
		return p.Device == ref
	})
}
