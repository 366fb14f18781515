package engine

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/ports"
)

// SameLane returns the routed cables sharing the visual lane of the given cable, itself included
func (r *Result) SameLane(cableID int) []CableRoute {
	if r == nil || r.lanes == nil {
		return nil
	}
	lane := r.lanes.SameLane(cableID)
	return lo.Filter(r.Cables, func(c CableRoute, _ int) bool {
		return lo.Contains(lane, c.ID)
	})
}

// FilterByDevice returns the cables with the device at either end
func (r *Result) FilterByDevice(ref models.Ref) []CableRoute {
	if r == nil {
		return nil
	}
	return lo.Filter(r.Cables, func(c CableRoute, _ int) bool {
		return c.Origin == ref || c.Destination == ref
	})
}

// Select returns a copy of the result reduced to the cables and ports of one device.
// Racks and devices are kept so the selection is drawn in context.
func (r *Result) Select(ref models.Ref) *Result {
	if r == nil {
		return nil
	}
	selected := *r
	selected.Cables = r.FilterByDevice(ref)

	ids := lo.SliceToMap(selected.Cables, func(c CableRoute) (int, bool) {
		return c.ID, true
	})
	selected.Ports = lo.Filter(r.Ports, func(p ports.Port, _ int) bool {
		return ids[p.CableID]
	})
	return &selected
}

// Connections returns the routed cables ordered by label, then id
func (r *Result) Connections() []CableRoute {
	if r == nil {
		return nil
	}
	out := slices.Clone(r.Cables)
	slices.SortStableFunc(out, func(a, b CableRoute) int {
		return cmp.Or(cmp.Compare(a.Label, b.Label), cmp.Compare(a.ID, b.ID))
	})
	return out
}
