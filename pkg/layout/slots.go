package layout

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/models"
)

// Slotted is a device with its 1-based rank inside its rack
type Slotted struct {
	Device models.Device
	Slot   int
}

// compareDevices orders devices by explicit order, then priority, then id.
// Kind is the final tie-breaker because ids are only unique per kind.
func compareDevices(a, b models.Device) int {
	return cmp.Or(
		cmp.Compare(orderKey(a), orderKey(b)),
		cmp.Compare(priorityKey(a), priorityKey(b)),
		cmp.Compare(a.ID, b.ID),
		cmp.Compare(a.Kind, b.Kind),
	)
}

func orderKey(d models.Device) int {
	if d.Order == nil {
		return constants.OrderSentinel
	}
	return *d.Order
}

func priorityKey(d models.Device) int {
	if d.Priority == nil {
		return constants.PrioritySentinel
	}
	return *d.Priority
}

// AssignSlots groups rack-mounted devices by rack id and ranks each group.
// Devices without a rack are left out. Power-backup units are ranked as well;
// their slot is bookkeeping only and does not drive their coordinates.
func AssignSlots(devices []models.Device) map[int][]Slotted {
	mounted := lo.Filter(devices, func(d models.Device, _ int) bool {
		return d.RackID != nil
	})
	byRack := lo.GroupBy(mounted, func(d models.Device) int {
		return *d.RackID
	})

	slots := make(map[int][]Slotted, len(byRack))
	for rackID, group := range byRack {
		sorted := slices.Clone(group)
		slices.SortStableFunc(sorted, compareDevices)

		ranked := make([]Slotted, len(sorted))
		for i, d := range sorted {
			ranked[i] = Slotted{Device: d, Slot: i + 1}
		}
		slots[rackID] = ranked
	}
	return slots
}
