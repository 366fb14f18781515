package layout

import (
	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/models"
)

// PlacedDevice is a device with its absolute bounding box
type PlacedDevice struct {
	ID            int         `json:"id" yaml:"id"`
	Kind          models.Kind `json:"kind" yaml:"kind"`
	Name          string      `json:"name" yaml:"name"`
	RackID        int         `json:"rack_id" yaml:"rack_id"`
	Slot          int         `json:"slot" yaml:"slot"`
	IsPowerBackup bool        `json:"is_power_backup" yaml:"is_power_backup"`
	Box           `yaml:",inline"`
}

// Ref returns the kind-scoped identity of the device
func (d *PlacedDevice) Ref() models.Ref {
	return models.Ref{Kind: d.Kind, ID: d.ID}
}

// Registry is the unified, read-only list of placed devices with lookup by reference
type Registry struct {
	devices []PlacedDevice
	racks   map[int]PlacedRack
	index   map[models.Ref]int
}

// Devices returns the placed devices in rack order, then slot order
func (r *Registry) Devices() []PlacedDevice {
	if r == nil {
		return nil
	}
	return r.devices
}

// Lookup finds a placed device. The first device wins when a catalog repeats a reference.
func (r *Registry) Lookup(ref models.Ref) (PlacedDevice, bool) {
	if r == nil {
		return PlacedDevice{}, false
	}
	i, ok := r.index[ref]
	if !ok {
		return PlacedDevice{}, false
	}
	return r.devices[i], true
}

// Rack returns the placed rack holding the given id
func (r *Registry) Rack(id int) (PlacedRack, bool) {
	if r == nil {
		return PlacedRack{}, false
	}
	rack, ok := r.racks[id]
	return rack, ok
}

// Len returns the number of placed devices
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.devices)
}

// DeviceBox returns the footprint of a device of the given kind at (x, y)
func DeviceBox(kind models.Kind, x, y float64) Box {
	if kind.IsPowerBackup() {
		return Box{X: x, Y: y, Width: constants.UPSWidth, Height: constants.UPSHeight}
	}
	return Box{X: x, Y: y, Width: constants.DeviceWidth, Height: constants.DeviceHeight}
}

// SlotPosition returns the top-left corner of a standard device in the given slot
func SlotPosition(rack PlacedRack, slot int) Point {
	return Point{
		X: rack.X + constants.DeviceLeftInset,
		Y: rack.Y + constants.DeviceTitleClearance + float64(slot-1)*constants.DeviceRowPitch,
	}
}

// PowerBackupPosition returns the top-left corner of the index-th power-backup unit of a rack.
// Units fill a two-column grid from the bottom edge upward, centred in the rack's inner width.
func PowerBackupPosition(rack PlacedRack, index int) Point {
	col := index % constants.UPSColumns
	row := index / constants.UPSColumns

	innerWidth := rack.Width - 2*constants.UPSSideInset
	blockWidth := float64(constants.UPSColumns)*constants.UPSWidth + float64(constants.UPSColumns-1)*constants.UPSColumnGap
	offsetX := (innerWidth - blockWidth) / 2

	return Point{
		X: rack.X + constants.UPSSideInset + offsetX + float64(col)*(constants.UPSWidth+constants.UPSColumnGap),
		Y: rack.Bottom() - constants.UPSBottomPadding - constants.UPSHeight - float64(row)*(constants.UPSHeight+constants.UPSRowGap),
	}
}

// ResolveCoordinates turns slot assignments into absolute device boxes.
// Devices whose rack is not among racks are dropped.
func ResolveCoordinates(racks []PlacedRack, slots map[int][]Slotted) *Registry {
	reg := &Registry{
		racks: make(map[int]PlacedRack, len(racks)),
		index: make(map[models.Ref]int),
	}

	for _, rack := range racks {
		if _, seen := reg.racks[rack.ID]; seen {
			continue
		}
		reg.racks[rack.ID] = rack

		backupIndex := 0
		for _, s := range slots[rack.ID] {
			d := s.Device
			var pos Point
			if d.Kind.IsPowerBackup() {
				pos = PowerBackupPosition(rack, backupIndex)
				backupIndex++
			} else {
				pos = SlotPosition(rack, s.Slot)
			}

			placed := PlacedDevice{
				ID:            d.ID,
				Kind:          d.Kind,
				Name:          d.Name,
				RackID:        rack.ID,
				Slot:          s.Slot,
				IsPowerBackup: d.Kind.IsPowerBackup(),
				Box:           DeviceBox(d.Kind, pos.X, pos.Y),
			}
			if _, dup := reg.index[placed.Ref()]; !dup {
				reg.index[placed.Ref()] = len(reg.devices)
			}
			reg.devices = append(reg.devices, placed)
		}
	}
	return reg
}

// Overlap records a power-backup unit whose box intersects a standard device in the same rack
type Overlap struct {
	RackID      int        `json:"rack_id" yaml:"rack_id"`
	PowerBackup models.Ref `json:"power_backup" yaml:"power_backup"`
	Device      models.Ref `json:"device" yaml:"device"`
}

// DetectOverlaps reports every power-backup/standard device collision. Geometry is left untouched.
func DetectOverlaps(reg *Registry) []Overlap {
	var overlaps []Overlap
	devices := reg.Devices()
	for _, backup := range devices {
		if !backup.IsPowerBackup {
			continue
		}
		for _, d := range devices {
			if d.IsPowerBackup || d.RackID != backup.RackID {
				continue
			}
			if backup.Box.Intersects(d.Box) {
				overlaps = append(overlaps, Overlap{
					RackID:      backup.RackID,
					PowerBackup: backup.Ref(),
					Device:      d.Ref(),
				})
			}
		}
	}
	return overlaps
}
