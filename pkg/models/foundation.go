package models

import "strings"

// RackSize is the height class of a rack
type RackSize string

const (
	RackSizeStandard RackSize = "standard"
	RackSizeCompact  RackSize = "compact"
)

// Normalize maps catalog spellings onto a known size; anything unrecognised is standard.
func (s RackSize) Normalize() RackSize {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "compact", "small", "chico":
		return RackSizeCompact
	default:
		return RackSizeStandard
	}
}

// Rack represents a rack enclosure
type Rack struct {
	ID   int      `yaml:"id" json:"id" toml:"id" validate:"required"`
	Name string   `yaml:"name" json:"name" toml:"name" validate:"required"`
	Size RackSize `yaml:"size,omitempty" json:"size,omitempty" toml:"size,omitempty"`
}

// IsCompact reports whether the rack uses the reduced height
func (r *Rack) IsCompact() bool {
	return r.Size.Normalize() == RackSizeCompact
}

// Catalog is the immutable input document: racks, devices partitioned by kind, and cables.
type Catalog struct {
	Racks           []Rack   `yaml:"racks,omitempty" json:"racks,omitempty" toml:"racks,omitempty" validate:"dive"`
	Routers         []Device `yaml:"routers,omitempty" json:"routers,omitempty" toml:"routers,omitempty" validate:"dive"`
	Firewalls       []Device `yaml:"firewalls,omitempty" json:"firewalls,omitempty" toml:"firewalls,omitempty" validate:"dive"`
	RoutingSwitches []Device `yaml:"routing_switches,omitempty" json:"routing_switches,omitempty" toml:"routing_switches,omitempty" validate:"dive"`
	Switches        []Device `yaml:"switches,omitempty" json:"switches,omitempty" toml:"switches,omitempty" validate:"dive"`
	Servers         []Device `yaml:"servers,omitempty" json:"servers,omitempty" toml:"servers,omitempty" validate:"dive"`
	Storage         []Device `yaml:"storage,omitempty" json:"storage,omitempty" toml:"storage,omitempty" validate:"dive"`
	UPS             []Device `yaml:"ups,omitempty" json:"ups,omitempty" toml:"ups,omitempty" validate:"dive"`
	PowerFeeds      []Device `yaml:"power_feeds,omitempty" json:"power_feeds,omitempty" toml:"power_feeds,omitempty" validate:"dive"`
	Cables          []Cable  `yaml:"cables,omitempty" json:"cables,omitempty" toml:"cables,omitempty" validate:"dive"`
}

// section returns the device list holding the given kind
func (c *Catalog) section(kind Kind) *[]Device {
	switch kind {
	case KindRouter:
		return &c.Routers
	case KindFirewall:
		return &c.Firewalls
	case KindRoutingSwitch:
		return &c.RoutingSwitches
	case KindSwitch:
		return &c.Switches
	case KindServer:
		return &c.Servers
	case KindStorage:
		return &c.Storage
	case KindUPS:
		return &c.UPS
	case KindPowerFeed:
		return &c.PowerFeeds
	default:
		return nil
	}
}

// Devices flattens every device section in DeviceKinds order, stamping each copy with its kind.
func (c *Catalog) Devices() []Device {
	var out []Device
	for _, kind := range DeviceKinds {
		for _, d := range *c.section(kind) {
			d.Kind = kind
			out = append(out, d)
		}
	}
	return out
}

// Merge appends every section of other onto c, preserving order.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.Racks = append(c.Racks, other.Racks...)
	for _, kind := range DeviceKinds {
		dst := c.section(kind)
		*dst = append(*dst, *other.section(kind)...)
	}
	c.Cables = append(c.Cables, other.Cables...)
}
