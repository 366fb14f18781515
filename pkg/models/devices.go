package models

// Device represents one piece of rack equipment.
// Kind is not part of the document: it comes from the catalog section holding the device.
type Device struct {
	ID       int    `yaml:"id" json:"id" toml:"id" validate:"required"`
	Name     string `yaml:"name" json:"name" toml:"name" validate:"required"`
	RackID   *int   `yaml:"rack_id" json:"rack_id" toml:"rack_id"`
	Order    *int   `yaml:"order,omitempty" json:"order,omitempty" toml:"order,omitempty"`
	Priority *int   `yaml:"priority,omitempty" json:"priority,omitempty" toml:"priority,omitempty"`
	Kind     Kind   `yaml:"-" json:"-" toml:"-"`
}

// Ref returns the kind-scoped identity of the device
func (d *Device) Ref() Ref {
	return Ref{Kind: d.Kind, ID: d.ID}
}

// Cable represents a connection between two endpoints.
// Endpoint kinds are kept as written so that one bad cable never rejects the catalog.
type Cable struct {
	ID              int    `yaml:"id" json:"id" toml:"id" validate:"required"`
	Label           string `yaml:"label" json:"label" toml:"label" validate:"required"`
	OriginKind      string `yaml:"origin_kind" json:"origin_kind" toml:"origin_kind" validate:"required"`
	OriginID        int    `yaml:"origin_id" json:"origin_id" toml:"origin_id"`
	DestinationKind string `yaml:"destination_kind" json:"destination_kind" toml:"destination_kind" validate:"required"`
	DestinationID   int    `yaml:"destination_id" json:"destination_id" toml:"destination_id"`
	Color           string `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
}

// Origin parses the origin endpoint. ok is false when the kind name is unknown.
func (c *Cable) Origin() (Ref, bool) {
	kind, ok := ParseKind(c.OriginKind)
	return Ref{Kind: kind, ID: c.OriginID}, ok
}

// Destination parses the destination endpoint. ok is false when the kind name is unknown.
func (c *Cable) Destination() (Ref, bool) {
	kind, ok := ParseKind(c.DestinationKind)
	return Ref{Kind: kind, ID: c.DestinationID}, ok
}

// IsStructural reports whether either endpoint is a rack
func (c *Cable) IsStructural() bool {
	o, _ := c.Origin()
	d, _ := c.Destination()
	return o.Kind == KindRack || d.Kind == KindRack
}
