package models

import (
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
		ok       bool
	}{
		{name: "canonical router", input: "router", expected: KindRouter, ok: true},
		{name: "uppercase alias", input: "FORTINET", expected: KindFirewall, ok: true},
		{name: "routing switch alias", input: "mikrotik", expected: KindRoutingSwitch, ok: true},
		{name: "switch shorthand", input: "sw", expected: KindSwitch, ok: true},
		{name: "storage alias", input: "qnap", expected: KindStorage, ok: true},
		{name: "power feed alias", input: "linea_tension", expected: KindPowerFeed, ok: true},
		{name: "surrounding whitespace", input: " ups ", expected: KindUPS, ok: true},
		{name: "rack endpoint", input: "Rack", expected: KindRack, ok: true},
		{name: "unknown", input: "toaster", expected: KindUnknown, ok: false},
		{name: "empty", input: "", expected: KindUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseKind(tt.input)
			if result != tt.expected || ok != tt.ok {
				t.Errorf("ParseKind(%q) = (%v, %v), expected (%v, %v)", tt.input, result, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestKindRoundTripsThroughString(t *testing.T) {
	for _, kind := range append(append([]Kind{}, DeviceKinds...), KindRack) {
		parsed, ok := ParseKind(kind.String())
		if !ok || parsed != kind {
			t.Errorf("ParseKind(%q) = (%v, %v), expected (%v, true)", kind.String(), parsed, ok, kind)
		}
	}
}

func TestKindIsDevice(t *testing.T) {
	for _, kind := range DeviceKinds {
		if !kind.IsDevice() {
			t.Errorf("%v.IsDevice() = false, expected true", kind)
		}
	}
	if KindRack.IsDevice() {
		t.Error("KindRack.IsDevice() = true, expected false")
	}
	if KindUnknown.IsDevice() {
		t.Error("KindUnknown.IsDevice() = true, expected false")
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Ref
		wantErr bool
	}{
		{name: "server", input: "server:3", want: Ref{Kind: KindServer, ID: 3}},
		{name: "alias", input: "qnap:12", want: Ref{Kind: KindStorage, ID: 12}},
		{name: "missing colon", input: "server3", wantErr: true},
		{name: "rack is not a device", input: "rack:1", wantErr: true},
		{name: "bad id", input: "server:x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRef(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRackSizeNormalize(t *testing.T) {
	tests := []struct {
		input    RackSize
		expected RackSize
	}{
		{"compact", RackSizeCompact},
		{"Small", RackSizeCompact},
		{"chico", RackSizeCompact},
		{"standard", RackSizeStandard},
		{"", RackSizeStandard},
		{"huge", RackSizeStandard},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := tt.input.Normalize(); got != tt.expected {
				t.Errorf("RackSize(%q).Normalize() = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCatalogDevicesStampsKind(t *testing.T) {
	rack := 1
	c := &Catalog{
		Servers: []Device{{ID: 1, Name: "srv-01", RackID: &rack}},
		UPS:     []Device{{ID: 1, Name: "ups-01", RackID: &rack}},
		Routers: []Device{{ID: 7, Name: "edge-01", RackID: &rack}},
	}

	devices := c.Devices()
	if len(devices) != 3 {
		t.Fatalf("Devices() returned %d devices, expected 3", len(devices))
	}

	expected := []Ref{
		{Kind: KindRouter, ID: 7},
		{Kind: KindServer, ID: 1},
		{Kind: KindUPS, ID: 1},
	}
	for i, d := range devices {
		if d.Ref() != expected[i] {
			t.Errorf("Devices()[%d].Ref() = %v, expected %v", i, d.Ref(), expected[i])
		}
	}

	if c.Servers[0].Kind != KindUnknown {
		t.Error("Devices() must not mutate the catalog")
	}
}

func TestCatalogMerge(t *testing.T) {
	a := &Catalog{Racks: []Rack{{ID: 1, Name: "A"}}}
	b := &Catalog{
		Racks:    []Rack{{ID: 2, Name: "B"}},
		Switches: []Device{{ID: 1, Name: "sw-01"}},
		Cables:   []Cable{{ID: 1, Label: "uplink"}},
	}

	a.Merge(b)

	if len(a.Racks) != 2 || a.Racks[1].Name != "B" {
		t.Errorf("Merge() racks = %+v", a.Racks)
	}
	if len(a.Switches) != 1 {
		t.Errorf("len(Switches) = %d, expected 1", len(a.Switches))
	}
	if len(a.Cables) != 1 {
		t.Errorf("len(Cables) = %d, expected 1", len(a.Cables))
	}
}

func TestCableEndpoints(t *testing.T) {
	cable := Cable{ID: 4, Label: "feed", OriginKind: "Linea_Tension", OriginID: 2, DestinationKind: "rack", DestinationID: 1}

	origin, ok := cable.Origin()
	if !ok || origin != (Ref{Kind: KindPowerFeed, ID: 2}) {
		t.Errorf("Origin() = (%v, %v), expected (power_feed:2, true)", origin, ok)
	}
	if !cable.IsStructural() {
		t.Error("IsStructural() = false, expected true for a rack endpoint")
	}

	cable.DestinationKind = "blender"
	if _, ok := cable.Destination(); ok {
		t.Error("Destination() ok = true, expected false for an unknown kind")
	}
}
