package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of equipment categories a catalog can reference.
type Kind int

const (
	KindUnknown Kind = iota
	KindRouter
	KindFirewall
	KindRoutingSwitch
	KindSwitch
	KindServer
	KindStorage
	KindUPS
	KindPowerFeed
	// KindRack only appears as a cable endpoint; such cables are structural.
	KindRack
)

// DeviceKinds lists every kind that can be placed inside a rack, in catalog section order.
var DeviceKinds = []Kind{
	KindRouter,
	KindFirewall,
	KindRoutingSwitch,
	KindSwitch,
	KindServer,
	KindStorage,
	KindUPS,
	KindPowerFeed,
}

// kindAliases maps lower-case catalog spellings to kinds
var kindAliases = map[string]Kind{
	"router":         KindRouter,
	"routers":        KindRouter,
	"firewall":       KindFirewall,
	"fortinet":       KindFirewall,
	"routing_switch": KindRoutingSwitch,
	"routing-switch": KindRoutingSwitch,
	"mikrotik":       KindRoutingSwitch,
	"switch":         KindSwitch,
	"sw":             KindSwitch,
	"server":         KindServer,
	"servidor":       KindServer,
	"servidores":     KindServer,
	"storage":        KindStorage,
	"qnap":           KindStorage,
	"ups":            KindUPS,
	"power_backup":   KindUPS,
	"power_feed":     KindPowerFeed,
	"power-feed":     KindPowerFeed,
	"linea_tension":  KindPowerFeed,
	"rack":           KindRack,
}

// ParseKind resolves a catalog kind name, case-insensitively.
// Unrecognised names yield KindUnknown and false.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return KindUnknown, false
	}
	return k, true
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRouter:
		return "router"
	case KindFirewall:
		return "firewall"
	case KindRoutingSwitch:
		return "routing_switch"
	case KindSwitch:
		return "switch"
	case KindServer:
		return "server"
	case KindStorage:
		return "storage"
	case KindUPS:
		return "ups"
	case KindPowerFeed:
		return "power_feed"
	case KindRack:
		return "rack"
	default:
		return "unknown"
	}
}

// IsDevice reports whether the kind can be placed in a rack.
func (k Kind) IsDevice() bool {
	switch k {
	case KindRouter, KindFirewall, KindRoutingSwitch, KindSwitch,
		KindServer, KindStorage, KindUPS, KindPowerFeed:
		return true
	default:
		return false
	}
}

// IsPowerBackup reports whether devices of this kind use the bottom-anchored grid.
func (k Kind) IsPowerBackup() bool {
	return k == KindUPS
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown kind %q", string(text))
	}
	*k = parsed
	return nil
}

// Ref identifies one device: ids are only unique within a kind.
type Ref struct {
	Kind Kind `json:"kind" yaml:"kind"`
	ID   int  `json:"id" yaml:"id"`
}

// String returns "kind:id".
func (r Ref) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}

// ParseRef parses "kind:id" as produced by Ref.String.
func ParseRef(s string) (Ref, error) {
	kindName, idPart, ok := strings.Cut(s, ":")
	if !ok {
		return Ref{}, fmt.Errorf("invalid device reference %q: expected kind:id", s)
	}
	kind, ok := ParseKind(kindName)
	if !ok || !kind.IsDevice() {
		return Ref{}, fmt.Errorf("invalid device reference %q: unknown device kind %q", s, kindName)
	}
	id, err := strconv.Atoi(idPart)
	if err != nil {
		return Ref{}, fmt.Errorf("invalid device reference %q: %w", s, err)
	}
	return Ref{Kind: kind, ID: id}, nil
}
