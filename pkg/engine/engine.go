// Package engine runs the full layout pipeline: racks, slots, coordinates,
// cable classification, routing and ports.
package engine

import (
	"fmt"

	"github.com/braunma/rackmap/pkg/cabling"
	"github.com/braunma/rackmap/pkg/config"
	"github.com/braunma/rackmap/pkg/layout"
	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/ports"
	"github.com/braunma/rackmap/pkg/routing"
	"github.com/braunma/rackmap/pkg/utils"
)

// Options configure a layout pass
type Options struct {
	Config config.Config
	Logger *utils.Logger
}

// DefaultOptions uses the built-in configuration and a silent logger
func DefaultOptions() Options {
	return Options{Config: config.Default(), Logger: utils.Discard()}
}

func (o Options) layoutOptions() layout.Options {
	return layout.Options{
		Columns:     o.Config.Columns,
		CanvasWidth: o.Config.CanvasWidth,
		TopMargin:   o.Config.TopMargin,
		GapX:        o.Config.GapX,
		GapY:        o.Config.GapY,
	}
}

// CableRoute is a routed cable ready for rendering
type CableRoute struct {
	ID          int            `json:"id" yaml:"id"`
	Label       string         `json:"label" yaml:"label"`
	Color       string         `json:"color" yaml:"color"`
	Origin      models.Ref     `json:"origin" yaml:"origin"`
	Destination models.Ref     `json:"destination" yaml:"destination"`
	Group       string         `json:"group" yaml:"group"`
	GroupLevel  int            `json:"group_level" yaml:"group_level"`
	LaneOffset  float64        `json:"lane_offset" yaml:"lane_offset"`
	Case        routing.Case   `json:"case" yaml:"case"`
	Sides       routing.Sides  `json:"sides" yaml:"sides"`
	Points      []layout.Point `json:"points" yaml:"points"`
	Path        string         `json:"path" yaml:"path"`
}

// SkippedCable is a cable left out of the output, with the reason
type SkippedCable struct {
	ID     int    `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Reason string `json:"reason" yaml:"reason"`
}

// Result is the geometry of one catalog
type Result struct {
	Racks    []layout.PlacedRack   `json:"racks" yaml:"racks"`
	Devices  []layout.PlacedDevice `json:"devices" yaml:"devices"`
	Ports    []ports.Port          `json:"ports" yaml:"ports"`
	Cables   []CableRoute          `json:"cables" yaml:"cables"`
	Skipped  []SkippedCable        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Overlaps []layout.Overlap      `json:"overlaps,omitempty" yaml:"overlaps,omitempty"`

	lanes *cabling.Classification
}

// Layout computes the full geometry of a catalog.
// Unresolvable references never fail the pass; the affected cables are listed in Result.Skipped.
func Layout(catalog *models.Catalog, opts Options) *Result {
	if catalog == nil {
		catalog = &models.Catalog{}
	}
	logger := opts.Logger

	racks := layout.PlaceRacks(catalog.Racks, opts.layoutOptions())
	registry := layout.ResolveCoordinates(racks, layout.AssignSlots(catalog.Devices()))
	logger.Debug("Placed %d racks and %d devices", len(racks), registry.Len())

	result := &Result{
		Racks:    racks,
		Devices:  registry.Devices(),
		Overlaps: layout.DetectOverlaps(registry),
		lanes:    cabling.Classify(catalog.Cables),
	}
	for _, o := range result.Overlaps {
		logger.Debug("Power backup %s overlaps %s in rack %d", o.PowerBackup, o.Device, o.RackID)
	}

	router := routing.NewRouter(opts.Config.GroupSpacing, opts.Config.MemberSpacing)
	var links []ports.Link

	for _, cable := range catalog.Cables {
		origin, destination, reason := resolveEndpoints(registry, cable)
		if reason != "" {
			logger.Debug("Skipping cable %d (%s): %s", cable.ID, cable.Label, reason)
			result.Skipped = append(result.Skipped, SkippedCable{ID: cable.ID, Label: cable.Label, Reason: reason})
			continue
		}

		group, _ := result.lanes.Group(cable.ID)
		offset := result.lanes.LaneOffset(cable.ID)
		path := router.Route(origin, destination, group, offset)
		logger.Debug("Cable %d (%s): %s, %d segments", cable.ID, path.Case, group.Key, path.Segments())

		result.Cables = append(result.Cables, CableRoute{
			ID:          cable.ID,
			Label:       cable.Label,
			Color:       result.lanes.Color(cable.ID),
			Origin:      origin.Ref,
			Destination: destination.Ref,
			Group:       group.Key,
			GroupLevel:  group.Level,
			LaneOffset:  offset,
			Case:        path.Case,
			Sides:       path.Sides,
			Points:      path.Points,
			Path:        path.D(),
		})
		links = append(links, ports.Link{CableID: cable.ID, Origin: origin, Destination: destination})
	}

	result.Ports = ports.Allocate(links)
	logger.Debug("Routed %d cables, skipped %d", len(result.Cables), len(result.Skipped))
	return result
}

// resolveEndpoints finds both placed devices of a cable.
// A non-empty reason means the cable cannot be drawn.
func resolveEndpoints(registry *layout.Registry, cable models.Cable) (routing.Endpoint, routing.Endpoint, string) {
	if cable.IsStructural() {
		return routing.Endpoint{}, routing.Endpoint{}, "structural rack connection"
	}

	origin, reason := resolveEndpoint(registry, cable.OriginKind, cable.Origin)
	if reason != "" {
		return routing.Endpoint{}, routing.Endpoint{}, "origin " + reason
	}
	destination, reason := resolveEndpoint(registry, cable.DestinationKind, cable.Destination)
	if reason != "" {
		return routing.Endpoint{}, routing.Endpoint{}, "destination " + reason
	}
	return origin, destination, ""
}

func resolveEndpoint(registry *layout.Registry, rawKind string, parse func() (models.Ref, bool)) (routing.Endpoint, string) {
	ref, ok := parse()
	if !ok || !ref.Kind.IsDevice() {
		return routing.Endpoint{}, fmt.Sprintf("has unknown kind %q", rawKind)
	}
	device, ok := registry.Lookup(ref)
	if !ok {
		return routing.Endpoint{}, fmt.Sprintf("%s is not placed", ref)
	}
	rack, ok := registry.Rack(device.RackID)
	if !ok {
		return routing.Endpoint{}, fmt.Sprintf("%s has no rack", ref)
	}
	return routing.EndpointFor(device, rack), ""
}
