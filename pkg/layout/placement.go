// Package layout positions racks on the canvas and devices inside racks.
//
// Every function in this package is pure: the same catalog and options always
// produce the same geometry, and nothing is cached between calls.
package layout

import (
	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/models"
)

// Options are the canvas parameters for rack placement
type Options struct {
	Columns     int
	CanvasWidth float64
	TopMargin   float64
	GapX        float64
	GapY        float64
}

// DefaultOptions returns the built-in canvas parameters
func DefaultOptions() Options {
	return Options{
		Columns:     constants.DefaultColumns,
		CanvasWidth: constants.DefaultCanvasWidth,
		TopMargin:   constants.DefaultTopMargin,
		GapX:        constants.DefaultGapX,
		GapY:        constants.DefaultGapY,
	}
}

// PlacedRack is a rack with its grid cell and absolute geometry
type PlacedRack struct {
	ID     int             `json:"id" yaml:"id"`
	Name   string          `json:"name" yaml:"name"`
	Size   models.RackSize `json:"size" yaml:"size"`
	Row    int             `json:"row" yaml:"row"`
	Column int             `json:"column" yaml:"column"`
	Box    `yaml:",inline"`
}

// RackHeight is the pixel height of a rack
func RackHeight(rack models.Rack) float64 {
	if rack.IsCompact() {
		return constants.RackStandardHeight * constants.RackCompactRatio
	}
	return constants.RackStandardHeight
}

// PlaceRacks lays racks out in rows of opts.Columns, each row centred on the canvas.
// Row pitch always uses the standard height so compact racks never pull rows together.
func PlaceRacks(racks []models.Rack, opts Options) []PlacedRack {
	if len(racks) == 0 {
		return nil
	}
	cols := opts.Columns
	if cols < 1 {
		cols = 1
	}

	placed := make([]PlacedRack, 0, len(racks))
	for start := 0; start < len(racks); start += cols {
		end := min(start+cols, len(racks))
		row := racks[start:end]
		rowIndex := start / cols

		rowWidth := float64(len(row))*constants.RackWidth + float64(len(row)-1)*opts.GapX
		offsetX := (opts.CanvasWidth - rowWidth) / 2
		y := opts.TopMargin + float64(rowIndex)*(constants.RackStandardHeight+opts.GapY)

		for col, rack := range row {
			placed = append(placed, PlacedRack{
				ID:     rack.ID,
				Name:   rack.Name,
				Size:   rack.Size.Normalize(),
				Row:    rowIndex,
				Column: col,
				Box: Box{
					X:      offsetX + float64(col)*(constants.RackWidth+opts.GapX),
					Y:      y,
					Width:  constants.RackWidth,
					Height: RackHeight(rack),
				},
			})
		}
	}
	return placed
}
