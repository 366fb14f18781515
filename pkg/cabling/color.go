// Package cabling derives display colours, lane offsets and routing groups for cables.
package cabling

import (
	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/models"
	"github.com/braunma/rackmap/pkg/utils"
)

// colorPrecedence lists the endpoint kinds that force a colour, strongest first
var colorPrecedence = []models.Kind{
	models.KindPowerFeed,
	models.KindUPS,
	models.KindStorage,
	models.KindSwitch,
}

// kindColor returns the fixed colour for cables touching a device of this kind
func kindColor(k models.Kind) (string, bool) {
	switch k {
	case models.KindPowerFeed:
		return constants.ColorPowerFeed, true
	case models.KindUPS:
		return constants.ColorUPS, true
	case models.KindStorage:
		return constants.ColorStorage, true
	case models.KindSwitch:
		return constants.ColorSwitch, true
	default:
		return "", false
	}
}

// Color computes the display colour of a cable.
// An endpoint kind with a fixed colour wins over the cable's own colour.
func Color(c models.Cable) string {
	origin, _ := c.Origin()
	destination, _ := c.Destination()

	for _, kind := range colorPrecedence {
		if origin.Kind == kind || destination.Kind == kind {
			color, _ := kindColor(kind)
			return color
		}
	}
	if c.Color != "" {
		return utils.DisplayColor(c.Color)
	}
	return constants.ColorDefault
}
