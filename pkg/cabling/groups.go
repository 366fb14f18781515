package cabling

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/models"
)

// Group is the routing group a cable belongs to
type Group struct {
	Key string `json:"key" yaml:"key"`
	// Level is the order in which the group first appeared
	Level int `json:"level" yaml:"level"`
	// Index is the cable's position among the members of its group
	Index int `json:"index" yaml:"index"`
}

func originRef(c models.Cable) models.Ref {
	r, _ := c.Origin()
	return r
}

func destinationRef(c models.Cable) models.Ref {
	r, _ := c.Destination()
	return r
}

// LaneOffsets assigns each cable a vertical offset shared by cables with the same origin and colour.
// Within one origin, every new colour moves the lane one step further.
func LaneOffsets(cables []models.Cable, colors map[int]string) map[int]float64 {
	offsets := make(map[int]float64, len(cables))
	seen := make(map[models.Ref]map[string]float64)

	for _, c := range cables {
		if _, done := offsets[c.ID]; done {
			continue
		}
		origin := originRef(c)
		lanes, ok := seen[origin]
		if !ok {
			lanes = make(map[string]float64)
			seen[origin] = lanes
		}
		color := colors[c.ID]
		offset, ok := lanes[color]
		if !ok {
			offset = float64(len(lanes)) * constants.LaneOffsetStep
			lanes[color] = offset
		}
		offsets[c.ID] = offset
	}
	return offsets
}

// groupID identifies a routing group. Device groups are scoped by kind so
// switch:4 and router:4 never share a level, even though both display as dest-4.
type groupID struct {
	prefix string
	device models.Ref
	cable  int
}

func (g groupID) key() string {
	if g.prefix == constants.GroupPrefixUnique {
		return fmt.Sprintf("%s%d", g.prefix, g.cable)
	}
	return fmt.Sprintf("%s%d", g.prefix, g.device.ID)
}

// Groups partitions cables into routing groups.
// A shared destination takes priority over a shared origin; everything else is a singleton.
func Groups(cables []models.Cable) map[int]Group {
	byDestination := lo.CountValuesBy(cables, destinationRef)
	byOrigin := lo.CountValuesBy(cables, originRef)

	groups := make(map[int]Group, len(cables))
	levels := make(map[groupID]int)
	members := make(map[groupID]int)

	for _, c := range cables {
		if _, done := groups[c.ID]; done {
			continue
		}

		var id groupID
		switch {
		case byDestination[destinationRef(c)] >= 2:
			id = groupID{prefix: constants.GroupPrefixDestination, device: destinationRef(c)}
		case byOrigin[originRef(c)] >= 2:
			id = groupID{prefix: constants.GroupPrefixOrigin, device: originRef(c)}
		default:
			id = groupID{prefix: constants.GroupPrefixUnique, cable: c.ID}
		}

		level, ok := levels[id]
		if !ok {
			level = len(levels)
			levels[id] = level
		}
		groups[c.ID] = Group{Key: id.key(), Level: level, Index: members[id]}
		members[id]++
	}
	return groups
}
