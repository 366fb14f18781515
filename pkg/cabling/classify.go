package cabling

import (
	"github.com/samber/lo"

	"github.com/braunma/rackmap/pkg/models"
)

// Classification holds the precomputed colour, lane and group lookups for a cable set.
// It is built once and only read afterwards.
type Classification struct {
	cables  []models.Cable
	colors  map[int]string
	offsets map[int]float64
	groups  map[int]Group
}

// Classify runs the colour, lane and grouping passes over cables in catalog order.
// When ids repeat, the first cable with an id determines its lookups.
func Classify(cables []models.Cable) *Classification {
	colors := make(map[int]string, len(cables))
	for _, c := range cables {
		if _, ok := colors[c.ID]; !ok {
			colors[c.ID] = Color(c)
		}
	}

	return &Classification{
		cables:  cables,
		colors:  colors,
		offsets: LaneOffsets(cables, colors),
		groups:  Groups(cables),
	}
}

// Color returns the display colour of a cable
func (c *Classification) Color(id int) string {
	return c.colors[id]
}

// LaneOffset returns the colour-lane offset of a cable
func (c *Classification) LaneOffset(id int) float64 {
	return c.offsets[id]
}

// Group returns the routing group of a cable
func (c *Classification) Group(id int) (Group, bool) {
	g, ok := c.groups[id]
	return g, ok
}

// SameLane returns the ids of every cable sharing the origin and lane offset of the given cable,
// the cable itself included. Unknown ids yield nil.
func (c *Classification) SameLane(id int) []int {
	target, ok := lo.Find(c.cables, func(cable models.Cable) bool {
		return cable.ID == id
	})
	if !ok {
		return nil
	}
	origin := originRef(target)
	offset := c.offsets[id]

	lane := lo.Filter(c.cables, func(cable models.Cable, _ int) bool {
		return originRef(cable) == origin && c.offsets[cable.ID] == offset
	})
	return lo.Uniq(lo.Map(lane, func(cable models.Cable, _ int) int {
		return cable.ID
	}))
}
