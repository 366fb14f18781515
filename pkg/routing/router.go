package routing

import (
	"github.com/braunma/rackmap/internal/constants"
	"github.com/braunma/rackmap/pkg/cabling"
)

// Router routes cables and fans out cables that share a routing group
type Router struct {
	GroupSpacing  float64
	MemberSpacing float64
}

// NewRouter creates a router with the given lane spacings
func NewRouter(groupSpacing, memberSpacing float64) *Router {
	return &Router{GroupSpacing: groupSpacing, MemberSpacing: memberSpacing}
}

// DefaultRouter creates a router with the built-in spacings
func DefaultRouter() *Router {
	return NewRouter(constants.DefaultGroupSpacing, constants.DefaultMemberSpacing)
}

// Shift is how far a cable's lane moves up from the strategy's lane
func (r *Router) Shift(group cabling.Group, laneOffset float64) float64 {
	return float64(group.Level)*r.GroupSpacing + float64(group.Index)*r.MemberSpacing + laneOffset
}

// Route computes the path of one cable
func (r *Router) Route(origin, destination Endpoint, group cabling.Group, laneOffset float64) Path {
	return SelectStrategy(origin, destination, r.Shift(group, laneOffset)).ComputePath(origin, destination)
}
