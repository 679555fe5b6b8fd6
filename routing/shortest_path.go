package routing

import (
	"errors"

	"github.com/ttpr0/landmark-routing/geo"
)

// ErrNoRoute is returned when the destination cannot be reached from the start.
var ErrNoRoute = errors.New("no route found")

type IShortestPath interface {
	CalcShortestPath() bool
	GetShortestPath() Path
}

// Path is an ordered node sequence from start to end together with the
// geometry of every traversed edge (len(Geometries) == len(Nodes)-1).
type Path struct {
	Nodes      []string
	Geometries []geo.CoordArray
	Distance   float64
}

func (self Path) Start() string {
	return self.Nodes[0]
}

func (self Path) End() string {
	return self.Nodes[len(self.Nodes)-1]
}

func (self Path) Length() int {
	return len(self.Nodes)
}
