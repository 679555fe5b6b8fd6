package graph

import (
	"github.com/ttpr0/landmark-routing/geo"
)

//*******************************************
// graph structs
//*******************************************

// Edge is a directed connection between two named nodes.
// Geometry is ordered in the direction of traversal.
type Edge struct {
	From     string
	To       string
	Weight   float64
	Geometry geo.CoordArray
}

// Reversed returns the edge traversed in the opposite direction.
func (self Edge) Reversed() Edge {
	geom := make(geo.CoordArray, len(self.Geometry))
	for i, c := range self.Geometry {
		geom[len(self.Geometry)-1-i] = c
	}
	return Edge{
		From:     self.To,
		To:       self.From,
		Weight:   self.Weight,
		Geometry: geom,
	}
}

type Node struct {
	Name string
	Loc  geo.Coord
}
