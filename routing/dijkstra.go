package routing

import (
	"github.com/ttpr0/landmark-routing/geo"
	"github.com/ttpr0/landmark-routing/graph"
	. "github.com/ttpr0/landmark-routing/util"
)

//*******************************************
// dijkstra
//*******************************************

type _Label struct {
	node     string
	prev     string
	edge     graph.Edge
	has_prev bool
	cost     float64
}

func _LabelTieBreak(a, b _Label) bool {
	if a.node != b.node {
		return a.node < b.node
	}
	return a.prev < b.prev
}

// Dijkstra is a uniform-cost search between two named nodes. Settled nodes
// keep a back-reference to the edge they were reached by; the path is
// reconstructed backwards once the destination is settled.
type Dijkstra struct {
	heap    PriorityQueue[_Label, float64]
	graph   graph.IGraph
	start   string
	end     string
	settled Dict[string, _Label]
	found   bool
}

func NewDijkstra(g graph.IGraph, start, end string) *Dijkstra {
	d := Dijkstra{
		graph:   g,
		start:   start,
		end:     end,
		settled: NewDict[string, _Label](g.NodeCount()),
	}

	heap := NewPriorityQueue[_Label, float64](100).WithTieBreak(_LabelTieBreak)
	heap.Enqueue(_Label{node: start}, 0)
	d.heap = heap

	return &d
}

func (self *Dijkstra) CalcShortestPath() bool {
	for {
		curr, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		if self.settled.ContainsKey(curr.node) {
			continue
		}
		self.settled[curr.node] = curr
		if curr.node == self.end {
			self.found = true
			return true
		}
		self.graph.ForAdjacentEdges(curr.node, func(edge graph.Edge) {
			if self.settled.ContainsKey(edge.To) {
				return
			}
			new_cost := curr.cost + edge.Weight
			self.heap.Enqueue(_Label{
				node:     edge.To,
				prev:     curr.node,
				edge:     edge,
				has_prev: true,
				cost:     new_cost,
			}, new_cost)
		})
	}
}

// GetShortestPath returns the path found by CalcShortestPath.
// Only valid after CalcShortestPath returned true.
func (self *Dijkstra) GetShortestPath() Path {
	if !self.found {
		return Path{}
	}
	nodes := NewList[string](10)
	edges := NewList[graph.Edge](10)
	label := self.settled[self.end]
	nodes.Add(label.node)
	for label.has_prev {
		edges.Add(label.edge)
		label = self.settled[label.prev]
		nodes.Add(label.node)
	}
	edges = edges.Reverse()

	path := Path{
		Nodes:    nodes.Reverse(),
		Distance: self.settled[self.end].cost,
	}
	path.Geometries = make([]geo.CoordArray, len(edges))
	for i, edge := range edges {
		path.Geometries[i] = edge.Geometry
	}
	return path
}

// FindPath computes the minimum-distance path between start and end.
// It returns ErrNoRoute if end is unreachable, including when either
// endpoint is not part of the graph.
func FindPath(g graph.IGraph, start, end string) (Path, error) {
	alg := NewDijkstra(g, start, end)
	if !alg.CalcShortestPath() {
		return Path{}, ErrNoRoute
	}
	return alg.GetShortestPath(), nil
}
