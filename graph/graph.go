package graph

import (
	"github.com/ttpr0/landmark-routing/geo"
	. "github.com/ttpr0/landmark-routing/util"
)

//*******************************************
// graph interface
//******************************************

type IGraph interface {
	// Iterates through the outgoing edges of a node in insertion order.
	ForAdjacentEdges(node string, callback func(Edge))
	HasNode(node string) bool
	NodeCount() int
	EdgeCount() int
}

//*******************************************
// adjacency graph
//******************************************

// Graph maps node names to their outgoing edges. It is never mutated after
// BuildGraph returns, so it can be shared between readers.
type Graph struct {
	adjacency  Dict[string, List[Edge]]
	edge_count int
}

func NewGraph() *Graph {
	return &Graph{
		adjacency: NewDict[string, List[Edge]](16),
	}
}

func (self *Graph) addEdge(edge Edge) {
	edges := self.adjacency[edge.From]
	edges.Add(edge)
	self.adjacency[edge.From] = edges
	self.edge_count += 1
}

// addSegment registers an undirected segment as a forward and a reverse edge.
func (self *Graph) addSegment(a, b string, geom geo.CoordArray) {
	forward := Edge{
		From:     a,
		To:       b,
		Weight:   geo.LineLength(geom),
		Geometry: geom,
	}
	self.addEdge(forward)
	self.addEdge(forward.Reversed())
}

func (self *Graph) ForAdjacentEdges(node string, callback func(Edge)) {
	for _, edge := range self.adjacency[node] {
		callback(edge)
	}
}

func (self *Graph) GetEdges(node string) List[Edge] {
	return self.adjacency[node]
}

func (self *Graph) HasNode(node string) bool {
	return self.adjacency.ContainsKey(node)
}

func (self *Graph) NodeCount() int {
	return self.adjacency.Length()
}

func (self *Graph) EdgeCount() int {
	return self.edge_count
}

//*******************************************
// node registry
//******************************************

// NodeRegistry holds the declared landmarks in first-declaration order.
type NodeRegistry struct {
	nodes Dict[string, geo.Coord]
	order List[string]
}

func NewNodeRegistry() *NodeRegistry {
	return &NodeRegistry{
		nodes: NewDict[string, geo.Coord](16),
		order: NewList[string](16),
	}
}

// Set stores the location of a node; a repeated name overwrites the location
// but keeps its original position.
func (self *NodeRegistry) Set(name string, loc geo.Coord) {
	if !self.nodes.ContainsKey(name) {
		self.order.Add(name)
	}
	self.nodes[name] = loc
}

func (self *NodeRegistry) Get(name string) Optional[Node] {
	loc, ok := self.nodes[name]
	if !ok {
		return None[Node]()
	}
	return Some(Node{Name: name, Loc: loc})
}

func (self *NodeRegistry) Contains(name string) bool {
	return self.nodes.ContainsKey(name)
}

func (self *NodeRegistry) Names() []string {
	names := make([]string, len(self.order))
	copy(names, self.order)
	return names
}

func (self *NodeRegistry) Length() int {
	return self.order.Length()
}
