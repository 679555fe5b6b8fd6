package routing

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/landmark-routing/geo"
	"github.com/ttpr0/landmark-routing/graph"
	. "github.com/ttpr0/landmark-routing/util"
)

//*******************************************
// test graph
//*******************************************

// weighted graph with explicit edge weights and dummy geometry
type _TestGraph struct {
	edges Dict[string, List[graph.Edge]]
	count int
}

func _NewTestGraph() *_TestGraph {
	return &_TestGraph{edges: NewDict[string, List[graph.Edge]](10)}
}

func (self *_TestGraph) AddUndirected(a, b string, weight float64) {
	geom := geo.CoordArray{{0, 0}, {0, 1}}
	e := graph.Edge{From: a, To: b, Weight: weight, Geometry: geom}
	self.add(e)
	self.add(e.Reversed())
}

func (self *_TestGraph) add(e graph.Edge) {
	list := self.edges[e.From]
	list.Add(e)
	self.edges[e.From] = list
	self.count += 1
}

func (self *_TestGraph) ForAdjacentEdges(node string, callback func(graph.Edge)) {
	for _, e := range self.edges[node] {
		callback(e)
	}
}
func (self *_TestGraph) HasNode(node string) bool { return self.edges.ContainsKey(node) }
func (self *_TestGraph) NodeCount() int { return self.edges.Length() }
func (self *_TestGraph) EdgeCount() int { return self.count }

func _BruteForce(g *_TestGraph, curr, end string, visited Dict[string, bool], cost float64) float64 {
	if curr == end {
		return cost
	}
	best := math.Inf(1)
	visited[curr] = true
	for _, e := range g.edges[curr] {
		if visited[e.To] {
			continue
		}
		best = math.Min(best, _BruteForce(g, e.To, end, visited, cost+e.Weight))
	}
	visited[curr] = false
	return best
}

func _SumWeights(g *_TestGraph, nodes []string) float64 {
	total := 0.0
	for i := 0; i < len(nodes)-1; i++ {
		best := math.Inf(1)
		for _, e := range g.edges[nodes[i]] {
			if e.To == nodes[i+1] {
				best = math.Min(best, e.Weight)
			}
		}
		total += best
	}
	return total
}

//*******************************************
// tests
//*******************************************

func TestFindPathPrefersShorterDetour(t *testing.T) {
	g := _NewTestGraph()
	g.AddUndirected("a", "b", 10)
	g.AddUndirected("a", "c", 1)
	g.AddUndirected("c", "d", 1)
	g.AddUndirected("d", "b", 1)

	path, err := FindPath(g, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "b"}, path.Nodes)
	assert.Len(t, path.Geometries, 3)
	assert.InDelta(t, 3, path.Distance, 1e-9)
}

func TestFindPathMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for round := 0; round < 50; round++ {
		g := _NewTestGraph()
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				if rng.Float64() < 0.4 {
					g.AddUndirected(names[i], names[j], 1+rng.Float64()*100)
				}
			}
		}
		start := names[rng.Intn(len(names))]
		end := names[rng.Intn(len(names))]
		want := _BruteForce(g, start, end, NewDict[string, bool](10), 0)

		path, err := FindPath(g, start, end)
		if math.IsInf(want, 1) {
			assert.ErrorIs(t, err, ErrNoRoute)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, start, path.Start())
		assert.Equal(t, end, path.End())
		assert.Len(t, path.Geometries, path.Length()-1)
		assert.InDelta(t, want, path.Distance, 1e-9)
		assert.InDelta(t, want, _SumWeights(g, path.Nodes), 1e-9)
	}
}

func TestFindPathSelf(t *testing.T) {
	g := _NewTestGraph()
	g.AddUndirected("x", "y", 5)

	path, err := FindPath(g, "x", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, path.Nodes)
	assert.Empty(t, path.Geometries)
	assert.Equal(t, 0.0, path.Distance)

	// isolated nodes still resolve to themselves
	path, err = FindPath(_NewTestGraph(), "x", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, path.Nodes)
}

func TestFindPathDisconnected(t *testing.T) {
	g := _NewTestGraph()
	g.AddUndirected("a", "b", 1)
	g.AddUndirected("c", "d", 1)

	_, err := FindPath(g, "a", "d")
	assert.True(t, errors.Is(err, ErrNoRoute))
}

func TestFindPathUnknownEndpoints(t *testing.T) {
	g := _NewTestGraph()
	g.AddUndirected("a", "b", 1)

	_, err := FindPath(g, "a", "zz")
	assert.ErrorIs(t, err, ErrNoRoute)
	_, err = FindPath(g, "zz", "a")
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestFindPathTieBreakIsDeterministic(t *testing.T) {
	// two equal-cost routes a-m-d and a-b-d; the lexicographically smaller wins
	build := func(order []string) *_TestGraph {
		g := _NewTestGraph()
		for _, via := range order {
			g.AddUndirected("a", via, 1)
			g.AddUndirected(via, "d", 1)
		}
		return g
	}
	first, err := FindPath(build([]string{"m", "b"}), "a", "d")
	require.NoError(t, err)
	second, err := FindPath(build([]string{"b", "m"}), "a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, first.Nodes)
	assert.Equal(t, first.Nodes, second.Nodes)
}

func TestFindPathRoundTripOnBuiltGraph(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	seg := geojson.NewFeature(orb.LineString{{0, 0}, {0.5, 0.5}, {1, 1}})
	seg.Properties["name"] = "a-b"
	fc.Append(seg)
	g, _, err := graph.BuildGraph(fc)
	require.NoError(t, err)

	there, err := FindPath(g, "a", "b")
	require.NoError(t, err)
	back, err := FindPath(g, "b", "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, there.Nodes)
	assert.Equal(t, []string{"b", "a"}, back.Nodes)
	assert.InDelta(t, there.Distance, back.Distance, 1e-9)
	assert.Equal(t, geo.CoordArray{{0, 0}, {0.5, 0.5}, {1, 1}}, there.Geometries[0])
	assert.Equal(t, geo.CoordArray{{1, 1}, {0.5, 0.5}, {0, 0}}, back.Geometries[0])
}
