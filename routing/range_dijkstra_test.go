package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcRangeDijkstra(t *testing.T) {
	g := _NewTestGraph()
	g.AddUndirected("a", "b", 100)
	g.AddUndirected("b", "c", 100)
	g.AddUndirected("a", "c", 500)
	g.AddUndirected("c", "d", 300)
	g.AddUndirected("x", "y", 1)

	dists := CalcRangeDijkstra(g, "a", 250)
	assert.Equal(t, 3, dists.Length())
	assert.Equal(t, 0.0, dists["a"])
	assert.Equal(t, 100.0, dists["b"])
	assert.Equal(t, 200.0, dists["c"])
	assert.False(t, dists.ContainsKey("d"))
	assert.False(t, dists.ContainsKey("x"))

	dists = CalcRangeDijkstra(g, "a", 500)
	assert.Equal(t, 500.0, dists["d"])
}

func TestCalcRangeDijkstraEdgeCases(t *testing.T) {
	g := _NewTestGraph()
	g.AddUndirected("a", "b", 100)

	dists := CalcRangeDijkstra(g, "a", 0)
	assert.Equal(t, map[string]float64{"a": 0}, map[string]float64(dists))

	dists = CalcRangeDijkstra(g, "lonely", 1000)
	assert.Equal(t, map[string]float64{"lonely": 0}, map[string]float64(dists))

	dists = CalcRangeDijkstra(g, "a", -1)
	assert.Equal(t, 0, dists.Length())
}
