package routing

import (
	"github.com/ttpr0/landmark-routing/graph"
	. "github.com/ttpr0/landmark-routing/util"
)

type _RangeItem struct {
	node string
	dist float64
}

// CalcRangeDijkstra returns the network distance from start to every node
// reachable within max_range meters. start itself is always part of the
// result unless max_range is negative.
func CalcRangeDijkstra(g graph.IGraph, start string, max_range float64) Dict[string, float64] {
	dists := NewDict[string, float64](10)
	if max_range < 0 {
		return dists
	}
	heap := NewPriorityQueue[_RangeItem, float64](100)
	dists[start] = 0
	heap.Enqueue(_RangeItem{start, 0}, 0)

	for {
		curr, ok := heap.Dequeue()
		if !ok {
			break
		}
		if dists[curr.node] < curr.dist {
			continue
		}
		g.ForAdjacentEdges(curr.node, func(edge graph.Edge) {
			new_length := curr.dist + edge.Weight
			if new_length > max_range {
				return
			}
			if dist, ok := dists[edge.To]; !ok || dist > new_length {
				dists[edge.To] = new_length
				heap.Enqueue(_RangeItem{edge.To, new_length}, new_length)
			}
		})
	}
	return dists
}
