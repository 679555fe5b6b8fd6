package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/landmark-routing/directions"
	"github.com/ttpr0/landmark-routing/geo"
	"github.com/ttpr0/landmark-routing/graph"
	"github.com/ttpr0/landmark-routing/parser"
	"github.com/ttpr0/landmark-routing/routing"
	"github.com/ttpr0/landmark-routing/store"
	. "github.com/ttpr0/landmark-routing/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// UnknownLandmarkError is returned when a requested start or end is not a
// declared landmark of the dataset.
type UnknownLandmarkError struct {
	Start string
	End   string
}

func (self *UnknownLandmarkError) Error() string {
	return fmt.Sprintf("Landmark not found: %s or %s", self.Start, self.End)
}

func NewRoutingManager(config Config, datasets store.DatasetStore, metrics *Metrics) *RoutingManager {
	manager := &RoutingManager{
		config:   config,
		datasets: datasets,
		metrics:  metrics,
		cache:    None[*store.GraphCache](),
	}
	if config.Datasets.Cache {
		manager.cache = Some(store.NewGraphCache())
	}
	return manager
}

type RoutingManager struct {
	config   Config
	datasets store.DatasetStore
	cache    Optional[*store.GraphCache]
	metrics  *Metrics
}

// LoadGraph builds the graph of a stored dataset, or returns the cached one
// if the dataset did not change since it was built.
func (self *RoutingManager) LoadGraph(name string) (store.GraphEntry, error) {
	mod_time, err := self.datasets.Stat(name)
	if err != nil {
		return store.GraphEntry{}, err
	}
	if self.cache.HasValue() {
		if entry, ok := self.cache.Value.Get(name, mod_time); ok {
			self.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return entry, nil
		}
		self.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	dataset, err := self.datasets.Load(name)
	if err != nil {
		return store.GraphEntry{}, err
	}
	start := time.Now()
	fc, err := parser.ParseDataset(name, dataset.Data)
	if err != nil {
		return store.GraphEntry{}, err
	}
	g, nodes, err := graph.BuildGraph(fc)
	if err != nil {
		return store.GraphEntry{}, err
	}
	self.metrics.ObserveGraphBuild(start)
	slog.Debug(fmt.Sprintf("built graph for %v with %v nodes and %v edges", name, g.NodeCount(), g.EdgeCount()))

	entry := store.GraphEntry{Graph: g, Nodes: nodes}
	if self.cache.HasValue() {
		self.cache.Value.Put(name, dataset.ModTime, entry)
	}
	return entry, nil
}

func (self *RoutingManager) GetLandmarks(name string) ([]Landmark, error) {
	entry, err := self.LoadGraph(name)
	if err != nil {
		return nil, err
	}
	names := entry.Nodes.Names()
	landmarks := make([]Landmark, 0, len(names))
	for _, n := range names {
		node := entry.Nodes.Get(n)
		landmarks = append(landmarks, Landmark{Name: n, Coordinates: node.Value.Loc})
	}
	return landmarks, nil
}

// Route computes the path between two landmarks of a dataset and the
// instructions to follow it. start and end must already be lower-cased.
func (self *RoutingManager) Route(name string, start string, end string) (RouteResponse, error) {
	entry, err := self.LoadGraph(name)
	if err != nil {
		return RouteResponse{}, err
	}
	if !entry.Nodes.Contains(start) || !entry.Nodes.Contains(end) {
		return RouteResponse{}, &UnknownLandmarkError{Start: start, End: end}
	}

	slog.Debug(fmt.Sprintf("Start calculating shortest path between %v and %v", start, end))
	path, err := routing.FindPath(entry.Graph, start, end)
	if err != nil {
		return RouteResponse{}, err
	}
	instructions, err := directions.Synthesize(path)
	if err != nil {
		return RouteResponse{}, err
	}

	resp := RouteResponse{
		Summary:      directions.Summarize(path, instructions),
		Instructions: instructions,
		Polyline:     geo.EncodePolyline(path.Geometries...),
		Geometry:     NewRouteGeometry(path),
		Filename:     name,
	}
	return resp, nil
}

// Reachable lists the landmarks within max_range meters of from along the
// network, nearest first.
func (self *RoutingManager) Reachable(name string, from string, max_range float64) ([]ReachableLandmark, error) {
	entry, err := self.LoadGraph(name)
	if err != nil {
		return nil, err
	}
	if !entry.Nodes.Contains(from) {
		return nil, &UnknownLandmarkError{Start: from, End: from}
	}
	dists := routing.CalcRangeDijkstra(entry.Graph, from, max_range)
	landmarks := make([]ReachableLandmark, 0, dists.Length())
	for node, dist := range dists {
		if !entry.Nodes.Contains(node) {
			continue
		}
		landmarks = append(landmarks, ReachableLandmark{Name: node, Distance: int(math.Floor(dist))})
	}
	slices.SortFunc(landmarks, func(a, b ReachableLandmark) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.Name, b.Name)
	})
	return landmarks, nil
}

// SaveDataset stores an uploaded dataset and drops any graph built from an
// older version of it.
func (self *RoutingManager) SaveDataset(name string, reader io.Reader) error {
	if err := self.datasets.Save(name, reader); err != nil {
		return err
	}
	if self.cache.HasValue() {
		self.cache.Value.Evict(name)
	}
	return nil
}

// Watch starts evicting cached graphs on file changes in dir.
func (self *RoutingManager) Watch(dir string) error {
	if !self.cache.HasValue() {
		return errors.New("graph cache is disabled")
	}
	return self.cache.Value.Watch(dir)
}

func (self *RoutingManager) Close() error {
	if self.cache.HasValue() {
		return self.cache.Value.Close()
	}
	return nil
}

// NewRouteGeometry returns the traversed segments as LineString features.
func NewRouteGeometry(path routing.Path) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, line := range path.Geometries {
		feat := geojson.NewFeature(line)
		feat.Properties["from"] = path.Nodes[i]
		feat.Properties["to"] = path.Nodes[i+1]
		feat.Properties["distance"] = geo.LineLength(line)
		fc.Append(feat)
	}
	return fc
}
