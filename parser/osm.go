package parser

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/landmark-routing/graph"
	. "github.com/ttpr0/landmark-routing/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm datasets
//*******************************************

// ParseOSM converts an OSM XML document into a feature collection.
// Nodes with a name tag become Point features and ways with a name tag
// become LineString features following the way's node order.
func ParseOSM(data []byte) (*geojson.FeatureCollection, error) {
	o := &osm.OSM{}
	if err := xml.Unmarshal(data, o); err != nil {
		return nil, graph.NewDataFormatError(-1, "cannot decode osm document", err)
	}
	nodes := NewDict[osm.NodeID, *osm.Node](len(o.Nodes))
	for _, node := range o.Nodes {
		nodes[node.ID] = node
	}
	return _CreateCollection(o.Nodes, nodes, o.Ways)
}

// ParsePBF converts an OSM PBF extract into a feature collection the same
// way ParseOSM does.
func ParsePBF(reader io.Reader) (*geojson.FeatureCollection, error) {
	nodes := NewDict[osm.NodeID, *osm.Node](1000)
	named := NewList[*osm.Node](100)
	ways := NewList[*osm.Way](100)

	scanner := osmpbf.New(context.Background(), reader, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			nodes[object.ID] = object
			if object.Tags.Find("name") != "" {
				named.Add(object)
			}
		case *osm.Way:
			if object.Tags.Find("name") == "" {
				continue
			}
			ways.Add(object)
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, graph.NewDataFormatError(-1, "cannot decode osm pbf", err)
	}
	return _CreateCollection(named, nodes, ways)
}

// points are emitted in document order so duplicate names resolve like in GeoJSON
func _CreateCollection(points []*osm.Node, nodes Dict[osm.NodeID, *osm.Node], ways []*osm.Way) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	for _, node := range points {
		name := node.Tags.Find("name")
		if name == "" {
			continue
		}
		feat := geojson.NewFeature(node.Point())
		feat.ID = int64(node.ID)
		feat.Properties["name"] = name
		fc.Append(feat)
	}

	for _, way := range ways {
		name := way.Tags.Find("name")
		if name == "" {
			continue
		}
		line := make(orb.LineString, 0, len(way.Nodes))
		for _, ref := range way.Nodes {
			node, ok := nodes[ref.ID]
			if !ok {
				return nil, graph.NewDataFormatError(len(fc.Features), fmt.Sprintf("way %d references unknown node %d", way.ID, ref.ID), nil)
			}
			line = append(line, node.Point())
		}
		feat := geojson.NewFeature(line)
		feat.ID = int64(way.ID)
		feat.Properties["name"] = name
		fc.Append(feat)
	}
	slog.Debug(fmt.Sprintf("converted osm data into %v features", len(fc.Features)))
	return fc, nil
}
