package graph

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/landmark-routing/geo"
)

// SEGMENT_SEPARATOR joins the two endpoint names of a segment, e.g. "gate-j1".
const SEGMENT_SEPARATOR = "-"

//*******************************************
// build graph
//*******************************************

// BuildGraph turns a feature collection into a routing graph and the registry
// of declared landmarks. Point features declare landmarks, LineString features
// named "a-b" become a pair of directed edges between a and b. Other geometry
// types are ignored.
func BuildGraph(fc *geojson.FeatureCollection) (*Graph, *NodeRegistry, error) {
	if fc == nil {
		return nil, nil, NewDataFormatError(-1, "missing feature collection", nil)
	}
	g := NewGraph()
	nodes := NewNodeRegistry()

	for i, feat := range fc.Features {
		if feat == nil {
			return nil, nil, NewDataFormatError(i, "null feature", nil)
		}
		if feat.Geometry == nil {
			return nil, nil, NewDataFormatError(i, "missing geometry", nil)
		}
		switch geom := feat.Geometry.(type) {
		case orb.Point:
			name, err := _GetName(i, feat)
			if err != nil {
				return nil, nil, err
			}
			nodes.Set(name, geom)
		case orb.LineString:
			name, err := _GetName(i, feat)
			if err != nil {
				return nil, nil, err
			}
			if !strings.Contains(name, SEGMENT_SEPARATOR) {
				continue
			}
			a, b, err := _SplitSegmentName(i, name)
			if err != nil {
				return nil, nil, err
			}
			if len(geom) < 2 {
				return nil, nil, NewDataFormatError(i, "segment "+name+" needs at least two coordinates", nil)
			}
			g.addSegment(a, b, geo.CoordArray(geom.Clone()))
		default:
			continue
		}
	}
	return g, nodes, nil
}

func _GetName(index int, feat *geojson.Feature) (string, error) {
	value, ok := feat.Properties["name"]
	if !ok {
		return "", NewDataFormatError(index, "missing name property", nil)
	}
	name, ok := value.(string)
	if !ok {
		return "", NewDataFormatError(index, "name property is not a string", nil)
	}
	return strings.ToLower(name), nil
}

func _SplitSegmentName(index int, name string) (string, string, error) {
	tokens := strings.Split(name, SEGMENT_SEPARATOR)
	if len(tokens) != 2 {
		return "", "", NewDataFormatError(index, "segment name "+name+" must join exactly two endpoints", nil)
	}
	if tokens[0] == "" || tokens[1] == "" {
		return "", "", NewDataFormatError(index, "segment name "+name+" has an empty endpoint", nil)
	}
	return tokens[0], tokens[1], nil
}
