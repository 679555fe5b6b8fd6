package parser

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/landmark-routing/graph"
)

//*******************************************
// dataset parsing
//*******************************************

type DatasetFormat byte

const (
	GEOJSON DatasetFormat = 0
	OSM_XML DatasetFormat = 1
	OSM_PBF DatasetFormat = 2
)

func (self DatasetFormat) String() string {
	switch self {
	case GEOJSON:
		return "geojson"
	case OSM_XML:
		return "osm"
	case OSM_PBF:
		return "pbf"
	default:
		panic("unknown dataset format")
	}
}

// FormatFromFilename maps a dataset file extension to its format.
func FormatFromFilename(name string) (DatasetFormat, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "geojson", "json":
		return GEOJSON, true
	case "osm":
		return OSM_XML, true
	case "pbf":
		return OSM_PBF, true
	default:
		return GEOJSON, false
	}
}

// ParseDataset decodes the dataset stored under name into a feature collection.
// All decoding failures are reported as *graph.DataFormatError.
func ParseDataset(name string, data []byte) (*geojson.FeatureCollection, error) {
	format, ok := FormatFromFilename(name)
	if !ok {
		return nil, graph.NewDataFormatError(-1, "unsupported dataset type "+filepath.Ext(name), nil)
	}
	switch format {
	case OSM_XML:
		return ParseOSM(data)
	case OSM_PBF:
		return ParsePBF(bytes.NewReader(data))
	default:
		return ParseGeoJSON(data)
	}
}

// ParseGeoJSON decodes a GeoJSON FeatureCollection.
func ParseGeoJSON(data []byte) (*geojson.FeatureCollection, error) {
	var probe struct {
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, graph.NewDataFormatError(-1, "cannot decode feature collection", err)
	}
	if len(probe.Features) == 0 || string(probe.Features) == "null" {
		return nil, graph.NewDataFormatError(-1, "missing features", nil)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, graph.NewDataFormatError(-1, "cannot decode feature collection", err)
	}
	if err := _CheckPositions(probe.Features); err != nil {
		return nil, err
	}
	return fc, nil
}

type _GeometryProbe struct {
	Geometry *struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

// orb decodes positions into [2]float64, so short positions would silently
// become zeros. Every Point and LineString position needs lon and lat.
func _CheckPositions(features json.RawMessage) error {
	var probes []_GeometryProbe
	if err := json.Unmarshal(features, &probes); err != nil {
		return graph.NewDataFormatError(-1, "cannot decode features", err)
	}
	for i, probe := range probes {
		if probe.Geometry == nil || len(probe.Geometry.Coordinates) == 0 {
			continue
		}
		var positions [][]float64
		switch probe.Geometry.Type {
		case "Point":
			var position []float64
			if err := json.Unmarshal(probe.Geometry.Coordinates, &position); err != nil {
				return graph.NewDataFormatError(i, "invalid coordinates", err)
			}
			positions = [][]float64{position}
		case "LineString":
			if err := json.Unmarshal(probe.Geometry.Coordinates, &positions); err != nil {
				return graph.NewDataFormatError(i, "invalid coordinates", err)
			}
		default:
			continue
		}
		for _, position := range positions {
			if len(position) < 2 {
				return graph.NewDataFormatError(i, "coordinate needs longitude and latitude", nil)
			}
		}
	}
	return nil
}
