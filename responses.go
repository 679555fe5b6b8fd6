package main

import (
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/landmark-routing/directions"
	"github.com/ttpr0/landmark-routing/geo"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type UploadResponse struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

type Landmark struct {
	Name        string    `json:"name"`
	Coordinates geo.Coord `json:"coordinates"`
}

type ReachableLandmark struct {
	Name string `json:"name"`
	// network distance in whole meters
	Distance int `json:"distance"`
}

type RouteResponse struct {
	directions.Summary
	Instructions []directions.Instruction   `json:"instructions"`
	Polyline     string                     `json:"polyline"`
	Geometry     *geojson.FeatureCollection `json:"geometry"`
	Filename     string                     `json:"filename"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
