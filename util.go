package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ttpr0/landmark-routing/graph"
	"github.com/ttpr0/landmark-routing/routing"
	"github.com/ttpr0/landmark-routing/store"
)

// ErrorResult maps a failure of the routing pipeline onto a response status.
func ErrorResult(err error) Result {
	var format_err *graph.DataFormatError
	var landmark_err *UnknownLandmarkError
	switch {
	case errors.Is(err, store.ErrDatasetNotFound):
		return NotFound("GeoJSON file not found")
	case errors.Is(err, store.ErrInvalidName):
		return BadRequest("Invalid file name")
	case errors.As(err, &landmark_err):
		return BadRequest(landmark_err.Error())
	case errors.Is(err, routing.ErrNoRoute):
		return NotFound("No route found")
	case errors.As(err, &format_err):
		return Unprocessable(format_err.Error())
	default:
		return InternalError(err.Error())
	}
}

// Outcome is the metrics label for the result of a request.
func Outcome(res Result) string {
	switch res.status {
	case http.StatusOK:
		return "ok"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "invalid_dataset"
	default:
		return "error"
	}
}

func _LowerName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
