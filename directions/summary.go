package directions

import (
	"math"
	"strings"

	"github.com/ttpr0/landmark-routing/routing"
)

const ROUTE_SEPARATOR = " -> "

type Summary struct {
	Route      string `json:"route"`
	TotalSteps int    `json:"total_steps"`
	// total route length in whole meters
	TotalDistance int `json:"total_distance"`
}

func Summarize(path routing.Path, instructions []Instruction) Summary {
	return Summary{
		Route:         strings.Join(path.Nodes, ROUTE_SEPARATOR),
		TotalSteps:    len(instructions),
		TotalDistance: int(math.Floor(path.Distance)),
	}
}
