package directions

import (
	"fmt"
	"math"
	"strings"

	"github.com/ttpr0/landmark-routing/geo"
	"github.com/ttpr0/landmark-routing/routing"
	. "github.com/ttpr0/landmark-routing/util"
)

// Synthesize walks a path and its per-edge geometry and produces the
// turn-by-turn instructions, always starting with a start step and ending
// with a destination step.
//
// Turns are computed from the exit bearing of the previous edge and the entry
// bearing of the next one. Departing a junction always produces a separate
// turn step (even when going straight); departing a landmark merges an actual
// turn into the next straight step.
func Synthesize(path routing.Path) ([]Instruction, error) {
	if len(path.Nodes) == 0 {
		return nil, fmt.Errorf("cannot build instructions for an empty path")
	}
	if len(path.Geometries) != len(path.Nodes)-1 {
		return nil, fmt.Errorf("path has %d nodes but %d segment geometries", len(path.Nodes), len(path.Geometries))
	}
	for i, geom := range path.Geometries {
		if len(geom) < 2 {
			return nil, fmt.Errorf("segment %d has fewer than two coordinates", i)
		}
	}

	instructions := NewList[Instruction](2 * len(path.Nodes))
	instructions.Add(Instruction{
		Text: "Start at " + Capitalize(path.Start()),
		Type: START,
	})

	for i, coords := range path.Geometries {
		dist := int(math.Floor(geo.LineLength(coords)))
		next_node := path.Nodes[i+1]

		if i == 0 {
			instructions.Add(_Straight(_CONTINUE_STRAIGHT, _GO_STRAIGHT, next_node, dist))
			continue
		}

		prev_coords := path.Geometries[i-1]
		b1 := geo.Bearing(prev_coords[len(prev_coords)-2], prev_coords[len(prev_coords)-1])
		b2 := geo.Bearing(coords[0], coords[1])
		turn := geo.ClassifyTurn(b1, b2)

		curr_node := path.Nodes[i]
		if IsJunction(curr_node) {
			instructions.Add(Instruction{
				Text:          fmt.Sprintf("At %s, %s", strings.ToUpper(curr_node), turn.String()),
				Type:          TURN,
				TurnDirection: turn.Tag(),
			})
			instructions.Add(_Straight(_GO_STRAIGHT, _GO_STRAIGHT, next_node, dist))
		} else if !turn.IsTurn() {
			instructions.Add(_Straight(_CONTINUE_STRAIGHT, _CONTINUE_STRAIGHT, next_node, dist))
		} else {
			instructions.Add(_TurnAndGo(turn, next_node, dist))
		}
	}

	instructions.Add(Instruction{
		Text: "Reach " + strings.ToUpper(path.End()),
		Type: DESTINATION,
	})
	return instructions, nil
}

//*******************************************
// step phrasing
//*******************************************

const (
	_GO_STRAIGHT       = "Go straight"
	_CONTINUE_STRAIGHT = "Continue straight"
)

// straight step towards node, announced as reaching a junction or crossing a landmark
func _Straight(junction_verb, landmark_verb string, node string, dist int) Instruction {
	var text string
	if IsJunction(node) {
		text = fmt.Sprintf("%s %d m to %s", junction_verb, dist, DisplayName(node))
	} else {
		text = fmt.Sprintf("%s %d m and cross %s", landmark_verb, dist, DisplayName(node))
	}
	return Instruction{
		Text:     text,
		Type:     STRAIGHT,
		Distance: &dist,
		Landmark: node,
	}
}

func _TurnAndGo(turn geo.TurnDirection, node string, dist int) Instruction {
	var text string
	if IsJunction(node) {
		text = fmt.Sprintf("%s and go %d m to %s", turn.String(), dist, DisplayName(node))
	} else {
		text = fmt.Sprintf("%s and go %d m crossing %s", turn.String(), dist, DisplayName(node))
	}
	return Instruction{
		Text:          text,
		Type:          TURN_STRAIGHT,
		Distance:      &dist,
		TurnDirection: turn.Tag(),
		Landmark:      node,
	}
}
