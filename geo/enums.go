package geo

import (
	"encoding/json"
	"strings"
)

type TurnDirection byte

const (
	STRAIGHT TurnDirection = 0
	LEFT     TurnDirection = 1
	RIGHT    TurnDirection = 2
)

func (self TurnDirection) String() string {
	switch self {
	case STRAIGHT:
		return "Go straight"
	case LEFT:
		return "Turn left"
	case RIGHT:
		return "Turn right"
	default:
		panic("unknown turn direction")
	}
}

// Tag returns the machine form of the direction, e.g. "turn-right".
func (self TurnDirection) Tag() string {
	return strings.ReplaceAll(strings.ToLower(self.String()), " ", "-")
}

func (self TurnDirection) IsTurn() bool {
	return self != STRAIGHT
}

func (self TurnDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.Tag())
}
