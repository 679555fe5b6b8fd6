package directions

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

//*******************************************
// instruction
//*******************************************

type InstructionType string

const (
	START         InstructionType = "start"
	STRAIGHT      InstructionType = "straight"
	TURN          InstructionType = "turn"
	TURN_STRAIGHT InstructionType = "turn-straight"
	DESTINATION   InstructionType = "destination"
)

// Instruction is one navigation step. Distance, TurnDirection and Landmark
// are only set for the step types that carry them.
type Instruction struct {
	Text          string          `json:"text"`
	Type          InstructionType `json:"type"`
	Distance      *int            `json:"distance,omitempty"`
	TurnDirection string          `json:"turn_direction,omitempty"`
	Landmark      string          `json:"landmark,omitempty"`
}

//*******************************************
// node naming
//*******************************************

// IsJunction reports whether a (lower-cased) node name denotes a junction.
func IsJunction(name string) bool {
	return strings.HasPrefix(name, "j")
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// DisplayName renders junctions upper-case and landmarks capitalized.
func DisplayName(name string) string {
	if IsJunction(name) {
		return strings.ToUpper(name)
	}
	return Capitalize(name)
}
