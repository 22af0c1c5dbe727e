package situation

import "github.com/luca-patrignani/flopstats/domain/poker"

// Position is a seat at a six handed table.
type Position string

const (
	LJ  Position = "LJ"
	HJ  Position = "HJ"
	CO  Position = "CO"
	BTN Position = "BTN"
	SB  Position = "SB"
	BB  Position = "BB"
)

var positions = []Position{LJ, HJ, CO, BTN, SB, BB}

// ParsePosition parses a position code such as "BTN".
func ParsePosition(s string) (Position, error) {
	for _, p := range positions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", poker.NewParseError("position", s)
}

// Positions is the in position and out of position player of a heads up pot.
type Positions struct {
	IP  Position
	OOP Position
}

// ParsePositions expects exactly two position codes, in position first.
func ParsePositions(codes []string) (Positions, error) {
	if len(codes) != 2 {
		return Positions{}, poker.NewParseError("positions", joinCodes(codes))
	}
	ip, err := ParsePosition(codes[0])
	if err != nil {
		return Positions{}, err
	}
	oop, err := ParsePosition(codes[1])
	if err != nil {
		return Positions{}, err
	}
	if ip == oop {
		return Positions{}, poker.NewParseError("positions", joinCodes(codes))
	}
	return Positions{IP: ip, OOP: oop}, nil
}

func (p Positions) String() string {
	return string(p.IP) + " vs " + string(p.OOP)
}
