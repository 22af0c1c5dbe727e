package board

import (
	"slices"

	"github.com/luca-patrignani/flopstats/domain/poker"
)

// Connection is a straight related feature a filter can ask for. Unlike
// Connectedness the features overlap: a wheel board also has AnyStraight.
type Connection uint8

const (
	ConnDisconnected Connection = iota
	ConnGutshot
	ConnOESD
	ConnWheel
	ConnNormalStraight
	ConnAnyStraight
)

var connectionCodes = map[Connection]string{
	ConnDisconnected:   "DC",
	ConnGutshot:        "GS",
	ConnOESD:           "OESD",
	ConnWheel:          "WH",
	ConnNormalStraight: "NS",
	ConnAnyStraight:    "AS",
}

// ParseConnection reads a connection code (DC, GS, OESD, WH, NS, AS).
func ParseConnection(s string) (Connection, error) {
	for c, code := range connectionCodes {
		if code == s {
			return c, nil
		}
	}
	return 0, poker.NewParseError("connection", s)
}

func (c Connection) String() string {
	if code, ok := connectionCodes[c]; ok {
		return code
	}
	return "?"
}

// Connectedness is the single straight potential class of a board, taken in
// precedence order: straight, open ended draw, gutshot, disconnected.
type Connectedness uint8

const (
	StraightPossible Connectedness = iota
	OESDPossible
	GutshotPossible
	Disconnected
	// AceHighDry holds ace high boards with wide gaps, e.g. "Ac9h4h". An ace
	// high board is never disconnected, yet none of the draws apply.
	AceHighDry
)

var connectednessCodes = map[Connectedness]string{
	StraightPossible: "AS",
	OESDPossible:     "OESD",
	GutshotPossible:  "GS",
	Disconnected:     "DC",
	AceHighDry:       "AHD",
}

func (c Connectedness) String() string {
	if code, ok := connectednessCodes[c]; ok {
		return code
	}
	return "?"
}

// IsNormalStraightPossible reports whether three distinct ranks of the board
// fit inside a five rank window.
func (b Board) IsNormalStraightPossible() bool {
	unique := b.uniqueRanks()
	for i := 0; i+3 <= len(unique); i++ {
		if poker.CardDistance(unique[i+2], unique[i]) <= 4 {
			return true
		}
	}
	return false
}

// IsWheelPossible reports whether every card is A, 2, 3, 4 or 5.
func (b Board) IsWheelPossible() bool {
	return b.count(poker.Rank.IsWheel) == Size
}

// IsAnyStraightPossible reports whether a normal or wheel straight is possible.
func (b Board) IsAnyStraightPossible() bool {
	return b.IsNormalStraightPossible() || b.IsWheelPossible()
}

// IsOnlyOESDPossible reports an open ended draw on a board without a
// straight. Aces are ignored here; their low role is covered by the wheel.
func (b Board) IsOnlyOESDPossible() bool {
	if b.IsAnyStraightPossible() {
		return false
	}
	nonAce := make([]poker.Card, 0, Size)
	for _, c := range b.cards {
		if !c.IsAce() {
			nonAce = append(nonAce, c)
		}
	}
	return slices.ContainsFunc(poker.Distances(nonAce), func(d int) bool {
		return d >= 1 && d <= 3
	})
}

// IsOnlyGutshotPossible reports an inside draw on a board with neither a
// straight nor an open ended draw.
func (b Board) IsOnlyGutshotPossible() bool {
	if b.IsAnyStraightPossible() || b.IsOnlyOESDPossible() {
		return false
	}
	return b.minDistance() <= 4
}

// IsDisconnected reports boards whose cards are more than four ranks apart.
// Ace high boards are never disconnected.
func (b Board) IsDisconnected() bool {
	if b.Highest().IsAce() {
		return false
	}
	return b.minDistance() > 4
}

func (b Board) minDistance() int {
	return slices.Min(poker.Distances(b.cards[:]))
}

// HasConnection evaluates a single filter feature.
func (b Board) HasConnection(c Connection) bool {
	switch c {
	case ConnDisconnected:
		return b.IsDisconnected()
	case ConnGutshot:
		return b.IsOnlyGutshotPossible()
	case ConnOESD:
		return b.IsOnlyOESDPossible()
	case ConnWheel:
		return b.IsWheelPossible()
	case ConnNormalStraight:
		return b.IsNormalStraightPossible()
	case ConnAnyStraight:
		return b.IsAnyStraightPossible()
	default:
		return false
	}
}

// Connectedness classifies the board into exactly one class.
func (b Board) Connectedness() Connectedness {
	switch {
	case b.IsAnyStraightPossible():
		return StraightPossible
	case b.IsOnlyOESDPossible():
		return OESDPossible
	case b.IsOnlyGutshotPossible():
		return GutshotPossible
	case b.IsDisconnected():
		return Disconnected
	default:
		return AceHighDry
	}
}
