package board

import "github.com/luca-patrignani/flopstats/domain/poker"

// SuitPattern describes how many suits appear on a board.
type SuitPattern uint8

const (
	Rainbow SuitPattern = iota
	Twotone
	Monotone
)

var suitCodes = map[SuitPattern]string{
	Rainbow:  "R",
	Twotone:  "T",
	Monotone: "M",
}

// ParseSuitPattern reads a suit pattern code (R, T, M).
func ParseSuitPattern(s string) (SuitPattern, error) {
	for p, code := range suitCodes {
		if code == s {
			return p, nil
		}
	}
	return 0, poker.NewParseError("suit pattern", s)
}

func (p SuitPattern) String() string {
	if code, ok := suitCodes[p]; ok {
		return code
	}
	return "?"
}

// SuitPattern classifies b by its number of distinct suits.
func (b Board) SuitPattern() SuitPattern {
	switch b.numUniqueSuits() {
	case 1:
		return Monotone
	case 2:
		return Twotone
	default:
		return Rainbow
	}
}

// IsSuitPattern reports whether b classifies as p.
func (b Board) IsSuitPattern(p SuitPattern) bool {
	return b.SuitPattern() == p
}
