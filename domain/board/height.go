package board

import (
	"github.com/luca-patrignani/flopstats/domain/poker"
)

// Height buckets a board by how many high cards it holds.
type Height uint8

const (
	TripleBroadway Height = iota
	DoubleBroadway
	SingleBroadway
	Middling
	Low
)

var heightCodes = map[Height]string{
	TripleBroadway: "3BW",
	DoubleBroadway: "2BW",
	SingleBroadway: "1BW",
	Middling:       "MID",
	Low:            "LOW",
}

// ParseHeight reads a height code (1BW, 2BW, 3BW, MID, LOW).
func ParseHeight(s string) (Height, error) {
	for h, code := range heightCodes {
		if code == s {
			return h, nil
		}
	}
	return 0, poker.NewParseError("height", s)
}

func (h Height) String() string {
	if code, ok := heightCodes[h]; ok {
		return code
	}
	return "?"
}

// Height classifies the board. Paired cards count individually, so "KsKd2c"
// is double broadway.
func (b Board) Height() Height {
	switch b.count(poker.Rank.IsBroadway) {
	case 3:
		return TripleBroadway
	case 2:
		return DoubleBroadway
	case 1:
		return SingleBroadway
	}
	if b.count(poker.Rank.IsMiddling) > 0 {
		return Middling
	}
	return Low
}

// IsHeight reports whether b classifies as h.
func (b Board) IsHeight(h Height) bool {
	return b.Height() == h
}
