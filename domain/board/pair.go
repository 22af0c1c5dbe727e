package board

import "github.com/luca-patrignani/flopstats/domain/poker"

// Pairing describes repeated ranks on a board.
type Pairing uint8

const (
	Unpaired Pairing = iota
	Paired
	Trips
)

var pairingCodes = map[Pairing]string{
	Unpaired: "U",
	Paired:   "P",
	Trips:    "T",
}

// ParsePairing reads a pairing code (U, P, T).
func ParsePairing(s string) (Pairing, error) {
	for p, code := range pairingCodes {
		if code == s {
			return p, nil
		}
	}
	return 0, poker.NewParseError("pairing", s)
}

func (p Pairing) String() string {
	if code, ok := pairingCodes[p]; ok {
		return code
	}
	return "?"
}

// Pairing classifies b by its number of distinct ranks.
func (b Board) Pairing() Pairing {
	switch len(b.uniqueRanks()) {
	case 1:
		return Trips
	case 2:
		return Paired
	default:
		return Unpaired
	}
}

// IsPairing reports whether b classifies as p.
func (b Board) IsPairing(p Pairing) bool {
	return b.Pairing() == p
}
