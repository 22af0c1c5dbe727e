package situation

import "github.com/luca-patrignani/flopstats/domain/poker"

// Betsize is a flop bet size in percent of the pot. The zero value marks an
// untagged statistic.
type Betsize string

const (
	NoBetsize Betsize = ""
	Size33    Betsize = "33"
	Size50    Betsize = "50"
	Size75    Betsize = "75"
	Size150   Betsize = "150"
)

// AllBetsizes lists every size the solver data is generated for.
var AllBetsizes = []Betsize{Size33, Size50, Size75, Size150}

// ParseBetsize parses a bet size code such as "75".
func ParseBetsize(s string) (Betsize, error) {
	for _, b := range AllBetsizes {
		if string(b) == s {
			return b, nil
		}
	}
	return NoBetsize, poker.NewParseError("betsize", s)
}

// ParseBetsizes parses a list of sizes, rejecting duplicates. An empty list
// selects all sizes.
func ParseBetsizes(codes []string) ([]Betsize, error) {
	if len(codes) == 0 {
		return append([]Betsize(nil), AllBetsizes...), nil
	}
	seen := make(map[Betsize]bool, len(codes))
	out := make([]Betsize, 0, len(codes))
	for _, code := range codes {
		b, err := ParseBetsize(code)
		if err != nil {
			return nil, err
		}
		if seen[b] {
			return nil, poker.NewParseError("betsize", code)
		}
		seen[b] = true
		out = append(out, b)
	}
	return out, nil
}

func (b Betsize) String() string {
	if b == NoBetsize {
		return "-"
	}
	return string(b)
}
