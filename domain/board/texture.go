package board

import (
	"sort"

	phpoker "github.com/paulhankin/poker"
)

// Texture bundles the four exclusive classifications of a board.
type Texture struct {
	Height        Height
	Suit          SuitPattern
	Pairing       Pairing
	Connectedness Connectedness
}

// Texture classifies b along all four dimensions.
func (b Board) Texture() Texture {
	return Texture{
		Height:        b.Height(),
		Suit:          b.SuitPattern(),
		Pairing:       b.Pairing(),
		Connectedness: b.Connectedness(),
	}
}

// Codes returns the texture as short codes in height, suit, pairing,
// connectedness order.
func (t Texture) Codes() []string {
	return []string{t.Height.String(), t.Suit.String(), t.Pairing.String(), t.Connectedness.String()}
}

// Strength scores the flop as a three card poker hand; higher is stronger.
func (b Board) Strength() (int16, error) {
	var hand [Size]phpoker.Card
	for i, c := range b.cards {
		pc, err := c.Library()
		if err != nil {
			return 0, err
		}
		hand[i] = pc
	}
	return phpoker.Eval3(&hand), nil
}

// SortByStrength orders boards strongest first, breaking ties by their
// canonical string. Boards that cannot be scored sort last.
func SortByStrength(boards []Board) {
	scores := make(map[Board]int16, len(boards))
	for _, b := range boards {
		s, err := b.Strength()
		if err != nil {
			s = -1 << 15
		}
		scores[b] = s
	}
	sort.SliceStable(boards, func(i, j int) bool {
		si, sj := scores[boards[i]], scores[boards[j]]
		if si != sj {
			return si > sj
		}
		return boards[i].String() < boards[j].String()
	})
}
