package board

import (
	"fmt"
	"sort"

	"github.com/luca-patrignani/flopstats/domain/poker"
)

// Size is the number of community cards on a flop.
const Size = 3

// Board is a flop: three distinct cards kept in ascending rank order.
// Board values are comparable and may be used as map keys; two boards holding
// the same cards are equal regardless of the order they were written in.
type Board struct {
	cards [Size]poker.Card
}

// New builds a Board from three cards. It fails if any two cards are
// identical. Repeated ranks (paired and trips boards) are allowed.
func New(a, b, c poker.Card) (Board, error) {
	cards := [Size]poker.Card{a, b, c}
	sort.Slice(cards[:], func(i, j int) bool { return cards[i].Less(cards[j]) })
	for i := 1; i < Size; i++ {
		if cards[i] == cards[i-1] {
			return Board{}, fmt.Errorf("duplicate card %s", cards[i])
		}
	}
	return Board{cards: cards}, nil
}

// Parse reads a six character board such as "Ts9c8h".
// Malformed input yields a *poker.ParseError of kind "board".
func Parse(s string) (Board, error) {
	if len(s) != 2*Size {
		return Board{}, poker.NewParseError("board", s)
	}
	var cards [Size]poker.Card
	for i := range cards {
		c, err := poker.ParseCard(s[2*i : 2*i+2])
		if err != nil {
			return Board{}, poker.NewParseError("board", s, err)
		}
		cards[i] = c
	}
	b, err := New(cards[0], cards[1], cards[2])
	if err != nil {
		return Board{}, poker.NewParseError("board", s, err)
	}
	return b, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Cards returns the cards in ascending rank order.
func (b Board) Cards() [Size]poker.Card {
	return b.cards
}

// Lowest returns the lowest ranked card.
func (b Board) Lowest() poker.Card {
	return b.cards[0]
}

// Highest returns the highest ranked card.
func (b Board) Highest() poker.Card {
	return b.cards[Size-1]
}

// String returns the canonical form, cards in ascending rank order.
func (b Board) String() string {
	out := make([]byte, 0, 2*Size)
	for _, c := range b.cards {
		out = append(out, c.String()...)
	}
	return string(out)
}

// Symbols returns the board with colored suit symbols for terminal output.
func (b Board) Symbols() string {
	s := ""
	for i, c := range b.cards {
		if i > 0 {
			s += " "
		}
		s += c.Symbol()
	}
	return s
}

func (b Board) count(pred func(poker.Rank) bool) int {
	n := 0
	for _, c := range b.cards {
		if pred(c.Rank()) {
			n++
		}
	}
	return n
}

// uniqueRanks returns the cards with adjacent equal ranks collapsed,
// preserving ascending order.
func (b Board) uniqueRanks() []poker.Card {
	out := make([]poker.Card, 0, Size)
	for _, c := range b.cards {
		if len(out) > 0 && out[len(out)-1].Rank() == c.Rank() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (b Board) numUniqueSuits() int {
	seen := make(map[poker.Suit]struct{}, Size)
	for _, c := range b.cards {
		seen[c.Suit()] = struct{}{}
	}
	return len(seen)
}
