package poker

import (
	"fmt"

	phpoker "github.com/paulhankin/poker"
	"github.com/pterm/pterm"
)

// Card represents a playing card with rank and suit.
// Cards are ordered by rank only; the suit never takes part in comparisons
// made by texture classification.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: Two through Ace
//   - suit: Spade, Club, Diamond or Heart
//
// Returns the Card or an error if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || suit > Heart {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}

	return Card{
		rank: rank,
		suit: suit,
	}, nil
}

// ParseCard parses a two character card code such as "As" or "Td".
// A malformed code yields a *ParseError of kind "card" wrapping the
// rank or suit error.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, NewParseError("card", s)
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, NewParseError("card", s, err)
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, NewParseError("card", s, err)
	}
	return Card{rank: rank, suit: suit}, nil
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// IsAce reports whether c is an ace.
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// String returns the canonical two character code, e.g. "Kh".
func (c Card) String() string {
	return string([]byte{c.rank.Char(), c.suit.Char()})
}

// Symbol returns the card with a colored suit symbol (♣, ♦, ♥, ♠) for
// terminal output.
func (c Card) Symbol() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

// Less orders cards by rank, falling back to suit so that a sorted set of
// cards has a single canonical order.
func (c Card) Less(o Card) bool {
	if c.rank != o.rank {
		return c.rank < o.rank
	}
	return c.suit < o.suit
}

// CardDistance is the rank distance between two cards.
func CardDistance(a, b Card) int {
	return Distance(a.rank, b.rank)
}

// Distances returns the rank distance between each pair of adjacent cards.
// The result has len(cards)-1 elements, or none for fewer than two cards.
func Distances(cards []Card) []int {
	if len(cards) < 2 {
		return nil
	}
	out := make([]int, 0, len(cards)-1)
	for i := 1; i < len(cards); i++ {
		out = append(out, CardDistance(cards[i], cards[i-1]))
	}
	return out
}

// Library converts the card to its github.com/paulhankin/poker form.
// That library counts ranks from Ace=1 to King=13.
func (c Card) Library() (phpoker.Card, error) {
	var s phpoker.Suit
	switch c.suit {
	case Club:
		s = phpoker.Club
	case Diamond:
		s = phpoker.Diamond
	case Heart:
		s = phpoker.Heart
	case Spade:
		s = phpoker.Spade
	default:
		var zero phpoker.Card
		return zero, fmt.Errorf("invalid suit %d", c.suit)
	}
	r := phpoker.Rank(1)
	if c.rank != Ace {
		r = phpoker.Rank(int(c.rank) + 2)
	}
	return phpoker.MakeCard(s, r)
}
