package poker

// Suit is one of the four card suits. Suits carry no ordering.
type Suit uint8

const (
	Spade Suit = iota
	Club
	Diamond
	Heart
)

const suitChars = "scdh"

// ParseSuit converts a lower case suit code (s, c, d, h) into a Suit.
// Upper case codes are rejected with a *ParseError of kind "suit".
func ParseSuit(c byte) (Suit, error) {
	for i := 0; i < len(suitChars); i++ {
		if suitChars[i] == c {
			return Suit(i), nil
		}
	}
	return 0, NewParseError("suit", string(c))
}

// Char returns the canonical single character code of the suit.
func (s Suit) Char() byte {
	if int(s) >= len(suitChars) {
		return '?'
	}
	return suitChars[s]
}

func (s Suit) String() string {
	return string(s.Char())
}
