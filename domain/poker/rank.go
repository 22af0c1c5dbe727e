package poker

// Rank is the value of a card without its suit, ordered from Two to Ace.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// ParseRank converts the canonical single character code (2-9, T, J, Q, K, A)
// into a Rank. Any other character yields a *ParseError of kind "rank".
func ParseRank(c byte) (Rank, error) {
	for i := 0; i < NumRanks; i++ {
		if rankChars[i] == c {
			return Rank(i), nil
		}
	}
	return 0, NewParseError("rank", string(c))
}

// Char returns the canonical single character code of the rank.
func (r Rank) Char() byte {
	if int(r) >= NumRanks {
		return '?'
	}
	return rankChars[r]
}

func (r Rank) String() string {
	return string(r.Char())
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// IsBroadway reports whether r is T, J, Q, K or A.
func (r Rank) IsBroadway() bool {
	return r >= Ten && r <= Ace
}

// IsMiddling reports whether r is 7, 8 or 9.
func (r Rank) IsMiddling() bool {
	return r >= Seven && r <= Nine
}

// IsLow reports whether r is 2 through 6.
func (r Rank) IsLow() bool {
	return r <= Six
}

// IsWheel reports whether r can be part of the A-2-3-4-5 straight.
func (r Rank) IsWheel() bool {
	return r == Ace || r <= Five
}

// Distance is the absolute difference between the ordinals of a and b.
func Distance(a, b Rank) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
