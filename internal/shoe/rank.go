package shoe

import "fmt"

// Rank represents a card rank. Suits are irrelevant to blackjack
// valuation, so a card is fully described by its rank.
type Rank int

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

	NumRanks = 13
)

// Value is the blackjack value of a card: 2-9 literal, 10 for all
// ten-value cards, 11 for an Ace (the soft value; reduction to 1 is
// performed during hand valuation).
type Value int

// String returns the single-character representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the plural rank name used for shoe composition display
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Twos"
	case Three:
		return "Threes"
	case Four:
		return "Fours"
	case Five:
		return "Fives"
	case Six:
		return "Sixes"
	case Seven:
		return "Sevens"
	case Eight:
		return "Eights"
	case Nine:
		return "Nines"
	case Ten:
		return "Tens"
	case Jack:
		return "Jacks"
	case Queen:
		return "Queens"
	case King:
		return "Kings"
	case Ace:
		return "Aces"
	default:
		return "Unknown"
	}
}

// Value returns the blackjack value of the rank
func (r Rank) Value() Value {
	switch {
	case r >= Two && r <= Nine:
		return Value(r) + 2
	case r >= Ten && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// IsTenValue returns true for T, J, Q and K
func (r Rank) IsTenValue() bool {
	return r >= Ten && r <= King
}

// ParseRank parses a single rank character (2-9, T, J, Q, K, A).
// Parsing is case insensitive.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank character: %q", c)
	}
}

// ParseRanks parses a run of rank characters (e.g. "T6" or "AKQ")
func ParseRanks(s string) ([]Rank, error) {
	ranks := make([]Rank, 0, len(s))
	for i := 0; i < len(s); i++ {
		r, err := ParseRank(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+1, err)
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}
