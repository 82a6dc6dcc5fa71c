package pokerole

import "strings"

// Rank is a progression tier gating which moves a creature may learn
type Rank string

// Rank constants in ascending order
const (
	RankStarter  Rank = "Starter"
	RankBeginner Rank = "Beginner"
	RankAmateur  Rank = "Amateur"
	RankAce      Rank = "Ace"
	RankPro      Rank = "Pro"
	RankMaster   Rank = "Master"
	RankChampion Rank = "Champion"
)

// AllRanks returns every rank from lowest to highest
func AllRanks() []Rank {
	return []Rank{
		RankStarter,
		RankBeginner,
		RankAmateur,
		RankAce,
		RankPro,
		RankMaster,
		RankChampion,
	}
}

// Ordinal returns the position of the rank in the fixed ordering.
// Unknown ranks return -1 and therefore sort below Starter.
func (r Rank) Ordinal() int {
	switch r {
	case RankStarter:
		return 0
	case RankBeginner:
		return 1
	case RankAmateur:
		return 2
	case RankAce:
		return 3
	case RankPro:
		return 4
	case RankMaster:
		return 5
	case RankChampion:
		return 6
	default:
		return -1
	}
}

// IsValid reports whether r is one of the known ranks
func (r Rank) IsValid() bool {
	return r.Ordinal() >= 0
}

// Above reports whether r is strictly higher than other
func (r Rank) Above(other Rank) bool {
	return r.Ordinal() > other.Ordinal()
}

// String returns the display name
func (r Rank) String() string {
	return string(r)
}

// ParseRank maps a free-form rank name onto a Rank, ignoring case and
// surrounding whitespace. Unrecognized input is returned as-is so the
// caller can still store it; its Ordinal will be -1.
func ParseRank(s string) Rank {
	trimmed := strings.TrimSpace(s)
	for _, r := range AllRanks() {
		if strings.EqualFold(trimmed, string(r)) {
			return r
		}
	}
	return Rank(trimmed)
}
