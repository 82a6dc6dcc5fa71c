package pokerole

import "strings"

// Status is a creature's current status condition
type Status string

// Status conditions
const (
	StatusNeutral    Status = "Neutral"
	StatusBurn       Status = "Burn"
	StatusFreeze     Status = "Freeze"
	StatusParalysis  Status = "Paralysis"
	StatusPoison     Status = "Poison"
	StatusBadPoison  Status = "Bad Poison"
	StatusSleep      Status = "Sleep"
	StatusConfused   Status = "Confused"
	StatusInfatuated Status = "Infatuated"
	StatusFainted    Status = "Fainted"
)

// AllStatuses returns the fixed set of status conditions
func AllStatuses() []Status {
	return []Status{
		StatusNeutral,
		StatusBurn,
		StatusFreeze,
		StatusParalysis,
		StatusPoison,
		StatusBadPoison,
		StatusSleep,
		StatusConfused,
		StatusInfatuated,
		StatusFainted,
	}
}

// ParseStatus matches s against the known conditions, ignoring case
func ParseStatus(s string) (Status, bool) {
	trimmed := strings.TrimSpace(s)
	for _, st := range AllStatuses() {
		if strings.EqualFold(trimmed, string(st)) {
			return st, true
		}
	}
	return "", false
}

// IsFainted reports whether the creature is knocked out
func (s Status) IsFainted() bool {
	return s == StatusFainted
}
