// Package bonus computes the additive damage bonus applied when a damage
// roll follows a successful accuracy roll.
package bonus

import (
	"fmt"
	"strings"
)

// Bonus amounts
const (
	SameTypeBonus = 1
	CriticalBonus = 2
	CritSuccesses = 3 // more successes than this is a critical
	DefaultLabel  = "Bonus"
)

// Input describes the accuracy roll a damage roll follows
type Input struct {
	CharacterTypes []string
	MoveType       string
	PriorSuccesses int
	SecondaryValue int
}

// Breakdown itemizes a damage bonus
type Breakdown struct {
	Base     int
	SameType int
	Critical int
	Total    int
}

// Calculate returns the bonus breakdown for a damage follow-up. The move
// type is compared to each character type ignoring case; empty types never
// match.
func Calculate(in Input) Breakdown {
	b := Breakdown{Base: in.SecondaryValue}

	if in.MoveType != "" {
		for _, t := range in.CharacterTypes {
			if t != "" && strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(in.MoveType)) {
				b.SameType = SameTypeBonus
				break
			}
		}
	}

	if in.PriorSuccesses > CritSuccesses {
		b.Critical = CriticalBonus
	}

	b.Total = b.Base + b.SameType + b.Critical
	return b
}

// Label lists the non-zero parts, e.g. "Base(2) STAB(+1) Crit(+2)", or
// "Bonus" when there are none
func (b Breakdown) Label() string {
	var parts []string
	if b.Base != 0 {
		parts = append(parts, fmt.Sprintf("Base(%d)", b.Base))
	}
	if b.SameType != 0 {
		parts = append(parts, fmt.Sprintf("STAB(+%d)", b.SameType))
	}
	if b.Critical != 0 {
		parts = append(parts, fmt.Sprintf("Crit(+%d)", b.Critical))
	}
	if len(parts) == 0 {
		return DefaultLabel
	}
	return strings.Join(parts, " ")
}

// IsCritical reports whether the critical bonus applied
func (b Breakdown) IsCritical() bool {
	return b.Critical > 0
}
