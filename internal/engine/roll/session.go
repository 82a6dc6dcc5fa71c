// Package roll models a single dice check as a small state machine:
// setup, rolling, result. A result from a move accuracy check can chain
// into a fresh damage check.
package roll

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/engine/bonus"
	"github.com/KirkDiggler/pokerole-api/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-api/internal/engine/stats"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Mode selects how a check builds its pool and reads its result
type Mode string

// Modes
const (
	ModeAttribute  Mode = "attribute"
	ModeMove       Mode = "move"
	ModeInitiative Mode = "initiative"
)

// Step is a state in the session lifecycle
type Step string

// Steps
const (
	StepSetup   Step = "setup"
	StepRolling Step = "rolling"
	StepResult  Step = "result"
)

// Fixed labels
const (
	DamageStatName     = "Damage"
	InitiativeStatName = "Initiative"
	InitiativeLabel    = "Dexterity + Alert"
)

// A face above this counts as a success
const SuccessThreshold = 3

// Rejection reasons
const (
	ReasonInvalidTransition = "INVALID_TRANSITION"
	ReasonEmptyPool         = "EMPTY_POOL"
	ReasonNoDamagePool      = "NO_DAMAGE_POOL"
)

// ActiveMove is carried by a move accuracy check so its damage roll can
// follow
type ActiveMove struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	DamagePool string `json:"damage_pool"`
}

// MoveCheck describes the move behind a move-mode session
type MoveCheck struct {
	Name     string
	Type     string
	Accuracy string
	Damage   string
}

// Session is one dice check. It is a value: every transition returns a
// new Session and leaves the receiver untouched.
type Session struct {
	Mode           Mode        `json:"mode"`
	Step           Step        `json:"step"`
	StatName       string      `json:"stat_name"`
	StatValue      int         `json:"stat_value"`
	SecondaryName  string      `json:"secondary_name,omitempty"`
	SecondaryValue int         `json:"secondary_value"`
	Results        []int       `json:"results"`
	Successes      int         `json:"successes"`
	Total          int         `json:"total"`
	ActiveMove     *ActiveMove `json:"active_move,omitempty"`
}

// NewAttributeCheck starts an attribute check for statName. A stat of 0 is
// accepted; a skill added in setup can still supply the dice.
func NewAttributeCheck(sheet stats.Sheet, statName string) (Session, error) {
	if !stats.Known(statName) {
		return Session{}, errors.InvalidArgumentf("%q is not an attribute or skill", statName)
	}

	return Session{
		Mode:      ModeAttribute,
		Step:      StepSetup,
		StatName:  statName,
		StatValue: stats.Resolve(sheet, statName),
	}, nil
}

// NewMoveCheck starts an accuracy check for a move. When the accuracy pool
// offers a choice, choice selects the option; with no choice the error
// carries the options (see pool.IsChoiceRequired).
func NewMoveCheck(sheet stats.Sheet, move MoveCheck, choice string) (Session, error) {
	p, err := bindChoice(pool.Parse(move.Accuracy), choice)
	if err != nil {
		return Session{}, err
	}

	values, err := pool.Resolve(sheet, p)
	if err != nil {
		return Session{}, err
	}

	s := Session{
		Mode:           ModeMove,
		Step:           StepSetup,
		StatName:       p.Primary,
		StatValue:      values.Primary,
		SecondaryName:  p.Secondary,
		SecondaryValue: values.Secondary,
	}
	if move.Damage != "" {
		s.ActiveMove = &ActiveMove{
			Name:       move.Name,
			Type:       move.Type,
			DamagePool: move.Damage,
		}
	}
	return s, nil
}

// NewInitiativeCheck starts an initiative check: one die plus a modifier
// of Dexterity and Alert
func NewInitiativeCheck(sheet stats.Sheet) Session {
	return Session{
		Mode:           ModeInitiative,
		Step:           StepSetup,
		StatName:       InitiativeStatName,
		StatValue:      1,
		SecondaryName:  InitiativeLabel,
		SecondaryValue: stats.Resolve(sheet, "Dexterity") + stats.Resolve(sheet, "Alert"),
	}
}

// ToggleSkill adds a skill to an attribute check. Toggling the selected
// skill removes it and toggling a different one replaces it.
func (s Session) ToggleSkill(sheet stats.Sheet, skill string) (Session, error) {
	if s.Mode != ModeAttribute {
		return s, transitionError("skills can only be added to attribute checks")
	}
	if s.Step != StepSetup {
		return s, transitionErrorf("cannot change skills while %s", s.Step)
	}
	if !stats.IsSkill(skill) {
		return s, errors.InvalidArgumentf("%q is not a skill", skill)
	}

	next := s.clone()
	if strings.EqualFold(s.SecondaryName, skill) {
		next.SecondaryName = ""
		next.SecondaryValue = 0
		return next, nil
	}

	next.SecondaryName = skill
	next.SecondaryValue = stats.Resolve(sheet, skill)
	return next, nil
}

// DiceCount is the number of dice the check rolls
func (s Session) DiceCount() int {
	if s.Mode == ModeInitiative {
		return 1
	}
	return s.StatValue + s.SecondaryValue
}

// Modifier is the flat amount added to an initiative die
func (s Session) Modifier() int {
	if s.Mode != ModeInitiative {
		return 0
	}
	return s.SecondaryValue
}

// Start moves from setup to rolling. A pool with no dice cannot be rolled.
func (s Session) Start() (Session, error) {
	if s.Step != StepSetup {
		return s, transitionErrorf("cannot start a roll from %s", s.orBlank())
	}
	if s.DiceCount() <= 0 {
		return s, errors.FailedPreconditionf("%s contributes no dice", s.terms()).
			WithReason(ReasonEmptyPool)
	}
	next := s.clone()
	next.Step = StepRolling
	next.Results = nil
	next.Successes = 0
	next.Total = 0
	return next, nil
}

// Commit settles a rolling session with the final faces. Exactly
// DiceCount faces in [1,6] are required.
func (s Session) Commit(faces []int) (Session, error) {
	if s.Step != StepRolling {
		return s, transitionErrorf("cannot commit a roll from %s", s.orBlank())
	}
	if want := s.DiceCount(); len(faces) != want {
		return s, errors.InvalidArgumentf("expected %d faces, got %d", want, len(faces))
	}
	for i, f := range faces {
		if f < 1 || f > Sides {
			return s, errors.InvalidArgumentf("face %d is %d, must be in [1,%d]", i, f, Sides)
		}
	}

	next := s.clone()
	next.Step = StepResult
	next.Results = append([]int(nil), faces...)

	if s.Mode == ModeInitiative {
		next.Total = faces[0] + s.Modifier()
		return next, nil
	}

	next.Successes = CountSuccesses(faces)
	return next, nil
}

// Roll starts the check, draws its dice from src and commits them
func (s Session) Roll(src Source) (Session, error) {
	rolling, err := s.Start()
	if err != nil {
		return s, err
	}

	faces, err := RollDice(rolling.DiceCount(), src)
	if err != nil {
		return s, err
	}

	return rolling.Commit(faces)
}

// CanFollowWithDamage reports whether DamageFollowUp is available
func (s Session) CanFollowWithDamage() bool {
	return s.Mode == ModeMove && s.Step == StepResult &&
		s.ActiveMove != nil && s.ActiveMove.DamagePool != ""
}

// DamageFollowUp builds the damage check that follows a move accuracy
// result. The first damage term sets the dice; the second term plus the
// same-type and critical bonuses are added as a labelled bonus. The
// returned session carries no active move so it cannot chain again.
func (s Session) DamageFollowUp(sheet stats.Sheet, types []string, choice string) (Session, error) {
	if s.Mode != ModeMove || s.Step != StepResult {
		return s, transitionError("damage can only follow a move accuracy result")
	}
	if s.ActiveMove == nil || s.ActiveMove.DamagePool == "" {
		return s, errors.FailedPrecondition("move has no damage pool").WithReason(ReasonNoDamagePool)
	}

	p, err := bindChoice(pool.Parse(s.ActiveMove.DamagePool), choice)
	if err != nil {
		return s, err
	}

	values, err := pool.Resolve(sheet, p)
	if err != nil {
		return s, err
	}

	b := bonus.Calculate(bonus.Input{
		CharacterTypes: types,
		MoveType:       s.ActiveMove.Type,
		PriorSuccesses: s.Successes,
		SecondaryValue: values.Secondary,
	})

	return Session{
		Mode:           ModeMove,
		Step:           StepSetup,
		StatName:       DamageStatName,
		StatValue:      values.Primary,
		SecondaryName:  b.Label(),
		SecondaryValue: b.Total,
	}, nil
}

// Describe renders a one-line summary of the session
func (s Session) Describe() string {
	terms := s.terms()

	switch {
	case s.Step != StepResult:
		return fmt.Sprintf("%s: %d dice (%s)", s.Mode, s.DiceCount(), terms)
	case s.Mode == ModeInitiative:
		return fmt.Sprintf("initiative: %v + %d = %d", s.Results, s.Modifier(), s.Total)
	default:
		return fmt.Sprintf("%s: %v -> %d successes (%s)", s.Mode, s.Results, s.Successes, terms)
	}
}

// CountSuccesses counts faces above SuccessThreshold
func CountSuccesses(faces []int) int {
	n := 0
	for _, f := range faces {
		if f > SuccessThreshold {
			n++
		}
	}
	return n
}

func (s Session) terms() string {
	switch {
	case s.StatName == "":
		return "the pool"
	case s.SecondaryName != "":
		return fmt.Sprintf("%s + %s", s.StatName, s.SecondaryName)
	default:
		return s.StatName
	}
}

func bindChoice(p pool.Pool, choice string) (pool.Pool, error) {
	if !p.IsChoice {
		return p, nil
	}
	if choice == "" {
		return p, pool.ErrChoiceRequired(p.Options)
	}
	return p.Choose(choice)
}

func (s Session) clone() Session {
	next := s
	if s.Results != nil {
		next.Results = append([]int(nil), s.Results...)
	}
	if s.ActiveMove != nil {
		am := *s.ActiveMove
		next.ActiveMove = &am
	}
	return next
}

func (s Session) orBlank() Step {
	if s.Step == "" {
		return "an empty session"
	}
	return s.Step
}

func transitionError(msg string) error {
	return errors.FailedPrecondition(msg).WithReason(ReasonInvalidTransition)
}

func transitionErrorf(format string, args ...interface{}) error {
	return errors.FailedPreconditionf(format, args...).WithReason(ReasonInvalidTransition)
}
