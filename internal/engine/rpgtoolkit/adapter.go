// Package rpgtoolkit provides the concrete implementation of the engine
// interface, drawing dice through rpg-toolkit.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokerole-api/internal/engine"
	"github.com/KirkDiggler/pokerole-api/internal/engine/moves"
	"github.com/KirkDiggler/pokerole-api/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Adapter implements the engine.Engine interface
type Adapter struct {
	dice roll.Source
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	// DiceSource defaults to rpg-toolkit dice
	DiceSource roll.Source
}

// Validate checks the config
func (c *AdapterConfig) Validate() error {
	return nil
}

// NewAdapter creates a new rules engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := cfg.DiceSource
	if src == nil {
		src = NewDiceSource()
	}

	return &Adapter{dice: src}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// BeginAttributeCheck starts an attribute check in setup
func (a *Adapter) BeginAttributeCheck(
	_ context.Context,
	input *engine.BeginAttributeCheckInput,
) (*engine.CheckOutput, error) {
	if input == nil || input.Subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}
	if input.StatName == "" {
		return nil, errors.InvalidArgument("stat name is required")
	}

	sess, err := roll.NewAttributeCheck(input.Subject, input.StatName)
	if err != nil {
		return nil, err
	}
	return &engine.CheckOutput{Session: &sess}, nil
}

// BeginMoveCheck starts a move accuracy check. A choice pool without a
// choice returns the options instead of a session.
func (a *Adapter) BeginMoveCheck(
	_ context.Context,
	input *engine.BeginMoveCheckInput,
) (*engine.CheckOutput, error) {
	if input == nil || input.Subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}
	if input.Move == nil {
		return nil, errors.InvalidArgument("move is required")
	}

	sess, err := roll.NewMoveCheck(input.Subject, roll.MoveCheck{
		Name:     input.Move.Name,
		Type:     input.Move.Type,
		Accuracy: pool.Join(input.Move.Accuracy1, input.Move.Accuracy2),
		Damage:   pool.Join(input.Move.Damage1, input.Move.Damage2),
	}, input.Choice)
	if pool.IsChoiceRequired(err) {
		return &engine.CheckOutput{Options: pool.ChoiceOptions(err)}, nil
	}
	if err != nil {
		return nil, err
	}
	return &engine.CheckOutput{Session: &sess}, nil
}

// BeginInitiativeCheck starts an initiative check
func (a *Adapter) BeginInitiativeCheck(
	_ context.Context,
	input *engine.BeginInitiativeCheckInput,
) (*engine.CheckOutput, error) {
	if input == nil || input.Subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}

	sess := roll.NewInitiativeCheck(input.Subject)
	return &engine.CheckOutput{Session: &sess}, nil
}

// ToggleSkill adds or removes a skill on an attribute check
func (a *Adapter) ToggleSkill(_ context.Context, input *engine.ToggleSkillInput) (*engine.CheckOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	sess, err := input.Session.ToggleSkill(input.Subject, input.Skill)
	if err != nil {
		return nil, err
	}
	return &engine.CheckOutput{Session: &sess}, nil
}

// RollCheck settles a session, drawing dice unless faces are supplied
func (a *Adapter) RollCheck(_ context.Context, input *engine.RollCheckInput) (*engine.CheckOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	var (
		sess roll.Session
		err  error
	)
	if input.Faces != nil {
		sess, err = input.Session.Start()
		if err == nil {
			sess, err = sess.Commit(input.Faces)
		}
	} else {
		sess, err = input.Session.Roll(a.dice)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("Dice check settled",
		"mode", sess.Mode,
		"stat_name", sess.StatName,
		"dice_count", sess.DiceCount(),
		"results", sess.Results,
		"successes", sess.Successes,
		"total", sess.Total,
	)

	return &engine.CheckOutput{Session: &sess}, nil
}

// FollowWithDamage chains a damage check onto a move accuracy result
func (a *Adapter) FollowWithDamage(
	_ context.Context,
	input *engine.FollowWithDamageInput,
) (*engine.CheckOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if input.Subject == nil {
		return nil, errors.InvalidArgument("subject is required")
	}

	sess, err := input.Session.DamageFollowUp(input.Subject, input.Types, input.Choice)
	if pool.IsChoiceRequired(err) {
		return &engine.CheckOutput{Options: pool.ChoiceOptions(err)}, nil
	}
	if err != nil {
		return nil, err
	}
	return &engine.CheckOutput{Session: &sess}, nil
}

// LearnMove adds a move from the species learnset to a character
func (a *Adapter) LearnMove(_ context.Context, input *engine.LearnMoveInput) (*engine.LearnMoveOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Species == nil {
		return nil, errors.InvalidArgument("species is required")
	}

	learned, ok := input.Species.LearnedRank(input.MoveName)
	if !ok {
		return nil, errors.InvalidArgumentf("%s cannot learn %s", input.Species.Name, input.MoveName).
			WithMeta("move", input.MoveName)
	}

	added, err := moves.Learn(input.Character, moves.SpeciesLookup(input.Species), moves.Candidate{
		Name:    input.MoveName,
		Learned: learned,
	})
	if err != nil {
		return nil, err
	}

	return &engine.LearnMoveOutput{
		Added: added,
		Moves: input.Character.Moves,
		Limit: moves.MoveLimit(input.Character),
	}, nil
}

// ForgetMove removes a move from a character
func (a *Adapter) ForgetMove(_ context.Context, input *engine.ForgetMoveInput) (*engine.ForgetMoveOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	if err := moves.Forget(input.Character, input.MoveName); err != nil {
		return nil, err
	}

	return &engine.ForgetMoveOutput{Moves: input.Character.Moves}, nil
}
