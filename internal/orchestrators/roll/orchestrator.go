// Package roll implements the roll orchestrator. It walks a subject's dice
// check through setup, rolling and result, keeping the check between
// commands in the roll session store.
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/KirkDiggler/pokerole-api/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pokerole-api/internal/engine"
	engineroll "github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster"
	rollsession "github.com/KirkDiggler/pokerole-api/internal/repositories/roll_session"
)

// Service defines the interface for dice check operations
type Service interface {
	// Starting a check replaces whatever check the subject had open
	BeginAttributeCheck(ctx context.Context, input *BeginAttributeCheckInput) (*CheckOutput, error)
	BeginMoveCheck(ctx context.Context, input *BeginMoveCheckInput) (*CheckOutput, error)
	BeginInitiative(ctx context.Context, input *BeginInitiativeInput) (*CheckOutput, error)

	ToggleSkill(ctx context.Context, input *ToggleSkillInput) (*CheckOutput, error)
	ChooseAttribute(ctx context.Context, input *ChooseAttributeInput) (*CheckOutput, error)
	Roll(ctx context.Context, input *RollInput) (*CheckOutput, error)
	RequestDamageRoll(ctx context.Context, input *RequestDamageRollInput) (*CheckOutput, error)

	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	Engine          engine.Engine
	Roster          roster.Service
	Catalog         catalog.Service
	RollSessionRepo rollsession.Repository
	// SessionTTL defaults to rollsession.DefaultTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.RollSessionRepo == nil {
		vb.RequiredField("RollSessionRepo")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine   engine.Engine
	roster   roster.Service
	catalog  catalog.Service
	sessions rollsession.Repository
	ttl      time.Duration
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = rollsession.DefaultTTL
	}

	return &orchestrator{
		engine:   cfg.Engine,
		roster:   cfg.Roster,
		catalog:  cfg.Catalog,
		sessions: cfg.RollSessionRepo,
		ttl:      ttl,
	}, nil
}

// subject is a loaded sheet ready to hand to the engine
type subject struct {
	entity engine.Subject
	types  []string
}

func keyOf(userID string, s Subject) rollsession.Key {
	if s.IsTrainer() {
		return rollsession.Key{UserID: userID, SubjectType: rpgtoolkit.EntityTypeTrainer, SubjectID: userID}
	}
	return rollsession.Key{UserID: userID, SubjectType: rpgtoolkit.EntityTypeCharacter, SubjectID: s.CharacterID}
}

func (o *orchestrator) loadSubject(ctx context.Context, userID string, s Subject) (*subject, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	if s.IsTrainer() {
		out, err := o.roster.GetTrainer(ctx, &roster.GetTrainerInput{UserID: userID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load trainer")
		}
		return &subject{entity: rpgtoolkit.WrapTrainer(userID, out.Trainer)}, nil
	}

	out, err := o.roster.GetCharacter(ctx, &roster.GetCharacterInput{UserID: userID, CharacterID: s.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", s.CharacterID)
	}
	return &subject{
		entity: rpgtoolkit.WrapCharacter(out.Character),
		types:  out.Character.Types(),
	}, nil
}

// open loads the stored record for a subject
func (o *orchestrator) open(ctx context.Context, userID string, s Subject) (*rollsession.Record, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.sessions.Get(ctx, rollsession.GetInput{Key: keyOf(userID, s)})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no check in progress").WithMeta("subject", keyOf(userID, s).String())
		}
		return nil, errors.Wrap(err, "failed to load roll session")
	}
	return out.Record, nil
}

// store saves rec and reports it as a CheckOutput
func (o *orchestrator) store(ctx context.Context, rec *rollsession.Record) (*CheckOutput, error) {
	saved, err := o.sessions.Save(ctx, rollsession.SaveInput{Record: rec, TTL: o.ttl})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save roll session")
	}

	out := &CheckOutput{
		Session:   saved.Record.Session,
		ExpiresAt: saved.Record.ExpiresAt,
	}
	if saved.Record.Pending != nil {
		out.Options = saved.Record.Pending.Options
	}
	return out, nil
}

// begin stores a fresh check for a subject, replacing any earlier one
func (o *orchestrator) begin(
	ctx context.Context,
	userID string,
	s Subject,
	check *engine.CheckOutput,
	pending *rollsession.PendingChoice,
) (*CheckOutput, error) {
	rec := &rollsession.Record{Key: keyOf(userID, s)}
	if check.NeedsChoice() {
		pending.Options = check.Options
		rec.Pending = pending
	} else {
		rec.Session = check.Session
	}
	return o.store(ctx, rec)
}

func (o *orchestrator) BeginAttributeCheck(
	ctx context.Context,
	input *BeginAttributeCheckInput,
) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.StatName == "" {
		return nil, errors.InvalidArgument("stat name is required")
	}

	sub, err := o.loadSubject(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}

	check, err := o.engine.BeginAttributeCheck(ctx, &engine.BeginAttributeCheckInput{
		Subject:  sub.entity,
		StatName: input.StatName,
	})
	if err != nil {
		return nil, err
	}

	return o.begin(ctx, input.UserID, input.Subject, check, nil)
}

func (o *orchestrator) BeginMoveCheck(ctx context.Context, input *BeginMoveCheckInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MoveName == "" {
		return nil, errors.InvalidArgument("move name is required")
	}

	sub, err := o.loadSubject(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}

	move, err := o.catalog.GetMove(ctx, &catalog.GetMoveInput{Name: input.MoveName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get move %s", input.MoveName)
	}

	check, err := o.engine.BeginMoveCheck(ctx, &engine.BeginMoveCheckInput{
		Subject: sub.entity,
		Move:    move.Move,
		Choice:  input.Choice,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Move check started",
		"user_id", input.UserID,
		"subject_id", sub.entity.GetID(),
		"move", move.Move.Name,
		"needs_choice", check.NeedsChoice(),
	)

	return o.begin(ctx, input.UserID, input.Subject, check, &rollsession.PendingChoice{
		Stage: rollsession.StageAccuracy,
		Move:  move.Move,
	})
}

func (o *orchestrator) BeginInitiative(ctx context.Context, input *BeginInitiativeInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sub, err := o.loadSubject(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}

	check, err := o.engine.BeginInitiativeCheck(ctx, &engine.BeginInitiativeCheckInput{Subject: sub.entity})
	if err != nil {
		return nil, err
	}

	return o.begin(ctx, input.UserID, input.Subject, check, nil)
}

func (o *orchestrator) ToggleSkill(ctx context.Context, input *ToggleSkillInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	rec, err := o.open(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}
	if err := requireSession(rec); err != nil {
		return nil, err
	}

	sub, err := o.loadSubject(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}

	check, err := o.engine.ToggleSkill(ctx, &engine.ToggleSkillInput{
		Subject: sub.entity,
		Session: rec.Session,
		Skill:   input.Skill,
	})
	if err != nil {
		return nil, err
	}

	rec.Session = check.Session
	return o.store(ctx, rec)
}

func (o *orchestrator) ChooseAttribute(ctx context.Context, input *ChooseAttributeInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Choice == "" {
		return nil, errors.InvalidArgument("choice is required")
	}

	rec, err := o.open(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}
	if rec.Pending == nil {
		return nil, errors.FailedPrecondition("no choice is outstanding")
	}

	sub, err := o.loadSubject(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}

	var check *engine.CheckOutput
	switch rec.Pending.Stage {
	case rollsession.StageAccuracy:
		check, err = o.engine.BeginMoveCheck(ctx, &engine.BeginMoveCheckInput{
			Subject: sub.entity,
			Move:    rec.Pending.Move,
			Choice:  input.Choice,
		})
	case rollsession.StageDamage:
		check, err = o.engine.FollowWithDamage(ctx, &engine.FollowWithDamageInput{
			Subject: sub.entity,
			Types:   sub.types,
			Session: rec.Session,
			Choice:  input.Choice,
		})
	default:
		return nil, errors.DataLossf("unknown pending stage %q", rec.Pending.Stage)
	}
	if err != nil {
		return nil, err
	}
	if check.NeedsChoice() {
		return nil, errors.InvalidArgumentf("a choice among %v is still required", check.Options)
	}

	rec.Session = check.Session
	rec.Pending = nil
	return o.store(ctx, rec)
}

func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec, err := o.open(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}
	if err := requireSession(rec); err != nil {
		return nil, err
	}

	check, err := o.engine.RollCheck(ctx, &engine.RollCheckInput{
		Session: rec.Session,
		Faces:   input.Faces,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Check rolled",
		"user_id", input.UserID,
		"subject_id", rec.SubjectID,
		"summary", check.Session.Describe(),
	)

	rec.Session = check.Session
	return o.store(ctx, rec)
}

func (o *orchestrator) RequestDamageRoll(
	ctx context.Context,
	input *RequestDamageRollInput,
) (*CheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec, err := o.open(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}
	if err := requireSession(rec); err != nil {
		return nil, err
	}

	sub, err := o.loadSubject(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}

	check, err := o.engine.FollowWithDamage(ctx, &engine.FollowWithDamageInput{
		Subject: sub.entity,
		Types:   sub.types,
		Session: rec.Session,
		Choice:  input.Choice,
	})
	if err != nil {
		return nil, err
	}

	if check.NeedsChoice() {
		rec.Pending = &rollsession.PendingChoice{
			Stage:   rollsession.StageDamage,
			Options: check.Options,
		}
	} else {
		rec.Session = check.Session
	}
	return o.store(ctx, rec)
}

func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rec, err := o.open(ctx, input.UserID, input.Subject)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Record: rec}, nil
}

func (o *orchestrator) CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.sessions.Delete(ctx, rollsession.DeleteInput{Key: keyOf(input.UserID, input.Subject)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to close roll session")
	}
	return &CloseSessionOutput{Closed: out.Deleted}, nil
}

// requireSession rejects a record that is still waiting on a choice
func requireSession(rec *rollsession.Record) error {
	if rec.Pending != nil {
		return errors.FailedPreconditionf("waiting on a choice among %v", rec.Pending.Options).
			WithReason(engineroll.ReasonInvalidTransition)
	}
	if rec.Session == nil {
		return errors.DataLoss("roll session has no check")
	}
	return nil
}
