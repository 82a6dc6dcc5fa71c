// Package engine exposes the Pokérole rules to orchestrators: dice checks
// and move learning. The rules themselves live in the subpackages; this
// interface lets callers be tested against a mock.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/pokerole-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/pokerole-api/internal/engine/stats"
)

// Subject is a sheet that can be rolled for: a creature or a trainer
type Subject interface {
	core.Entity
	stats.Sheet
}

// Engine provides game mechanics and rules calculations
type Engine interface {
	// Dice checks
	BeginAttributeCheck(ctx context.Context, input *BeginAttributeCheckInput) (*CheckOutput, error)
	BeginMoveCheck(ctx context.Context, input *BeginMoveCheckInput) (*CheckOutput, error)
	BeginInitiativeCheck(ctx context.Context, input *BeginInitiativeCheckInput) (*CheckOutput, error)
	ToggleSkill(ctx context.Context, input *ToggleSkillInput) (*CheckOutput, error)
	RollCheck(ctx context.Context, input *RollCheckInput) (*CheckOutput, error)
	FollowWithDamage(ctx context.Context, input *FollowWithDamageInput) (*CheckOutput, error)

	// Move learning
	LearnMove(ctx context.Context, input *LearnMoveInput) (*LearnMoveOutput, error)
	ForgetMove(ctx context.Context, input *ForgetMoveInput) (*ForgetMoveOutput, error)
}
