package moves_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokerole-api/internal/engine/moves"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/testutils"
	"github.com/KirkDiggler/pokerole-api/internal/testutils/builders"
)

func learnset() moves.Lookup {
	return moves.SpeciesLookup(&pokerole.Species{
		Moves: []pokerole.LearnsetEntry{
			{Learned: "Starter", Name: "Tackle"},
			{Learned: "Starter", Name: "Growl"},
			{Learned: "Beginner", Name: "Water Gun"},
			{Learned: "Beginner", Name: "Bubble"},
			{Learned: "Ace", Name: "Aqua Tail"},
			{Learned: "Pro", Name: "Hydro Pump"},
		},
	})
}

func TestLearnAppendsInOrder(t *testing.T) {
	c := builders.NewCharacterBuilder().WithInsight(2).Build()

	for _, m := range []string{"Tackle", "Growl", "Water Gun"} {
		added, err := moves.Learn(c, learnset(), moves.Candidate{Name: m, Learned: pokerole.RankStarter})
		require.NoError(t, err)
		assert.True(t, added)
	}

	assert.Equal(t, []string{"Tackle", "Growl", "Water Gun"}, c.Moves)
}

func TestLearnKnownMoveIsNoOp(t *testing.T) {
	c := builders.NewCharacterBuilder().WithInsight(0).WithMoves("Tackle", "Growl").Build()

	added, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Tackle", Learned: pokerole.RankStarter})
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"Tackle", "Growl"}, c.Moves)
}

func TestLearnMoveLimitReached(t *testing.T) {
	c := builders.NewCharacterBuilder().
		WithInsight(2).
		WithMoves("Tackle", "Growl", "Water Gun", "Bubble").
		Build()
	assert.Equal(t, 4, moves.MoveLimit(c))

	added, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Bite", Learned: pokerole.RankStarter})
	require.Error(t, err)
	assert.False(t, added)
	assert.True(t, moves.IsMoveLimitReached(err))
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.Len(t, c.Moves, 4)
}

func TestLearnHigherRankExclusivity(t *testing.T) {
	newChar := func() *pokerole.Character {
		return builders.NewCharacterBuilder().
			WithRank(pokerole.RankBeginner).
			WithInsight(3).
			WithMoves("Aqua Tail").
			Build()
	}

	t.Run("second higher-rank move is rejected", func(t *testing.T) {
		c := newChar()
		_, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Hydro Pump", Learned: pokerole.RankPro})
		require.Error(t, err)
		assert.True(t, moves.IsHigherRankMoveAlreadyPresent(err))
		assert.Equal(t, "Aqua Tail", errors.GetMeta(err)["existing_move"])
		assert.Equal(t, []string{"Aqua Tail"}, c.Moves)
	})

	t.Run("move at current rank is accepted", func(t *testing.T) {
		c := newChar()
		added, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Water Gun", Learned: pokerole.RankBeginner})
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("move below current rank is accepted", func(t *testing.T) {
		c := newChar()
		added, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Tackle", Learned: pokerole.RankStarter})
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, []string{"Aqua Tail", "Tackle"}, c.Moves)
	})

	t.Run("first higher-rank move is accepted", func(t *testing.T) {
		c := builders.NewCharacterBuilder().WithRank(pokerole.RankBeginner).WithMoves("Tackle").Build()
		added, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Hydro Pump", Learned: pokerole.RankPro})
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("moves missing from the learnset never count", func(t *testing.T) {
		c := builders.NewCharacterBuilder().WithRank(pokerole.RankBeginner).WithMoves("Sketch").Build()
		added, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Hydro Pump", Learned: pokerole.RankPro})
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("nil lookup never counts", func(t *testing.T) {
		c := newChar()
		added, err := moves.Learn(c, nil, moves.Candidate{Name: "Hydro Pump", Learned: pokerole.RankPro})
		require.NoError(t, err)
		assert.True(t, added)
	})
}

func TestLearnLimitCheckedBeforeRank(t *testing.T) {
	c := builders.NewCharacterBuilder().
		WithRank(pokerole.RankStarter).
		WithInsight(0).
		WithMoves("Aqua Tail", "Tackle").
		Build()

	_, err := moves.Learn(c, learnset(), moves.Candidate{Name: "Hydro Pump", Learned: pokerole.RankPro})
	assert.True(t, moves.IsMoveLimitReached(err))
	assert.False(t, moves.IsHigherRankMoveAlreadyPresent(err))
}

func TestLearnValidates(t *testing.T) {
	_, err := moves.Learn(nil, nil, moves.Candidate{Name: "Tackle"})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = moves.Learn(builders.NewCharacterBuilder().Build(), nil, moves.Candidate{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestForget(t *testing.T) {
	c := builders.NewCharacterBuilder().WithMoves("Tackle", "Growl", "Bubble").Build()
	original := c.Moves

	require.NoError(t, moves.Forget(c, "Growl"))
	assert.Equal(t, []string{"Tackle", "Bubble"}, c.Moves)
	assert.Equal(t, []string{"Tackle", "Growl", "Bubble"}, original)

	err := moves.Forget(c, "Growl")
	assert.True(t, errors.IsNotFound(err))

	assert.True(t, errors.IsInvalidArgument(moves.Forget(nil, "Tackle")))
}

func TestForgetIgnoresCase(t *testing.T) {
	c := builders.NewCharacterBuilder().WithMoves("Tackle", "Thunderbolt").Build()

	require.NoError(t, moves.Forget(c, " thunderbolt "))
	assert.Equal(t, []string{"Tackle"}, c.Moves)
}

func TestSpeciesLookupUsesFixture(t *testing.T) {
	lookup := moves.SpeciesLookup(testutils.CreateTestSpecies())

	r, ok := lookup("Hydro Pump")
	assert.True(t, ok)
	assert.Equal(t, pokerole.RankPro, r)

	_, ok = moves.SpeciesLookup(nil)("Tackle")
	assert.False(t, ok)
}

func TestLearnInvariantsProperty(t *testing.T) {
	species := testutils.CreateTestSpecies()
	lookup := moves.SpeciesLookup(species)

	rapid.Check(t, func(rt *rapid.T) {
		c := builders.NewCharacterBuilder().
			WithRank(rapid.SampledFrom(pokerole.AllRanks()).Draw(rt, "rank")).
			WithInsight(rapid.IntRange(0, 5).Draw(rt, "insight")).
			Build()

		attempts := rapid.SliceOf(rapid.SampledFrom(species.Moves)).Draw(rt, "attempts")
		for _, entry := range attempts {
			before := append([]string(nil), c.Moves...)
			_, err := moves.Learn(c, lookup, moves.Candidate{Name: entry.Name, Learned: pokerole.ParseRank(entry.Learned)})
			if err != nil && len(c.Moves) != len(before) {
				rt.Fatalf("rejected learn of %s changed moves %v -> %v", entry.Name, before, c.Moves)
			}
		}

		if len(c.Moves) > moves.MoveLimit(c) {
			rt.Fatalf("%d moves exceeds limit %d", len(c.Moves), moves.MoveLimit(c))
		}

		above := 0
		for _, m := range c.Moves {
			if r, ok := lookup(m); ok && r.Above(c.Rank) {
				above++
			}
		}
		if above > 1 {
			rt.Fatalf("%d moves above rank %s: %v", above, c.Rank, c.Moves)
		}
	})
}
