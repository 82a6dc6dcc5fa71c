package roll_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/pokerole-api/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/testutils/builders"
)

type SessionTestSuite struct {
	suite.Suite
	character *pokerole.Character
}

func (s *SessionTestSuite) SetupTest() {
	s.character = builders.NewCharacterBuilder().
		WithTypes("Water", "Ice").
		WithStrength(3).
		WithDexterity(3).
		WithSpecial(4).
		WithSkills(pokerole.Skills{
			Fight:    pokerole.FightSkills{Brawl: 1, Channel: 2},
			Survival: pokerole.SurvivalSkills{Alert: 2},
		}).
		Build()
}

func (s *SessionTestSuite) TestAttributeCheckWithSkill() {
	sess, err := roll.NewAttributeCheck(s.character, "Strength")
	s.Require().NoError(err)
	s.Equal(roll.StepSetup, sess.Step)
	s.Equal(3, sess.DiceCount())

	sess, err = sess.ToggleSkill(s.character, "Brawl")
	s.Require().NoError(err)
	s.Equal("Brawl", sess.SecondaryName)
	s.Equal(4, sess.DiceCount())

	result, err := sess.Roll(roll.NewSequence(1, 4, 5, 6))
	s.Require().NoError(err)
	s.Equal(roll.StepResult, result.Step)
	s.Equal([]int{1, 4, 5, 6}, result.Results)
	s.Equal(3, result.Successes)

	// the receiver is untouched
	s.Equal(roll.StepSetup, sess.Step)
	s.Empty(sess.Results)
}

func (s *SessionTestSuite) TestToggleSkill() {
	sess, err := roll.NewAttributeCheck(s.character, "Dexterity")
	s.Require().NoError(err)

	s.Run("selecting a second skill replaces the first", func() {
		next, err := sess.ToggleSkill(s.character, "Brawl")
		s.Require().NoError(err)
		next, err = next.ToggleSkill(s.character, "Channel")
		s.Require().NoError(err)
		s.Equal("Channel", next.SecondaryName)
		s.Equal(2, next.SecondaryValue)
	})

	s.Run("selecting the same skill deselects it", func() {
		next, err := sess.ToggleSkill(s.character, "Alert")
		s.Require().NoError(err)
		next, err = next.ToggleSkill(s.character, "alert")
		s.Require().NoError(err)
		s.Empty(next.SecondaryName)
		s.Equal(0, next.SecondaryValue)
	})

	s.Run("attributes are not skills", func() {
		_, err := sess.ToggleSkill(s.character, "Strength")
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not after setup", func() {
		rolling, err := sess.Start()
		s.Require().NoError(err)
		_, err = rolling.ToggleSkill(s.character, "Brawl")
		s.True(errors.HasReason(err, roll.ReasonInvalidTransition))
	})
}

func (s *SessionTestSuite) TestZeroAttributeRollsSkillDice() {
	c := builders.NewCharacterBuilder().
		WithStrength(0).
		WithSkills(pokerole.Skills{Fight: pokerole.FightSkills{Brawl: 3}}).
		Build()
	s.Require().NoError(c.Validate())

	sess, err := roll.NewAttributeCheck(c, "Strength")
	s.Require().NoError(err)
	s.Equal(0, sess.DiceCount())

	sess, err = sess.ToggleSkill(c, "Brawl")
	s.Require().NoError(err)
	s.Equal(3, sess.DiceCount())

	result, err := sess.Roll(roll.NewSequence(2, 4, 6))
	s.Require().NoError(err)
	s.Equal([]int{2, 4, 6}, result.Results)
	s.Equal(2, result.Successes)
}

func (s *SessionTestSuite) TestEmptyPoolCannotStart() {
	s.Run("attribute without a skill", func() {
		sess, err := roll.NewAttributeCheck(s.character, "Clever")
		s.Require().NoError(err)

		_, err = sess.Start()
		s.True(errors.IsFailedPrecondition(err))
		s.True(errors.HasReason(err, roll.ReasonEmptyPool))

		_, err = sess.Roll(roll.NewSequence())
		s.True(errors.HasReason(err, roll.ReasonEmptyPool))
	})

	s.Run("unknown stat is rejected at setup", func() {
		_, err := roll.NewAttributeCheck(s.character, "Strenght")
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("move with no accuracy pool", func() {
		sess, err := roll.NewMoveCheck(s.character, roll.MoveCheck{Name: "Splash", Type: "Water"}, "")
		s.Require().NoError(err)
		s.Equal(0, sess.DiceCount())

		result, err := sess.Roll(roll.NewSequence())
		s.True(errors.HasReason(err, roll.ReasonEmptyPool))
		s.Equal(roll.StepSetup, result.Step)
		s.Empty(result.Results)
	})

	s.Run("damage whose terms resolve to nothing", func() {
		move := roll.MoveCheck{
			Name:     "Mystery Beam",
			Type:     "Psychic",
			Accuracy: "Strength",
			Damage:   "Clever",
		}
		sess, err := roll.NewMoveCheck(s.character, move, "")
		s.Require().NoError(err)

		accuracy, err := sess.Roll(roll.NewSequence(1, 1, 1))
		s.Require().NoError(err)

		damage, err := accuracy.DamageFollowUp(s.character, s.character.Types(), "")
		s.Require().NoError(err)
		s.Equal(0, damage.DiceCount())

		_, err = damage.Roll(roll.NewSequence())
		s.True(errors.HasReason(err, roll.ReasonEmptyPool))
	})
}

func (s *SessionTestSuite) TestInitiative() {
	c := builders.NewCharacterBuilder().
		WithDexterity(2).
		WithSkills(pokerole.Skills{Survival: pokerole.SurvivalSkills{Alert: 1}}).
		Build()

	sess := roll.NewInitiativeCheck(c)
	s.Equal(1, sess.DiceCount())
	s.Equal(3, sess.Modifier())
	s.Equal(roll.InitiativeLabel, sess.SecondaryName)

	_, err := sess.ToggleSkill(c, "Brawl")
	s.True(errors.IsFailedPrecondition(err))

	result, err := sess.Roll(roll.NewSequence(5))
	s.Require().NoError(err)
	s.Equal(8, result.Total)
	s.Equal(0, result.Successes)
	s.Equal([]int{5}, result.Results)
}

func (s *SessionTestSuite) TestMoveCheckAndDamage() {
	move := roll.MoveCheck{
		Name:     "Ice Beam",
		Type:     "Water",
		Accuracy: "Special + Channel",
		Damage:   "Special + 2",
	}

	sess, err := roll.NewMoveCheck(s.character, move, "")
	s.Require().NoError(err)
	s.Equal(roll.ModeMove, sess.Mode)
	s.Equal(6, sess.DiceCount())
	s.Require().NotNil(sess.ActiveMove)
	s.False(sess.CanFollowWithDamage())

	_, err = sess.DamageFollowUp(s.character, s.character.Types(), "")
	s.True(errors.HasReason(err, roll.ReasonInvalidTransition))

	accuracy, err := sess.Roll(roll.NewSequence(6, 5, 4, 4, 5, 1))
	s.Require().NoError(err)
	s.Equal(5, accuracy.Successes)
	s.True(accuracy.CanFollowWithDamage())

	damage, err := accuracy.DamageFollowUp(s.character, s.character.Types(), "")
	s.Require().NoError(err)
	s.Equal(roll.StepSetup, damage.Step)
	s.Equal(roll.DamageStatName, damage.StatName)
	s.Equal(4, damage.StatValue)
	s.Equal(5, damage.SecondaryValue)
	s.Equal("Base(2) STAB(+1) Crit(+2)", damage.SecondaryName)
	s.Nil(damage.ActiveMove)
	s.Equal(9, damage.DiceCount())

	rolled, err := damage.Roll(roll.NewSequence(1, 1, 1, 1, 1, 1, 1, 1, 1))
	s.Require().NoError(err)
	s.False(rolled.CanFollowWithDamage())
}

func (s *SessionTestSuite) TestMoveWithoutDamage() {
	sess, err := roll.NewMoveCheck(s.character, roll.MoveCheck{
		Name:     "Growl",
		Type:     "Normal",
		Accuracy: "Dexterity",
	}, "")
	s.Require().NoError(err)
	s.Nil(sess.ActiveMove)

	result, err := sess.Roll(roll.NewSequence(4, 4, 4))
	s.Require().NoError(err)

	_, err = result.DamageFollowUp(s.character, s.character.Types(), "")
	s.True(errors.HasReason(err, roll.ReasonNoDamagePool))
}

func (s *SessionTestSuite) TestMoveChoiceSuspends() {
	move := roll.MoveCheck{
		Name:     "Aqua Tail",
		Type:     "Water",
		Accuracy: "Strength/Dexterity + Brawl",
		Damage:   "Strength/Special",
	}

	_, err := roll.NewMoveCheck(s.character, move, "")
	s.True(pool.IsChoiceRequired(err))
	s.Equal([]string{"Strength", "Dexterity"}, pool.ChoiceOptions(err))

	sess, err := roll.NewMoveCheck(s.character, move, "Dexterity")
	s.Require().NoError(err)
	s.Equal("Dexterity", sess.StatName)
	s.Equal(4, sess.DiceCount())

	result, err := sess.Roll(roll.NewSequence(1, 2, 3, 4))
	s.Require().NoError(err)

	_, err = result.DamageFollowUp(s.character, s.character.Types(), "")
	s.True(pool.IsChoiceRequired(err))

	damage, err := result.DamageFollowUp(s.character, s.character.Types(), "Special")
	s.Require().NoError(err)
	s.Equal(4, damage.StatValue)
	s.Equal(1, damage.SecondaryValue)
	s.Equal("STAB(+1)", damage.SecondaryName)
}

func (s *SessionTestSuite) TestInvalidTransitions() {
	sess, err := roll.NewAttributeCheck(s.character, "Strength")
	s.Require().NoError(err)

	_, err = sess.Commit([]int{1, 2, 3})
	s.True(errors.HasReason(err, roll.ReasonInvalidTransition))

	rolling, err := sess.Start()
	s.Require().NoError(err)

	_, err = rolling.Start()
	s.True(errors.IsFailedPrecondition(err))

	_, err = rolling.Commit([]int{1, 2})
	s.True(errors.IsInvalidArgument(err))

	_, err = rolling.Commit([]int{1, 2, 7})
	s.True(errors.IsInvalidArgument(err))

	done, err := rolling.Commit([]int{4, 5, 6})
	s.Require().NoError(err)
	s.Equal(3, done.Successes)

	_, err = done.Roll(roll.NewSequence(1, 1, 1))
	s.True(errors.IsFailedPrecondition(err))

	_, err = roll.Session{}.Start()
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionTestSuite) TestDescribe() {
	sess := roll.NewInitiativeCheck(s.character)
	s.Equal("initiative: 1 dice (Initiative + Dexterity + Alert)", sess.Describe())

	result, err := sess.Roll(roll.NewSequence(5))
	s.Require().NoError(err)
	s.Equal("initiative: [5] + 5 = 10", result.Describe())
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func TestCommittedResultsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := builders.NewCharacterBuilder().
			WithStrength(rapid.IntRange(0, 8).Draw(rt, "strength")).
			WithSkills(pokerole.Skills{
				Fight: pokerole.FightSkills{Brawl: rapid.IntRange(0, 5).Draw(rt, "brawl")},
			}).
			Build()

		sess, err := roll.NewAttributeCheck(c, "Strength")
		if err != nil {
			rt.Fatalf("new check: %v", err)
		}
		if rapid.Bool().Draw(rt, "with_skill") {
			if sess, err = sess.ToggleSkill(c, "Brawl"); err != nil {
				rt.Fatalf("toggle: %v", err)
			}
		}

		result, err := sess.Roll(roll.NewSeededSource(rapid.Uint64().Draw(rt, "seed")))
		if sess.DiceCount() == 0 {
			if !errors.HasReason(err, roll.ReasonEmptyPool) {
				rt.Fatalf("empty pool rolled: %v", err)
			}
			return
		}
		if err != nil {
			rt.Fatalf("roll: %v", err)
		}

		want := c.Attributes.Strength.Current + sess.SecondaryValue
		if len(result.Results) != want {
			rt.Fatalf("rolled %d dice, want %d", len(result.Results), want)
		}
		successes := 0
		for _, f := range result.Results {
			if f < 1 || f > 6 {
				rt.Fatalf("face %d out of range", f)
			}
			if f > 3 {
				successes++
			}
		}
		if successes != result.Successes {
			rt.Fatalf("successes = %d, counted %d", result.Successes, successes)
		}
	})
}

func TestInitiativeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		face := rapid.IntRange(1, 6).Draw(rt, "face")
		dex := rapid.IntRange(0, 6).Draw(rt, "dex")
		alert := rapid.IntRange(0, 5).Draw(rt, "alert")

		c := builders.NewCharacterBuilder().
			WithDexterity(dex).
			WithSkills(pokerole.Skills{Survival: pokerole.SurvivalSkills{Alert: alert}}).
			Build()

		result, err := roll.NewInitiativeCheck(c).Roll(roll.NewSequence(face))
		if err != nil {
			rt.Fatalf("roll: %v", err)
		}
		if len(result.Results) != 1 || result.Total != face+dex+alert {
			rt.Fatalf("initiative %v total %d, want %d", result.Results, result.Total, face+dex+alert)
		}
	})
}
