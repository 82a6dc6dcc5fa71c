package roll_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	engineroll "github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog/mock"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roll"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster"
	rostermock "github.com/KirkDiggler/pokerole-api/internal/orchestrators/roster/mock"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
	rollsession "github.com/KirkDiggler/pokerole-api/internal/repositories/roll_session"
	"github.com/KirkDiggler/pokerole-api/internal/testutils"
	"github.com/KirkDiggler/pokerole-api/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	roster    *rostermock.MockService
	catalog   *catalogmock.MockService
	sessions  *rollsession.InMemoryRepository
	clock     *clock.Fixed
	orch      roll.Service
	ctx       context.Context
	character *pokerole.Character
	subject   roll.Subject
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roster = rostermock.NewMockService(s.ctrl)
	s.catalog = catalogmock.NewMockService(s.ctrl)
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.sessions = rollsession.NewInMemory(s.clock)

	// Faces are always supplied by the tests
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceSource: engineroll.NewSequence()})
	s.Require().NoError(err)

	orch, err := roll.NewOrchestrator(&roll.Config{
		Engine:          eng,
		Roster:          s.roster,
		Catalog:         s.catalog,
		RollSessionRepo: s.sessions,
	})
	s.Require().NoError(err)
	s.orch = orch
	s.ctx = context.Background()

	s.character = builders.NewCharacterBuilder().
		WithSkills(pokerole.Skills{Fight: pokerole.FightSkills{Brawl: 1, Channel: 2}}).
		Build()
	s.subject = roll.Subject{CharacterID: s.character.ID}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectCharacter() {
	s.roster.EXPECT().
		GetCharacter(gomock.Any(), &roster.GetCharacterInput{
			UserID:      testutils.TestUserID,
			CharacterID: s.character.ID,
		}).
		Return(&roster.GetCharacterOutput{Character: s.character, Slot: pokerole.Party(0)}, nil)
}

func (s *OrchestratorTestSuite) expectMove(move *pokerole.MoveData) {
	s.catalog.EXPECT().
		GetMove(gomock.Any(), &catalog.GetMoveInput{Name: move.Name}).
		Return(&catalog.GetMoveOutput{Move: move}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := roll.NewOrchestrator(&roll.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttributeCheckWithSkill() {
	s.expectCharacter()
	out, err := s.orch.BeginAttributeCheck(s.ctx, &roll.BeginAttributeCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		StatName: "Strength",
	})
	s.Require().NoError(err)
	s.Equal(engineroll.StepSetup, out.Session.Step)
	s.Equal(2, out.Session.DiceCount())
	s.Equal(s.clock.At.Add(rollsession.DefaultTTL), out.ExpiresAt)

	s.expectCharacter()
	out, err = s.orch.ToggleSkill(s.ctx, &roll.ToggleSkillInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
		Skill:   "Brawl",
	})
	s.Require().NoError(err)
	s.Equal("Brawl", out.Session.SecondaryName)
	s.Equal(3, out.Session.DiceCount())

	out, err = s.orch.Roll(s.ctx, &roll.RollInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
		Faces:   []int{4, 6, 1},
	})
	s.Require().NoError(err)
	s.Equal(engineroll.StepResult, out.Session.Step)
	s.Equal(2, out.Session.Successes)
}

func (s *OrchestratorTestSuite) TestAttributeWithNoDiceIsNotRolled() {
	s.expectCharacter()
	out, err := s.orch.BeginAttributeCheck(s.ctx, &roll.BeginAttributeCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		StatName: "Clash",
	})
	s.Require().NoError(err)
	s.Equal(0, out.Session.DiceCount())

	_, err = s.orch.Roll(s.ctx, &roll.RollInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
	})
	s.Require().Error(err)
	s.True(errors.HasReason(err, engineroll.ReasonEmptyPool))

	stored, err := s.orch.GetSession(s.ctx, &roll.GetSessionInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
	})
	s.Require().NoError(err)
	s.Equal(engineroll.StepSetup, stored.Record.Session.Step)
}

func (s *OrchestratorTestSuite) TestMoveCheckWithDamage() {
	move := testutils.CreateTestMove()
	s.expectCharacter()
	s.expectMove(move)

	out, err := s.orch.BeginMoveCheck(s.ctx, &roll.BeginMoveCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		MoveName: move.Name,
	})
	s.Require().NoError(err)
	s.False(out.NeedsChoice())
	s.Equal("Dexterity", out.Session.StatName)
	s.Equal("Channel", out.Session.SecondaryName)
	s.Equal(4, out.Session.DiceCount())

	_, err = s.orch.Roll(s.ctx, &roll.RollInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
		Faces:   []int{5, 5, 2, 1},
	})
	s.Require().NoError(err)

	s.expectCharacter()
	out, err = s.orch.RequestDamageRoll(s.ctx, &roll.RequestDamageRollInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
	})
	s.Require().NoError(err)
	s.Equal(engineroll.DamageStatName, out.Session.StatName)
	s.Equal(2, out.Session.StatValue)
	// Base 2 plus the same-type bonus
	s.Equal(3, out.Session.SecondaryValue)
	s.Nil(out.Session.ActiveMove)
}

func (s *OrchestratorTestSuite) TestMoveCheckSuspendsForChoice() {
	move := testutils.CreateTestChoiceMove()
	s.expectCharacter()
	s.expectMove(move)

	out, err := s.orch.BeginMoveCheck(s.ctx, &roll.BeginMoveCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		MoveName: move.Name,
	})
	s.Require().NoError(err)
	s.True(out.NeedsChoice())
	s.Equal([]string{"Strength", "Dexterity"}, out.Options)
	s.Nil(out.Session)

	_, err = s.orch.Roll(s.ctx, &roll.RollInput{UserID: testutils.TestUserID, Subject: s.subject})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	s.expectCharacter()
	out, err = s.orch.ChooseAttribute(s.ctx, &roll.ChooseAttributeInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
		Choice:  "dexterity",
	})
	s.Require().NoError(err)
	s.False(out.NeedsChoice())
	s.Equal("Dexterity", out.Session.StatName)
	s.Equal("Brawl", out.Session.SecondaryName)
	s.Equal(3, out.Session.DiceCount())

	got, err := s.orch.GetSession(s.ctx, &roll.GetSessionInput{UserID: testutils.TestUserID, Subject: s.subject})
	s.Require().NoError(err)
	s.Nil(got.Record.Pending)
	s.Equal(move.Name, got.Record.Session.ActiveMove.Name)
}

func (s *OrchestratorTestSuite) TestChooseWithoutPendingChoice() {
	s.expectCharacter()
	_, err := s.orch.BeginAttributeCheck(s.ctx, &roll.BeginAttributeCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		StatName: "Insight",
	})
	s.Require().NoError(err)

	_, err = s.orch.ChooseAttribute(s.ctx, &roll.ChooseAttributeInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
		Choice:  "Strength",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDamageRequiresMoveResult() {
	s.expectCharacter()
	_, err := s.orch.BeginAttributeCheck(s.ctx, &roll.BeginAttributeCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		StatName: "Strength",
	})
	s.Require().NoError(err)

	s.expectCharacter()
	_, err = s.orch.RequestDamageRoll(s.ctx, &roll.RequestDamageRollInput{
		UserID:  testutils.TestUserID,
		Subject: s.subject,
	})
	s.Require().Error(err)
	s.True(errors.HasReason(err, engineroll.ReasonInvalidTransition))
}

func (s *OrchestratorTestSuite) TestTrainerInitiative() {
	trainer := pokerole.NewTrainer()
	trainer.Skills.Survival.Alert = 1
	s.roster.EXPECT().
		GetTrainer(gomock.Any(), &roster.GetTrainerInput{UserID: testutils.TestUserID}).
		Return(&roster.GetTrainerOutput{Trainer: trainer}, nil)

	trainerSubject := roll.Subject{}
	out, err := s.orch.BeginInitiative(s.ctx, &roll.BeginInitiativeInput{
		UserID:  testutils.TestUserID,
		Subject: trainerSubject,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Session.Modifier())

	out, err = s.orch.Roll(s.ctx, &roll.RollInput{
		UserID:  testutils.TestUserID,
		Subject: trainerSubject,
		Faces:   []int{5},
	})
	s.Require().NoError(err)
	s.Equal(8, out.Session.Total)

	got, err := s.orch.GetSession(s.ctx, &roll.GetSessionInput{UserID: testutils.TestUserID, Subject: trainerSubject})
	s.Require().NoError(err)
	s.Equal(rpgtoolkit.EntityTypeTrainer, got.Record.SubjectType)
	s.Equal(testutils.TestUserID, got.Record.SubjectID)
}

func (s *OrchestratorTestSuite) TestRollWithoutSession() {
	_, err := s.orch.Roll(s.ctx, &roll.RollInput{UserID: testutils.TestUserID, Subject: s.subject})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSessionExpires() {
	s.expectCharacter()
	_, err := s.orch.BeginAttributeCheck(s.ctx, &roll.BeginAttributeCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		StatName: "Dexterity",
	})
	s.Require().NoError(err)

	s.clock.Advance(rollsession.DefaultTTL + time.Second)

	_, err = s.orch.GetSession(s.ctx, &roll.GetSessionInput{UserID: testutils.TestUserID, Subject: s.subject})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCloseSession() {
	s.expectCharacter()
	_, err := s.orch.BeginAttributeCheck(s.ctx, &roll.BeginAttributeCheckInput{
		UserID:   testutils.TestUserID,
		Subject:  s.subject,
		StatName: "Special",
	})
	s.Require().NoError(err)

	out, err := s.orch.CloseSession(s.ctx, &roll.CloseSessionInput{UserID: testutils.TestUserID, Subject: s.subject})
	s.Require().NoError(err)
	s.True(out.Closed)

	out, err = s.orch.CloseSession(s.ctx, &roll.CloseSessionInput{UserID: testutils.TestUserID, Subject: s.subject})
	s.Require().NoError(err)
	s.False(out.Closed)
}

func (s *OrchestratorTestSuite) TestUnknownCharacter() {
	s.roster.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character mon-missing not found"))

	_, err := s.orch.BeginInitiative(s.ctx, &roll.BeginInitiativeInput{
		UserID:  testutils.TestUserID,
		Subject: roll.Subject{CharacterID: "mon-missing"},
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
