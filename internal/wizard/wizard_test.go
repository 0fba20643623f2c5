package wizard_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-charsheet/internal/engine/mock"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/validation"
	"github.com/KirkDiggler/rpg-charsheet/internal/wizard"
	wizardmock "github.com/KirkDiggler/rpg-charsheet/internal/wizard/mock"
)

// fixedRoller returns the same die face every time
type fixedRoller struct {
	face int
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	return r.face, nil
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, nil
}

type WizardTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockGateway *wizardmock.MockGateway
	engine      engine.Engine
	ctx         context.Context
	wizard      *wizard.Wizard
}

func TestWizardSuite(t *testing.T) {
	suite.Run(t, new(WizardTestSuite))
}

func (s *WizardTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGateway = wizardmock.NewMockGateway(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{DiceRoller: &fixedRoller{face: 5}})
	s.Require().NoError(err)
	s.engine = eng

	w, err := wizard.NewWizard(s.config())
	s.Require().NoError(err)
	s.wizard = w
}

func (s *WizardTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WizardTestSuite) config() *wizard.Config {
	return &wizard.Config{
		Gateway: s.mockGateway,
		Engine:  s.engine,
	}
}

// fillConan enters the reference character through ChangeField
func (s *WizardTestSuite) fillConan(w *wizard.Wizard) {
	s.Require().NoError(w.ChangeField(validation.FieldCharacterName, "Conan"))
	s.Require().NoError(w.ChangeField(validation.FieldRace, "Human"))
	s.Require().NoError(w.ChangeField(validation.FieldClass, "Fighter"))
	s.Require().NoError(w.ChangeField(validation.FieldLevel, 10))

	scores := map[string]int{
		dnd5e.AbilityStrength:     18,
		dnd5e.AbilityDexterity:    14,
		dnd5e.AbilityConstitution: 16,
		dnd5e.AbilityIntelligence: 10,
		dnd5e.AbilityWisdom:       12,
		dnd5e.AbilityCharisma:     8,
	}
	for ability, score := range scores {
		s.Require().NoError(w.ChangeField(validation.AbilityScoreField(ability), score))
	}
}

func (s *WizardTestSuite) TestConfigValidation() {
	_, err := wizard.NewWizard(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = wizard.NewWizard(&wizard.Config{Engine: s.engine})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "Gateway")

	cfg := s.config()
	s.Require().NoError(cfg.Validate())
	s.Assert().Len(cfg.Steps, 2)
	s.Assert().NotNil(cfg.Logger)
}

func (s *WizardTestSuite) TestInitialState() {
	state := s.wizard.State()

	s.Assert().Equal(0, state.CurrentStep)
	s.Assert().Equal(1, *state.FormData.Level)
	s.Assert().Equal(10, *state.FormData.AbilityScores.Strength)
	s.Assert().Empty(state.FieldErrors)
	s.Assert().False(state.Submitting)
	s.Assert().Empty(state.SubmitError)
	s.Assert().Equal(wizard.StepBasicInfo, s.wizard.CurrentStep().ID)
	s.Assert().Empty(s.wizard.CharacterID())
}

func (s *WizardTestSuite) TestStateIsACopy() {
	state := s.wizard.State()
	state.FormData.CharacterName = "Mutated"
	*state.FormData.Level = 20

	fresh := s.wizard.State()
	s.Assert().Empty(fresh.FormData.CharacterName)
	s.Assert().Equal(1, *fresh.FormData.Level)
}

func (s *WizardTestSuite) TestAdvanceWithEmptyNameStays() {
	s.Require().NoError(s.wizard.ChangeField(validation.FieldRace, "Human"))
	s.Require().NoError(s.wizard.ChangeField(validation.FieldClass, "Fighter"))

	s.Assert().False(s.wizard.Advance())

	state := s.wizard.State()
	s.Assert().Equal(0, state.CurrentStep)
	s.Assert().Len(state.FieldErrors, 1)
	s.Assert().Equal("Character name is required", state.FieldErrors[validation.FieldCharacterName])
}

func (s *WizardTestSuite) TestAdvanceValidatesEntireForm() {
	s.fillConan(s.wizard)
	s.Require().NoError(s.wizard.ChangeField(validation.AbilityScoreField(dnd5e.AbilityWisdom), 31))

	// the bad score belongs to the second step but still blocks the first
	s.Assert().False(s.wizard.Advance())

	state := s.wizard.State()
	s.Assert().Equal(0, state.CurrentStep)
	s.Assert().Equal([]string{"abilityScores.wisdom"}, state.FieldErrors.Fields())
}

func (s *WizardTestSuite) TestAdvanceAndRetreatAreBounded() {
	s.fillConan(s.wizard)

	s.Assert().True(s.wizard.Advance())
	s.Assert().Equal(1, s.wizard.State().CurrentStep)
	s.Assert().True(s.wizard.IsLastStep())

	s.Assert().True(s.wizard.Advance())
	s.Assert().Equal(1, s.wizard.State().CurrentStep)

	s.wizard.Retreat()
	s.wizard.Retreat()
	s.Assert().Equal(0, s.wizard.State().CurrentStep)
}

func (s *WizardTestSuite) TestRetreatDoesNotValidate() {
	s.fillConan(s.wizard)
	s.Require().True(s.wizard.Advance())

	s.Require().NoError(s.wizard.ChangeField(validation.FieldCharacterName, ""))
	s.wizard.Retreat()

	state := s.wizard.State()
	s.Assert().Equal(0, state.CurrentStep)
	s.Assert().Empty(state.FieldErrors)
}

func (s *WizardTestSuite) TestChangeFieldClearsOnlyThatError() {
	s.Require().NoError(s.wizard.ChangeField(validation.FieldLevel, 0))
	s.Require().False(s.wizard.Advance())
	s.Require().Len(s.wizard.State().FieldErrors, 4)

	s.Require().NoError(s.wizard.ChangeField(validation.FieldCharacterName, "Conan"))

	state := s.wizard.State()
	s.Assert().False(state.FieldErrors.Has(validation.FieldCharacterName))
	s.Assert().True(state.FieldErrors.Has(validation.FieldRace))
	s.Assert().True(state.FieldErrors.Has(validation.FieldClass))
	s.Assert().Contains(state.FieldErrors[validation.FieldLevel], "between 1 and 20")
}

func (s *WizardTestSuite) TestChangeFieldValues() {
	s.Require().NoError(s.wizard.ChangeField(validation.FieldLevel, dnd5e.IntPtr(7)))
	s.Require().NoError(s.wizard.ChangeField(validation.AbilityScoreField(dnd5e.AbilityCharisma), nil))
	s.Require().NoError(s.wizard.ChangeField(validation.FieldAlignment, "Chaotic Neutral"))

	form := s.wizard.State().FormData
	s.Assert().Equal(7, *form.Level)
	s.Assert().Nil(form.AbilityScores.Charisma)
	s.Assert().Equal("Chaotic Neutral", form.Alignment)
}

func (s *WizardTestSuite) TestChangeFieldRejectsBadInput() {
	testCases := []struct {
		name  string
		field string
		value interface{}
	}{
		{"unknown field", "favoriteColor", "blue"},
		{"unknown ability", "abilityScores.luck", 10},
		{"string for level", validation.FieldLevel, "ten"},
		{"int for name", validation.FieldCharacterName, 42},
		{"float for score", validation.AbilityScoreField(dnd5e.AbilityStrength), 12.5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := s.wizard.State()
			err := s.wizard.ChangeField(tc.field, tc.value)
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Equal(before, s.wizard.State())
		})
	}
}

func (s *WizardTestSuite) TestSubmitInvalidFormDoesNotCallGateway() {
	_, err := s.wizard.Submit(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	state := s.wizard.State()
	s.Assert().True(state.FieldErrors.Has(validation.FieldCharacterName))
	s.Assert().False(state.Submitting)
	s.Assert().Empty(state.SubmitError)
}

func (s *WizardTestSuite) TestSubmitCreatesDerivedCharacter() {
	s.fillConan(s.wizard)

	var sent *dnd5e.Character
	s.mockGateway.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterapi.CreateCharacterInput) (*characterapi.CreateCharacterOutput, error) {
			sent = input.Character
			stored := *input.Character
			stored.ID = "char-1"
			return &characterapi.CreateCharacterOutput{Character: &stored}, nil
		})

	saved, err := s.wizard.Submit(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(sent)

	s.Assert().Equal("char-1", saved.ID)
	s.Assert().Equal("char-1", s.wizard.CharacterID())

	s.Assert().Equal(4, sent.AbilityScores.Strength.Modifier)
	s.Assert().Equal(3, sent.AbilityScores.Constitution.Modifier)
	s.Assert().Equal(-1, sent.AbilityScores.Charisma.Modifier)
	s.Assert().Equal(4, sent.ProficiencyBonus)
	s.Assert().Equal(13, sent.HitPoints.Maximum)
	s.Assert().Equal(13, sent.HitPoints.Current)
	s.Assert().Equal(0, sent.HitPoints.Temporary)
	s.Assert().Equal(12, sent.ArmorClass)
	s.Assert().Equal(2, sent.Initiative)
	s.Assert().Equal(11, sent.PassivePerception)
	s.Assert().Equal(30, sent.Speed.Walk)

	for _, def := range dnd5e.SkillDefinitions {
		skill := sent.Skills.Get(def.Name)
		s.Require().NotNil(skill, def.Name)
		s.Assert().False(skill.Proficient, def.Name)
		s.Assert().False(skill.Expertise, def.Name)
		s.Assert().Equal(sent.AbilityScores.Get(def.Ability).Modifier, skill.Modifier, def.Name)
	}

	state := s.wizard.State()
	s.Assert().False(state.Submitting)
	s.Assert().Empty(state.SubmitError)
}

func (s *WizardTestSuite) TestSecondSubmitUpdates() {
	s.fillConan(s.wizard)

	s.mockGateway.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		Return(&characterapi.CreateCharacterOutput{Character: &dnd5e.Character{ID: "char-1"}}, nil)
	s.mockGateway.EXPECT().
		UpdateCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterapi.UpdateCharacterInput) (*characterapi.UpdateCharacterOutput, error) {
			s.Assert().Equal("char-1", input.ID)
			s.Assert().Equal("char-1", input.Character.ID)
			return &characterapi.UpdateCharacterOutput{Character: input.Character}, nil
		})

	_, err := s.wizard.Submit(s.ctx)
	s.Require().NoError(err)
	_, err = s.wizard.Submit(s.ctx)
	s.Require().NoError(err)
}

func (s *WizardTestSuite) TestSubmitErrorMessages() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "conflict uses the server message",
			err:      errors.AlreadyExists("character name already exists"),
			expected: "character name already exists",
		},
		{
			name:     "not found",
			err:      errors.NotFound("character not found"),
			expected: wizard.MessageNotFound,
		},
		{
			name: "server validation includes details",
			err: errors.InvalidArgument("validation failed").
				WithDetails([]string{"level must be between 1 and 20"}),
			expected: "validation failed: level must be between 1 and 20",
		},
		{
			name:     "transport failure",
			err:      errors.Unavailable("character api unreachable"),
			expected: wizard.MessageSubmitFailed,
		},
		{
			name:     "unexpected error",
			err:      fmt.Errorf("boom"),
			expected: wizard.MessageSubmitFailed,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w, err := wizard.NewWizard(s.config())
			s.Require().NoError(err)
			s.fillConan(w)
			before := w.State().FormData

			s.mockGateway.EXPECT().CreateCharacter(s.ctx, gomock.Any()).Return(nil, tc.err)

			_, err = w.Submit(s.ctx)
			s.Require().Error(err)

			state := w.State()
			s.Assert().Equal(tc.expected, state.SubmitError)
			s.Assert().False(state.Submitting)
			s.Assert().Equal(before, state.FormData)
			s.Assert().Empty(w.CharacterID())
		})
	}
}

func (s *WizardTestSuite) TestSubmitDeriveFailureSetsSubmitError() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	w, err := wizard.NewWizard(&wizard.Config{Gateway: s.mockGateway, Engine: mockEngine})
	s.Require().NoError(err)
	s.fillConan(w)

	mockEngine.EXPECT().
		DeriveCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.OutOfRangef("level must be between %d and %d", 1, 20))

	_, err = w.Submit(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsOutOfRange(err))

	state := w.State()
	s.Assert().Equal(wizard.MessageSubmitFailed, state.SubmitError)
	s.Assert().False(state.Submitting)
	s.Assert().Empty(state.FieldErrors)
}

func (s *WizardTestSuite) TestRetryAfterFailureClearsSubmitError() {
	s.fillConan(s.wizard)

	gomock.InOrder(
		s.mockGateway.EXPECT().
			CreateCharacter(s.ctx, gomock.Any()).
			Return(nil, errors.Unavailable("down")),
		s.mockGateway.EXPECT().
			CreateCharacter(s.ctx, gomock.Any()).
			Return(&characterapi.CreateCharacterOutput{Character: &dnd5e.Character{ID: "char-1"}}, nil),
	)

	_, err := s.wizard.Submit(s.ctx)
	s.Require().Error(err)
	s.Require().Equal(wizard.MessageSubmitFailed, s.wizard.State().SubmitError)

	_, err = s.wizard.Submit(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(s.wizard.State().SubmitError)
}

func (s *WizardTestSuite) TestConcurrentSubmitRejected() {
	s.fillConan(s.wizard)

	started := make(chan struct{})
	release := make(chan struct{})
	s.mockGateway.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterapi.CreateCharacterInput) (*characterapi.CreateCharacterOutput, error) {
			close(started)
			<-release
			return &characterapi.CreateCharacterOutput{Character: input.Character}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := s.wizard.Submit(s.ctx)
		done <- err
	}()

	<-started
	s.Assert().True(s.wizard.State().Submitting)

	_, err := s.wizard.Submit(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	close(release)
	s.Require().NoError(<-done)
	s.Assert().False(s.wizard.State().Submitting)
}

func (s *WizardTestSuite) TestResponseAfterCloseIsIgnored() {
	s.fillConan(s.wizard)

	s.mockGateway.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *characterapi.CreateCharacterInput) (*characterapi.CreateCharacterOutput, error) {
			s.wizard.Close()
			return nil, errors.AlreadyExists("character name already exists")
		})

	_, err := s.wizard.Submit(s.ctx)
	s.Require().Error(err)

	s.Assert().Empty(s.wizard.State().SubmitError)

	_, err = s.wizard.Submit(s.ctx)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().True(errors.IsFailedPrecondition(s.wizard.ChangeField(validation.FieldRace, "Elf")))
}

func (s *WizardTestSuite) TestEditWizardUpdates() {
	existing := &dnd5e.Character{
		ID:            "char-9",
		CharacterName: "Conan",
		Race:          "Human",
		Class:         "Fighter",
		Level:         10,
	}
	existing.AbilityScores.Strength.Score = 18
	existing.AbilityScores.Dexterity.Score = 14
	existing.AbilityScores.Constitution.Score = 16
	existing.AbilityScores.Intelligence.Score = 10
	existing.AbilityScores.Wisdom.Score = 12
	existing.AbilityScores.Charisma.Score = 8

	w, err := wizard.NewEditWizard(s.config(), existing)
	s.Require().NoError(err)
	s.Assert().Equal("char-9", w.CharacterID())
	s.Assert().Equal(18, *w.State().FormData.AbilityScores.Strength)

	s.Require().NoError(w.ChangeField(validation.FieldLevel, 11))

	s.mockGateway.EXPECT().
		UpdateCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterapi.UpdateCharacterInput) (*characterapi.UpdateCharacterOutput, error) {
			s.Assert().Equal("char-9", input.ID)
			s.Assert().Equal(11, input.Character.Level)
			return &characterapi.UpdateCharacterOutput{Character: input.Character}, nil
		})

	saved, err := w.Submit(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("char-9", saved.ID)
}

func (s *WizardTestSuite) TestEditWizardRequiresID() {
	_, err := wizard.NewEditWizard(s.config(), &dnd5e.Character{CharacterName: "Nobody"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *WizardTestSuite) TestPreview() {
	s.Require().NoError(s.wizard.ChangeField(validation.AbilityScoreField(dnd5e.AbilityStrength), 18))
	s.Require().NoError(s.wizard.ChangeField(validation.AbilityScoreField(dnd5e.AbilityCharisma), nil))
	s.Require().NoError(s.wizard.ChangeField(validation.FieldLevel, 9))

	preview := s.wizard.Preview()
	s.Assert().Equal(4, preview.Modifiers[dnd5e.AbilityStrength])
	s.Assert().NotContains(preview.Modifiers, dnd5e.AbilityCharisma)
	s.Require().NotNil(preview.ProficiencyBonus)
	s.Assert().Equal(4, *preview.ProficiencyBonus)

	s.Require().NoError(s.wizard.ChangeField(validation.FieldLevel, 25))
	s.Assert().Nil(s.wizard.Preview().ProficiencyBonus)
}

func (s *WizardTestSuite) TestRollAbilityScores() {
	s.Require().NoError(s.wizard.ChangeField(validation.AbilityScoreField(dnd5e.AbilityStrength), 99))
	s.Require().False(s.wizard.Advance())

	out, err := s.wizard.RollAbilityScores(s.ctx, "")
	s.Require().NoError(err)
	s.Assert().Len(out.Rolls, 6)

	state := s.wizard.State()
	for _, ability := range dnd5e.Abilities {
		s.Assert().Equal(15, *state.FormData.AbilityScores.Score(ability), ability)
		s.Assert().False(state.FieldErrors.Has(validation.AbilityScoreField(ability)))
	}
}

func (s *WizardTestSuite) TestCustomSteps() {
	cfg := s.config()
	cfg.Steps = []wizard.Step{
		{ID: "everything", Title: "Everything"},
	}
	w, err := wizard.NewWizard(cfg)
	s.Require().NoError(err)

	s.fillConan(w)
	s.Assert().True(w.IsLastStep())
	s.Assert().True(w.Advance())
	s.Assert().Equal(0, w.State().CurrentStep)
}
