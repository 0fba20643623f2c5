package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/validation"
)

type FormValidationTestSuite struct {
	suite.Suite
	form *dnd5e.CharacterFormData
}

func TestFormValidationSuite(t *testing.T) {
	suite.Run(t, new(FormValidationTestSuite))
}

func (s *FormValidationTestSuite) SetupTest() {
	s.form = dnd5e.DefaultFormData()
	s.form.CharacterName = "Aria"
	s.form.Race = "Human"
	s.form.Class = "Fighter"
}

func (s *FormValidationTestSuite) TestValidForm() {
	s.Assert().Empty(validation.ValidateForm(s.form))
}

func (s *FormValidationTestSuite) TestEmptyNameIsTheOnlyError() {
	s.form.CharacterName = ""

	fe := validation.ValidateForm(s.form)
	s.Require().Len(fe, 1)
	s.Assert().Equal("Character name is required", fe[validation.FieldCharacterName])
}

func (s *FormValidationTestSuite) TestWhitespaceRequiredFields() {
	s.form.CharacterName = "   "
	s.form.Race = "\t"
	s.form.Class = ""

	fe := validation.ValidateForm(s.form)
	s.Assert().Equal([]string{"characterName", "class", "race"}, fe.Fields())
	s.Assert().Equal("Race is required", fe[validation.FieldRace])
	s.Assert().Equal("Class is required", fe[validation.FieldClass])
}

func (s *FormValidationTestSuite) TestLengthLimits() {
	long := strings.Repeat("x", 501)
	s.form.CharacterName = long
	s.form.PlayerName = long
	s.form.Background = long
	s.form.Alignment = long

	fe := validation.ValidateForm(s.form)
	s.Assert().Equal("Character name must be 500 characters or less", fe[validation.FieldCharacterName])
	s.Assert().Equal("Player name must be 500 characters or less", fe[validation.FieldPlayerName])
	s.Assert().Equal("Background must be 500 characters or less", fe[validation.FieldBackground])
	s.Assert().Equal("Alignment must be 500 characters or less", fe[validation.FieldAlignment])

	s.form.CharacterName = strings.Repeat("x", 500)
	s.Assert().False(validation.ValidateForm(s.form).Has(validation.FieldCharacterName))
}

func (s *FormValidationTestSuite) TestLengthLimitsCountCharacters() {
	s.form.CharacterName = strings.Repeat("é", 300)
	s.form.PlayerName = strings.Repeat("龍", 500)
	s.Assert().Empty(validation.ValidateForm(s.form))

	s.form.CharacterName = strings.Repeat("é", 501)
	s.Assert().Equal("Character name must be 500 characters or less",
		validation.ValidateForm(s.form)[validation.FieldCharacterName])
}

func (s *FormValidationTestSuite) TestLevel() {
	for _, level := range []int{0, 21, -3} {
		s.form.Level = dnd5e.IntPtr(level)
		fe := validation.ValidateForm(s.form)
		s.Assert().Contains(fe[validation.FieldLevel], "between 1 and 20", "level %d", level)
	}

	s.form.Level = nil
	s.Assert().Equal("Level is required", validation.ValidateForm(s.form)[validation.FieldLevel])

	for _, level := range []int{1, 20} {
		s.form.Level = dnd5e.IntPtr(level)
		s.Assert().Empty(validation.ValidateForm(s.form))
	}
}

func (s *FormValidationTestSuite) TestAbilityScoreOutOfRangeKeyedToThatAbility() {
	for _, ability := range dnd5e.Abilities {
		for _, score := range []int{0, 31} {
			s.Run(ability, func() {
				s.SetupTest()
				s.form.AbilityScores.SetScore(ability, dnd5e.IntPtr(score))

				fe := validation.ValidateForm(s.form)
				s.Require().Len(fe, 1)
				field := validation.AbilityScoreField(ability)
				s.Assert().Equal(dnd5e.AbilityLabels[ability]+" must be between 1 and 30", fe[field])
			})
		}
	}
}

func (s *FormValidationTestSuite) TestAbilityScoreRequired() {
	s.form.AbilityScores.Charisma = nil

	fe := validation.ValidateAbilityScores(s.form)
	s.Assert().Equal("Charisma is required", fe["abilityScores.charisma"])
}

func (s *FormValidationTestSuite) TestStepSubsets() {
	s.form.CharacterName = ""
	s.form.AbilityScores.Strength = dnd5e.IntPtr(40)

	basic := validation.ValidateBasicInfo(s.form)
	scores := validation.ValidateAbilityScores(s.form)

	s.Assert().Equal([]string{"characterName"}, basic.Fields())
	s.Assert().Equal([]string{"abilityScores.strength"}, scores.Fields())
}

func (s *FormValidationTestSuite) TestNilForm() {
	fe := validation.ValidateForm(nil)
	s.Assert().True(fe.Has(validation.FieldCharacterName))
	s.Assert().True(fe.Has(validation.FieldLevel))
	s.Assert().True(fe.Has("abilityScores.wisdom"))
}

func (s *FormValidationTestSuite) TestIdempotentAndNonMutating() {
	s.form.CharacterName = ""
	s.form.Level = dnd5e.IntPtr(25)
	before := s.form.Clone()

	first := validation.ValidateForm(s.form)
	second := validation.ValidateForm(s.form)

	s.Assert().Equal(first, second)
	s.Assert().Equal(before, s.form)
}

func (s *FormValidationTestSuite) TestAbilityFromField() {
	ability, ok := validation.AbilityFromField("abilityScores.dexterity")
	s.Assert().True(ok)
	s.Assert().Equal(dnd5e.AbilityDexterity, ability)

	_, ok = validation.AbilityFromField("abilityScores.luck")
	s.Assert().False(ok)

	_, ok = validation.AbilityFromField("characterName")
	s.Assert().False(ok)
}
