package testutils

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/testutils/builders"
)

// ConanName is the reference character used across tests
const ConanName = "Conan"

// ConanFormData returns the wizard form for the reference character:
// a level 10 human fighter with STR 18, DEX 14, CON 16, INT 10, WIS 12, CHA 8
func ConanFormData() *dnd5e.CharacterFormData {
	form := &dnd5e.CharacterFormData{
		CharacterName: ConanName,
		Race:          "Human",
		Class:         "Fighter",
		Level:         dnd5e.IntPtr(10),
	}
	for ability, score := range conanScores() {
		form.AbilityScores.SetScore(ability, dnd5e.IntPtr(score))
	}
	return form
}

// ConanCharacter returns the reference character with raw scores only
func ConanCharacter() *dnd5e.Character {
	b := builders.NewCharacterBuilder().
		WithID("").
		WithName(ConanName).
		WithRace("Human").
		WithClass("Fighter").
		WithLevel(10)
	for ability, score := range conanScores() {
		b.WithAbilityScore(ability, score)
	}
	return b.Build()
}

func conanScores() map[string]int {
	return map[string]int{
		dnd5e.AbilityStrength:     18,
		dnd5e.AbilityDexterity:    14,
		dnd5e.AbilityConstitution: 16,
		dnd5e.AbilityIntelligence: 10,
		dnd5e.AbilityWisdom:       12,
		dnd5e.AbilityCharisma:     8,
	}
}
