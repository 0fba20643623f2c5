package engine

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
)

// Ability score rolling methods
const (
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"
)

// DeriveCharacterInput contains the form data to derive from
type DeriveCharacterInput struct {
	FormData *dnd5e.CharacterFormData
}

// DeriveCharacterOutput contains the assembled character
type DeriveCharacterOutput struct {
	Character *dnd5e.Character
}

// CalculateCharacterStatsInput contains the character to recalculate
type CalculateCharacterStatsInput struct {
	Character *dnd5e.Character
}

// CalculateCharacterStatsOutput contains a recalculated copy of the character
type CalculateCharacterStatsOutput struct {
	Character *dnd5e.Character
}

// RollAbilityScoresInput selects the rolling method
type RollAbilityScoresInput struct {
	// Method defaults to MethodStandard
	Method string
}

// AbilityRoll is the result of rolling one ability score
type AbilityRoll struct {
	Ability string
	Dice    []int
	Dropped []int
	Total   int
}

// RollAbilityScoresOutput contains one roll per ability, in sheet order
type RollAbilityScoresOutput struct {
	Rolls []AbilityRoll
}

// Scores returns the rolled totals keyed by ability
func (o *RollAbilityScoresOutput) Scores() map[string]int {
	scores := make(map[string]int, len(o.Rolls))
	for _, r := range o.Rolls {
		scores[r.Ability] = r.Total
	}
	return scores
}
