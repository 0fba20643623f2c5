package wizard

import (
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/validation"
)

// Step identifiers for the default flow
const (
	StepBasicInfo     = "basic_info"
	StepAbilityScores = "ability_scores"
)

// Step describes one page of the wizard. Transition logic never looks at
// the ID; it only walks the ordered list.
type Step struct {
	ID     string
	Title  string
	Fields []string
	// Validate checks the fields owned by this step (optional)
	Validate func(form *dnd5e.CharacterFormData) errors.FieldErrors
}

// DefaultSteps returns the basic info then ability scores flow
func DefaultSteps() []Step {
	abilityFields := make([]string, 0, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		abilityFields = append(abilityFields, validation.AbilityScoreField(ability))
	}

	return []Step{
		{
			ID:    StepBasicInfo,
			Title: "Basic Information",
			Fields: []string{
				validation.FieldCharacterName,
				validation.FieldPlayerName,
				validation.FieldRace,
				validation.FieldSubrace,
				validation.FieldClass,
				validation.FieldSubclass,
				validation.FieldLevel,
				validation.FieldBackground,
				validation.FieldAlignment,
			},
			Validate: validation.ValidateBasicInfo,
		},
		{
			ID:       StepAbilityScores,
			Title:    "Ability Scores",
			Fields:   abilityFields,
			Validate: validation.ValidateAbilityScores,
		},
	}
}

// Owns reports whether field is edited on this step
func (s Step) Owns(field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}
