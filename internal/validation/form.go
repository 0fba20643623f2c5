package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// Form field paths
const (
	FieldCharacterName = "characterName"
	FieldPlayerName    = "playerName"
	FieldRace          = "race"
	FieldSubrace       = "subrace"
	FieldClass         = "class"
	FieldSubclass      = "subclass"
	FieldLevel         = "level"
	FieldBackground    = "background"
	FieldAlignment     = "alignment"

	abilityScoresPrefix = "abilityScores."
)

// AbilityScoreField returns the field path for an ability score
func AbilityScoreField(ability string) string {
	return abilityScoresPrefix + ability
}

// AbilityFromField returns the ability named by a field path such as
// "abilityScores.strength"
func AbilityFromField(field string) (string, bool) {
	ability, ok := strings.CutPrefix(field, abilityScoresPrefix)
	if !ok || !dnd5e.IsAbility(ability) {
		return "", false
	}
	return ability, true
}

// ValidateForm validates the complete form
func ValidateForm(form *dnd5e.CharacterFormData) errors.FieldErrors {
	fe := ValidateBasicInfo(form)
	fe.Merge(ValidateAbilityScores(form))
	return fe
}

// ValidateBasicInfo validates identity and level fields
func ValidateBasicInfo(form *dnd5e.CharacterFormData) errors.FieldErrors {
	fe := errors.NewFieldErrors()
	if form == nil {
		form = &dnd5e.CharacterFormData{}
	}

	requiredString(fe, FieldCharacterName, "Character name", form.CharacterName)
	requiredString(fe, FieldRace, "Race", form.Race)
	requiredString(fe, FieldClass, "Class", form.Class)

	switch {
	case form.Level == nil:
		fe.Add(FieldLevel, "Level is required")
	case *form.Level < dnd5e.MinLevel || *form.Level > dnd5e.MaxLevel:
		fe.Add(FieldLevel, fmt.Sprintf("Level must be between %d and %d", dnd5e.MinLevel, dnd5e.MaxLevel))
	}

	optionalString(fe, FieldPlayerName, "Player name", form.PlayerName)
	optionalString(fe, FieldBackground, "Background", form.Background)
	optionalString(fe, FieldAlignment, "Alignment", form.Alignment)

	return fe
}

// ValidateAbilityScores validates each of the six scores
func ValidateAbilityScores(form *dnd5e.CharacterFormData) errors.FieldErrors {
	fe := errors.NewFieldErrors()
	if form == nil {
		form = &dnd5e.CharacterFormData{}
	}

	for _, ability := range dnd5e.Abilities {
		label := dnd5e.AbilityLabels[ability]
		score := form.AbilityScores.Score(ability)
		switch {
		case score == nil:
			fe.Add(AbilityScoreField(ability), label+" is required")
		case *score < dnd5e.MinAbilityScore || *score > dnd5e.MaxAbilityScore:
			fe.Add(AbilityScoreField(ability), fmt.Sprintf("%s must be between %d and %d",
				label, dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore))
		}
	}

	return fe
}

func requiredString(fe errors.FieldErrors, field, label, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		fe.Add(field, label+" is required")
	case tooLong(value):
		fe.Add(field, fmt.Sprintf("%s must be %d characters or less", label, dnd5e.MaxStringLength))
	}
}

func optionalString(fe errors.FieldErrors, field, label, value string) {
	if tooLong(value) {
		fe.Add(field, fmt.Sprintf("%s must be %d characters or less", label, dnd5e.MaxStringLength))
	}
}

// tooLong counts characters, not bytes
func tooLong(value string) bool {
	return utf8.RuneCountInString(value) > dnd5e.MaxStringLength
}
