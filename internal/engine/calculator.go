package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

// AbilityModifier returns floor((score - 10) / 2). Defined for any integer;
// callers range check the score before persisting the result.
func AbilityModifier(score int) int {
	diff := score - 10
	// Go division truncates toward zero
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// ProficiencyBonus returns floor((level - 1) / 4) + 2 for levels 1 through 20
func ProficiencyBonus(level int) (int, error) {
	if level < dnd5e.MinLevel || level > dnd5e.MaxLevel {
		return 0, errors.OutOfRangef("level must be between %d and %d, got %d",
			dnd5e.MinLevel, dnd5e.MaxLevel, level)
	}
	return (level-1)/4 + 2, nil
}

// SkillModifier applies proficiency to an ability modifier.
// Expertise doubles the bonus whether or not proficient is set.
func SkillModifier(abilityModifier, proficiencyBonus int, proficient, expertise bool) int {
	switch {
	case expertise:
		return abilityModifier + 2*proficiencyBonus
	case proficient:
		return abilityModifier + proficiencyBonus
	default:
		return abilityModifier
	}
}

// SpellSaveDC returns 8 + proficiency bonus + spellcasting ability modifier
func SpellSaveDC(proficiencyBonus, spellAbilityModifier int) int {
	return 8 + proficiencyBonus + spellAbilityModifier
}

// SpellAttackBonus returns proficiency bonus + spellcasting ability modifier
func SpellAttackBonus(proficiencyBonus, spellAbilityModifier int) int {
	return proficiencyBonus + spellAbilityModifier
}

// PassivePerception returns 10 + perception modifier
func PassivePerception(perceptionModifier int) int {
	return dnd5e.BasePassiveScore + perceptionModifier
}

// FormatModifier renders a modifier with an explicit sign: "+3", "+0", "-2"
func FormatModifier(modifier int) string {
	if modifier >= 0 {
		return fmt.Sprintf("+%d", modifier)
	}
	return fmt.Sprintf("%d", modifier)
}
