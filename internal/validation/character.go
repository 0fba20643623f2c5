package validation

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
)

// ValidateCharacter validates a complete record and returns lower-case
// details such as "level must be between 1 and 20". Nil means valid.
func ValidateCharacter(c *dnd5e.Character) []string {
	if c == nil {
		return []string{"character is required"}
	}

	var details []string
	add := func(format string, args ...interface{}) {
		details = append(details, fmt.Sprintf(format, args...))
	}
	maxLen := func(path, value string) {
		if tooLong(value) {
			add("%s must be %d characters or less", path, dnd5e.MaxStringLength)
		}
	}
	required := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			add("%s is required", label)
			return
		}
		maxLen(label, value)
	}

	required("character name", c.CharacterName)
	required("race", c.Race)
	required("class", c.Class)

	if c.Level < dnd5e.MinLevel || c.Level > dnd5e.MaxLevel {
		add("level must be between %d and %d", dnd5e.MinLevel, dnd5e.MaxLevel)
	}

	for _, ability := range dnd5e.Abilities {
		score := c.AbilityScores.Get(ability).Score
		if score < dnd5e.MinAbilityScore || score > dnd5e.MaxAbilityScore {
			add("%s must be between %d and %d", ability, dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore)
		}
	}

	maxLen("player name", c.PlayerName)
	maxLen("subrace", c.Subrace)
	maxLen("subclass", c.Subclass)
	maxLen("background", c.Background)
	maxLen("alignment", c.Alignment)

	if c.ExperiencePoints < 0 {
		add("experience points cannot be negative")
	}

	for i, mc := range c.Multiclass {
		if strings.TrimSpace(mc.Class) == "" {
			add("multiclass[%d].class is required", i)
		}
		if mc.Level < dnd5e.MinLevel || mc.Level > dnd5e.MaxLevel {
			add("multiclass[%d].level must be between %d and %d", i, dnd5e.MinLevel, dnd5e.MaxLevel)
		}
	}

	if c.DeathSaves != nil {
		if c.DeathSaves.Successes < 0 || c.DeathSaves.Successes > 3 {
			add("deathSaves.successes must be between 0 and 3")
		}
		if c.DeathSaves.Failures < 0 || c.DeathSaves.Failures > 3 {
			add("deathSaves.failures must be between 0 and 3")
		}
	}

	if c.Inventory != nil {
		details = append(details, validateInventory(c.Inventory)...)
	}
	if c.Spellcasting != nil {
		details = append(details, validateSpellcasting(c.Spellcasting)...)
	}
	details = append(details, validateFeatures(c.Features)...)
	if c.Appearance != nil {
		details = append(details, validateAppearance(c.Appearance)...)
	}

	return details
}

func validateInventory(inv *dnd5e.Inventory) []string {
	var details []string

	for i, item := range inv.Equipment {
		details = appendName(details, fmt.Sprintf("inventory.equipment[%d].name", i), item.Name)
		if tooLong(item.Description) {
			details = append(details, fmt.Sprintf("inventory.equipment[%d].description must be %d characters or less",
				i, dnd5e.MaxStringLength))
		}
		if item.Quantity < 0 {
			details = append(details, fmt.Sprintf("inventory.equipment[%d].quantity cannot be negative", i))
		}
	}

	for i, weapon := range inv.Weapons {
		details = appendName(details, fmt.Sprintf("inventory.weapons[%d].name", i), weapon.Name)
		if tooLong(weapon.DamageType) {
			details = append(details, fmt.Sprintf("inventory.weapons[%d].damageType must be %d characters or less",
				i, dnd5e.MaxStringLength))
		}
	}

	for i, armor := range inv.Armor {
		details = appendName(details, fmt.Sprintf("inventory.armor[%d].name", i), armor.Name)
		if tooLong(armor.Type) {
			details = append(details, fmt.Sprintf("inventory.armor[%d].type must be %d characters or less",
				i, dnd5e.MaxStringLength))
		}
	}

	if inv.Currency != nil {
		cur := inv.Currency
		if cur.Copper < 0 || cur.Silver < 0 || cur.Electrum < 0 || cur.Gold < 0 || cur.Platinum < 0 {
			details = append(details, "inventory.currency cannot be negative")
		}
	}

	return details
}

func validateSpellcasting(sc *dnd5e.Spellcasting) []string {
	var details []string

	if tooLong(sc.SpellcastingAbility) {
		details = append(details, fmt.Sprintf("spellcasting.spellcastingAbility must be %d characters or less",
			dnd5e.MaxStringLength))
	}

	lists := []struct {
		name   string
		spells []string
	}{
		{"cantripsKnown", sc.CantripsKnown},
		{"spellsKnown", sc.SpellsKnown},
		{"preparedSpells", sc.PreparedSpells},
	}
	for _, list := range lists {
		for i, spell := range list.spells {
			if tooLong(spell) {
				details = append(details, fmt.Sprintf("spellcasting.%s[%d] must be %d characters or less",
					list.name, i, dnd5e.MaxStringLength))
			}
		}
	}

	return details
}

func validateFeatures(features []dnd5e.Feature) []string {
	var details []string

	for i, feature := range features {
		details = appendName(details, fmt.Sprintf("features[%d].name", i), feature.Name)
		if tooLong(feature.Description) {
			details = append(details, fmt.Sprintf("features[%d].description must be %d characters or less",
				i, dnd5e.MaxStringLength))
		}
		if tooLong(feature.Source) {
			details = append(details, fmt.Sprintf("features[%d].source must be %d characters or less",
				i, dnd5e.MaxStringLength))
		}
	}

	return details
}

func validateAppearance(a *dnd5e.Appearance) []string {
	var details []string

	if a.Age < 0 {
		details = append(details, "appearance.age cannot be negative")
	}

	fields := []struct {
		name  string
		value string
	}{
		{"height", a.Height},
		{"weight", a.Weight},
		{"eyes", a.Eyes},
		{"skin", a.Skin},
		{"hair", a.Hair},
	}
	for _, f := range fields {
		if tooLong(f.value) {
			details = append(details, fmt.Sprintf("appearance.%s must be %d characters or less",
				f.name, dnd5e.MaxStringLength))
		}
	}

	return details
}

func appendName(details []string, path, name string) []string {
	switch {
	case name == "":
		return append(details, path+" is required")
	case tooLong(name):
		return append(details, fmt.Sprintf("%s must be %d characters or less", path, dnd5e.MaxStringLength))
	}
	return details
}
