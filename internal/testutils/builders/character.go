// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder creates a new builder with a valid level 1 human fighter
// and every score at 10. Derived values are left for the engine.
func NewCharacterBuilder() *CharacterBuilder {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	c := &dnd5e.Character{
		ID:            "char-test-123",
		CharacterName: "Test Hero",
		Race:          "Human",
		Class:         "Fighter",
		Level:         1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, ability := range dnd5e.Abilities {
		c.AbilityScores.Get(ability).Score = dnd5e.DefaultAbilityScore
	}
	return &CharacterBuilder{character: c}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.CharacterName = name
	return b
}

// WithRace sets the race
func (b *CharacterBuilder) WithRace(race string) *CharacterBuilder {
	b.character.Race = race
	return b
}

// WithClass sets the class
func (b *CharacterBuilder) WithClass(class string) *CharacterBuilder {
	b.character.Class = class
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithAbilityScore sets one raw score
func (b *CharacterBuilder) WithAbilityScore(ability string, score int) *CharacterBuilder {
	if s := b.character.AbilityScores.Get(ability); s != nil {
		s.Score = score
	}
	return b
}

// WithSkillProficiency marks a skill proficient, with expertise optionally
func (b *CharacterBuilder) WithSkillProficiency(skill string, expertise bool) *CharacterBuilder {
	if s := b.character.Skills.Get(skill); s != nil {
		s.Proficient = true
		s.Expertise = expertise
	}
	return b
}

// WithSpellcasting sets the spellcasting block for ability
func (b *CharacterBuilder) WithSpellcasting(ability string) *CharacterBuilder {
	b.character.Spellcasting = &dnd5e.Spellcasting{SpellcastingAbility: ability}
	return b
}

// WithTimestamps sets both timestamps
func (b *CharacterBuilder) WithTimestamps(createdAt, updatedAt time.Time) *CharacterBuilder {
	b.character.CreatedAt = createdAt
	b.character.UpdatedAt = updatedAt
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character
}
