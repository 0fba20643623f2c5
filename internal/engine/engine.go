package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

type engine struct {
	roller dice.Roller
}

// Config holds the dependencies for the engine
type Config struct {
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate validates the config and fills defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DiceRoller == nil {
		cfg.DiceRoller = dice.DefaultRoller
	}
	return nil
}

// New creates a new engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{roller: cfg.DiceRoller}, nil
}

func (e *engine) DeriveCharacter(_ context.Context, input *DeriveCharacterInput) (*DeriveCharacterOutput, error) {
	if input == nil || input.FormData == nil {
		return nil, errors.InvalidArgument("form data is required")
	}
	form := input.FormData

	vb := errors.NewValidationBuilder()
	if form.Level == nil {
		vb.RequiredField("level")
	}
	for _, ability := range dnd5e.Abilities {
		if form.AbilityScores.Score(ability) == nil {
			vb.RequiredField("abilityScores." + ability)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	pb, err := ProficiencyBonus(*form.Level)
	if err != nil {
		return nil, err
	}

	character := &dnd5e.Character{
		CharacterName: form.CharacterName,
		PlayerName:    form.PlayerName,
		Race:          form.Race,
		Subrace:       form.Subrace,
		Class:         form.Class,
		Subclass:      form.Subclass,
		Level:         *form.Level,
		Background:    form.Background,
		Alignment:     form.Alignment,
	}
	for _, ability := range dnd5e.Abilities {
		score := *form.AbilityScores.Score(ability)
		*character.AbilityScores.Get(ability) = dnd5e.AbilityScore{
			Score:    score,
			Modifier: AbilityModifier(score),
		}
	}

	scores := &character.AbilityScores
	character.ProficiencyBonus = pb
	character.ArmorClass = dnd5e.BaseArmorClass + scores.Dexterity.Modifier
	character.Initiative = scores.Dexterity.Modifier
	character.HitPoints = dnd5e.HitPoints{
		Maximum: dnd5e.BaseHitPoints + scores.Constitution.Modifier,
		Current: dnd5e.BaseHitPoints + scores.Constitution.Modifier,
	}
	character.Speed = dnd5e.Speed{Walk: dnd5e.DefaultWalkSpeed}
	character.PassivePerception = PassivePerception(scores.Wisdom.Modifier)
	character.Inspiration = false

	// New characters start with no skill proficiencies
	for _, def := range dnd5e.SkillDefinitions {
		*character.Skills.Get(def.Name) = dnd5e.Skill{
			Modifier: scores.Get(def.Ability).Modifier,
		}
	}

	return &DeriveCharacterOutput{Character: character}, nil
}

func (e *engine) CalculateCharacterStats(
	_ context.Context,
	input *CalculateCharacterStatsInput,
) (*CalculateCharacterStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	pb, err := ProficiencyBonus(input.Character.Level)
	if err != nil {
		return nil, err
	}

	character := *input.Character
	character.ProficiencyBonus = pb

	for _, ability := range dnd5e.Abilities {
		entry := character.AbilityScores.Get(ability)
		entry.Modifier = AbilityModifier(entry.Score)
	}

	for _, def := range dnd5e.SkillDefinitions {
		skill := character.Skills.Get(def.Name)
		skill.Modifier = SkillModifier(
			character.AbilityScores.Get(def.Ability).Modifier,
			pb,
			skill.Proficient,
			skill.Expertise,
		)
	}

	if character.Spellcasting != nil {
		spellcasting := *character.Spellcasting
		ability := strings.ToLower(strings.TrimSpace(spellcasting.SpellcastingAbility))
		if entry := character.AbilityScores.Get(ability); entry != nil {
			spellcasting.SpellSaveDC = SpellSaveDC(pb, entry.Modifier)
			spellcasting.SpellAttackBonus = SpellAttackBonus(pb, entry.Modifier)
		}
		character.Spellcasting = &spellcasting
	}

	return &CalculateCharacterStatsOutput{Character: &character}, nil
}

func (e *engine) RollAbilityScores(
	_ context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	method := MethodStandard
	if input != nil && input.Method != "" {
		method = input.Method
	}

	var count, drop int
	switch method {
	case MethodStandard:
		count, drop = 4, 1
	case MethodClassic:
		count, drop = 3, 0
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}

	rolls := make([]AbilityRoll, 0, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		results, err := e.roller.RollN(count, 6)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", ability)
		}
		if len(results) != count {
			return nil, errors.Internal("dice roller returned the wrong number of dice")
		}

		sorted := make([]int, len(results))
		copy(sorted, results)
		sort.Ints(sorted)

		total := 0
		for _, d := range sorted[drop:] {
			total += d
		}

		rolls = append(rolls, AbilityRoll{
			Ability: ability,
			Dice:    results,
			Dropped: sorted[:drop],
			Total:   total,
		})
	}

	return &RollAbilityScoresOutput{Rolls: rolls}, nil
}
