package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/wizard"
)

// printSummary writes one line per character
func printSummary(w io.Writer, c *dnd5e.Character) {
	fmt.Fprintf(w, "🧙 %s (ID: %s)\n", c.CharacterName, c.ID)
	fmt.Fprintf(w, "   Level %d %s %s\n", c.Level, c.Race, c.Class)
}

// printCharacter writes the full sheet. Optional sections only appear when present.
func printCharacter(w io.Writer, c *dnd5e.Character) {
	fmt.Fprintf(w, "🧙 %s (ID: %s)\n", c.CharacterName, c.ID)
	if c.PlayerName != "" {
		fmt.Fprintf(w, "   Player: %s\n", c.PlayerName)
	}

	race := c.Race
	if c.Subrace != "" {
		race = c.Subrace + " " + race
	}
	class := c.Class
	if c.Subclass != "" {
		class += " (" + c.Subclass + ")"
	}
	fmt.Fprintf(w, "   Level %d %s %s\n", c.Level, race, class)
	if c.Background != "" {
		fmt.Fprintf(w, "   Background: %s\n", c.Background)
	}
	if c.Alignment != "" {
		fmt.Fprintf(w, "   Alignment: %s\n", c.Alignment)
	}

	fmt.Fprintf(w, "\n📊 Ability Scores:\n")
	for _, ability := range dnd5e.Abilities {
		score := c.AbilityScores.Get(ability)
		fmt.Fprintf(w, "   %-13s %2d (%s)\n", dnd5e.AbilityLabels[ability]+":", score.Score, engine.FormatModifier(score.Modifier))
	}

	fmt.Fprintf(w, "\n⚔️  Combat:\n")
	fmt.Fprintf(w, "   Proficiency Bonus: %s\n", engine.FormatModifier(c.ProficiencyBonus))
	fmt.Fprintf(w, "   Hit Points: %d/%d", c.HitPoints.Current, c.HitPoints.Maximum)
	if c.HitPoints.Temporary > 0 {
		fmt.Fprintf(w, " (+%d temp)", c.HitPoints.Temporary)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   Armor Class: %d\n", c.ArmorClass)
	fmt.Fprintf(w, "   Initiative: %s\n", engine.FormatModifier(c.Initiative))
	fmt.Fprintf(w, "   Speed: %d ft\n", c.Speed.Walk)
	fmt.Fprintf(w, "   Passive Perception: %d\n", c.PassivePerception)

	if st := c.SavingThrows; st != nil {
		proficient := map[string]bool{
			dnd5e.AbilityStrength:     st.Strength,
			dnd5e.AbilityDexterity:    st.Dexterity,
			dnd5e.AbilityConstitution: st.Constitution,
			dnd5e.AbilityIntelligence: st.Intelligence,
			dnd5e.AbilityWisdom:       st.Wisdom,
			dnd5e.AbilityCharisma:     st.Charisma,
		}
		var names []string
		for _, ability := range dnd5e.Abilities {
			if proficient[ability] {
				names = append(names, dnd5e.AbilityLabels[ability])
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(w, "   Saving Throws: %s\n", strings.Join(names, ", "))
		}
	}

	fmt.Fprintf(w, "\n🎯 Skills:\n")
	for _, def := range dnd5e.SkillDefinitions {
		skill := c.Skills.Get(def.Name)
		marker := " "
		switch {
		case skill.Expertise:
			marker = "★"
		case skill.Proficient:
			marker = "●"
		}
		fmt.Fprintf(w, "   %s %-16s %s\n", marker, def.Name, engine.FormatModifier(skill.Modifier))
	}

	if p := c.Proficiencies; p != nil {
		fmt.Fprintf(w, "\n🛡️  Proficiencies:\n")
		printList(w, "Armor", p.Armor)
		printList(w, "Weapons", p.Weapons)
		printList(w, "Tools", p.Tools)
		printList(w, "Languages", p.Languages)
	}

	if len(c.Attacks) > 0 {
		fmt.Fprintf(w, "\n🗡️  Attacks:\n")
		for _, a := range c.Attacks {
			fmt.Fprintf(w, "   - %s %s, %s %s\n", a.Name, engine.FormatModifier(a.AttackBonus), a.Damage, a.DamageType)
		}
	}

	if sc := c.Spellcasting; sc != nil {
		fmt.Fprintf(w, "\n✨ Spellcasting:\n")
		if sc.SpellcastingAbility != "" {
			fmt.Fprintf(w, "   Ability: %s\n", sc.SpellcastingAbility)
			fmt.Fprintf(w, "   Spell Save DC: %d\n", sc.SpellSaveDC)
			fmt.Fprintf(w, "   Spell Attack: %s\n", engine.FormatModifier(sc.SpellAttackBonus))
		}
		if slots := sc.SpellSlots; slots != nil {
			levels := []dnd5e.SpellSlotLevel{
				slots.Level1, slots.Level2, slots.Level3, slots.Level4, slots.Level5,
				slots.Level6, slots.Level7, slots.Level8, slots.Level9,
			}
			for i, l := range levels {
				if l.Total > 0 {
					fmt.Fprintf(w, "   Level %d slots: %d/%d\n", i+1, l.Total-l.Used, l.Total)
				}
			}
		}
		printList(w, "Cantrips", sc.CantripsKnown)
		printList(w, "Known", sc.SpellsKnown)
		printList(w, "Prepared", sc.PreparedSpells)
	}

	if inv := c.Inventory; inv != nil {
		fmt.Fprintf(w, "\n🎒 Inventory:\n")
		if cur := inv.Currency; cur != nil {
			fmt.Fprintf(w, "   Coins: %dpp %dgp %dep %dsp %dcp\n",
				cur.Platinum, cur.Gold, cur.Electrum, cur.Silver, cur.Copper)
		}
		for _, weapon := range inv.Weapons {
			fmt.Fprintf(w, "   - %s x%d (%s %s)\n", weapon.Name, weapon.Quantity, weapon.Damage, weapon.DamageType)
		}
		for _, armor := range inv.Armor {
			fmt.Fprintf(w, "   - %s (AC %d)\n", armor.Name, armor.ArmorClass)
		}
		for _, item := range inv.Equipment {
			fmt.Fprintf(w, "   - %s x%d\n", item.Name, item.Quantity)
		}
	}

	if len(c.Features) > 0 {
		fmt.Fprintf(w, "\n📜 Features:\n")
		for _, f := range c.Features {
			fmt.Fprintf(w, "   - %s (%s)\n", f.Name, f.Source)
		}
	}

	if len(c.PersonalityTraits) > 0 || c.Ideals != "" || c.Bonds != "" || c.Flaws != "" {
		fmt.Fprintf(w, "\n🎭 Personality:\n")
		printList(w, "Traits", c.PersonalityTraits)
		printText(w, "Ideals", c.Ideals)
		printText(w, "Bonds", c.Bonds)
		printText(w, "Flaws", c.Flaws)
	}

	if a := c.Appearance; a != nil {
		fmt.Fprintf(w, "\n👤 Appearance:\n")
		if a.Age > 0 {
			fmt.Fprintf(w, "   Age: %d\n", a.Age)
		}
		printText(w, "Height", a.Height)
		printText(w, "Weight", a.Weight)
		printText(w, "Eyes", a.Eyes)
		printText(w, "Skin", a.Skin)
		printText(w, "Hair", a.Hair)
	}

	printSection(w, "📖 Backstory", c.Backstory)
	printSection(w, "🏰 Allies & Organizations", c.AlliesAndOrganizations)
	printSection(w, "💰 Treasure", c.Treasure)
	printSection(w, "📝 Notes", c.AdditionalNotes)
}

func printList(w io.Writer, label string, items []string) {
	if len(items) > 0 {
		fmt.Fprintf(w, "   %s: %s\n", label, strings.Join(items, ", "))
	}
}

func printText(w io.Writer, label, value string) {
	if value != "" {
		fmt.Fprintf(w, "   %s: %s\n", label, value)
	}
}

func printSection(w io.Writer, title, body string) {
	if body != "" {
		fmt.Fprintf(w, "\n%s:\n   %s\n", title, body)
	}
}

// printFieldErrors writes the errors that blocked a step, sorted by field
func printFieldErrors(w io.Writer, fe errors.FieldErrors) {
	fmt.Fprintf(w, "❌ Please fix the following:\n")
	for _, field := range fe.Fields() {
		fmt.Fprintf(w, "   - %s: %s\n", field, fe[field])
	}
}

// printStepErrors groups field errors under the step that edits each field
func printStepErrors(w io.Writer, steps []wizard.Step, fe errors.FieldErrors) {
	rest := fe.Clone()
	for _, step := range steps {
		owned := errors.NewFieldErrors()
		for _, field := range rest.Fields() {
			if step.Owns(field) {
				owned.Add(field, rest[field])
				rest.Remove(field)
			}
		}
		if len(owned) > 0 {
			fmt.Fprintf(w, "Step %q is incomplete.\n", step.Title)
			printFieldErrors(w, owned)
		}
	}
	if len(rest) > 0 {
		printFieldErrors(w, rest)
	}
}

// printRolls writes each ability roll with its dice
func printRolls(w io.Writer, out *engine.RollAbilityScoresOutput) {
	fmt.Fprintf(w, "🎲 Ability Score Rolls:\n")
	for _, roll := range out.Rolls {
		fmt.Fprintf(w, "   %-13s %2d  dice %v", dnd5e.AbilityLabels[roll.Ability]+":", roll.Total, roll.Dice)
		if len(roll.Dropped) > 0 {
			fmt.Fprintf(w, " dropped %v", roll.Dropped)
		}
		fmt.Fprintln(w)
	}
}

func printRaces(w io.Writer, races []*dnd5e.RaceOption) {
	fmt.Fprintf(w, "Found %d races:\n\n", len(races))
	for _, r := range races {
		fmt.Fprintf(w, "🎭 %s (ID: %s)\n", r.Name, r.Key)
		if r.Size != "" {
			fmt.Fprintf(w, "   Size: %s\n", r.Size)
		}
		if r.Speed > 0 {
			fmt.Fprintf(w, "   Speed: %d ft\n", r.Speed)
		}
	}
}

func printClasses(w io.Writer, classes []*dnd5e.ClassOption) {
	fmt.Fprintf(w, "Found %d classes:\n\n", len(classes))
	for _, c := range classes {
		fmt.Fprintf(w, "⚔️  %s (ID: %s)\n", c.Name, c.Key)
		if c.HitDie > 0 {
			fmt.Fprintf(w, "   Hit Die: d%d\n", c.HitDie)
		}
	}
}
