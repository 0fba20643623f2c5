package dnd5e

// Field limits
const (
	MinLevel        = 1
	MaxLevel        = 20
	MinAbilityScore = 1
	MaxAbilityScore = 30
	MaxStringLength = 500

	DefaultAbilityScore = 10
	DefaultWalkSpeed    = 30
	BaseArmorClass      = 10
	BaseHitPoints       = 10
	BasePassiveScore    = 10
)

// Ability names as they appear on the wire
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// Skill names as they appear on the wire
const (
	SkillAcrobatics     = "acrobatics"
	SkillAnimalHandling = "animalHandling"
	SkillArcana         = "arcana"
	SkillAthletics      = "athletics"
	SkillDeception      = "deception"
	SkillHistory        = "history"
	SkillInsight        = "insight"
	SkillIntimidation   = "intimidation"
	SkillInvestigation  = "investigation"
	SkillMedicine       = "medicine"
	SkillNature         = "nature"
	SkillPerception     = "perception"
	SkillPerformance    = "performance"
	SkillPersuasion     = "persuasion"
	SkillReligion       = "religion"
	SkillSleightOfHand  = "sleightOfHand"
	SkillStealth        = "stealth"
	SkillSurvival       = "survival"
)

// Abilities lists the six abilities in sheet order
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityLabels maps ability names to display labels
var AbilityLabels = map[string]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// SkillDefinition pairs a skill with its governing ability
type SkillDefinition struct {
	Name    string
	Ability string
}

// SkillDefinitions lists all 18 skills alphabetically
var SkillDefinitions = []SkillDefinition{
	{Name: SkillAcrobatics, Ability: AbilityDexterity},
	{Name: SkillAnimalHandling, Ability: AbilityWisdom},
	{Name: SkillArcana, Ability: AbilityIntelligence},
	{Name: SkillAthletics, Ability: AbilityStrength},
	{Name: SkillDeception, Ability: AbilityCharisma},
	{Name: SkillHistory, Ability: AbilityIntelligence},
	{Name: SkillInsight, Ability: AbilityWisdom},
	{Name: SkillIntimidation, Ability: AbilityCharisma},
	{Name: SkillInvestigation, Ability: AbilityIntelligence},
	{Name: SkillMedicine, Ability: AbilityWisdom},
	{Name: SkillNature, Ability: AbilityIntelligence},
	{Name: SkillPerception, Ability: AbilityWisdom},
	{Name: SkillPerformance, Ability: AbilityCharisma},
	{Name: SkillPersuasion, Ability: AbilityCharisma},
	{Name: SkillReligion, Ability: AbilityIntelligence},
	{Name: SkillSleightOfHand, Ability: AbilityDexterity},
	{Name: SkillStealth, Ability: AbilityDexterity},
	{Name: SkillSurvival, Ability: AbilityWisdom},
}

// Races offered by the wizard
var Races = []string{
	"Human",
	"Elf",
	"Dwarf",
	"Halfling",
	"Dragonborn",
	"Gnome",
	"Half-Elf",
	"Half-Orc",
	"Tiefling",
}

// Classes offered by the wizard
var Classes = []string{
	"Barbarian",
	"Bard",
	"Cleric",
	"Druid",
	"Fighter",
	"Monk",
	"Paladin",
	"Ranger",
	"Rogue",
	"Sorcerer",
	"Warlock",
	"Wizard",
}

// Alignments offered by the wizard
var Alignments = []string{
	"Lawful Good",
	"Neutral Good",
	"Chaotic Good",
	"Lawful Neutral",
	"True Neutral",
	"Chaotic Neutral",
	"Lawful Evil",
	"Neutral Evil",
	"Chaotic Evil",
}

// Backgrounds offered by the wizard
var Backgrounds = []string{
	"Acolyte",
	"Charlatan",
	"Criminal",
	"Entertainer",
	"Folk Hero",
	"Guild Artisan",
	"Hermit",
	"Noble",
	"Outlander",
	"Sage",
	"Sailor",
	"Soldier",
	"Urchin",
}

// IsAbility reports whether name is one of the six abilities
func IsAbility(name string) bool {
	_, ok := AbilityLabels[name]
	return ok
}
