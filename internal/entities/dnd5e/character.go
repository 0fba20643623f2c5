// Package dnd5e implements the D&D 5e entities
package dnd5e

import "time"

// Character represents a persisted D&D 5e character record.
// NOTE: This is a data-only struct. Derived values (modifiers, proficiency bonus,
// skill modifiers) are computed by the engine, never trusted from the caller.
type Character struct {
	ID                     string            `json:"_id,omitempty" bson:"_id,omitempty"`
	CharacterName          string            `json:"characterName" bson:"characterName"`
	PlayerName             string            `json:"playerName,omitempty" bson:"playerName,omitempty"`
	Race                   string            `json:"race" bson:"race"`
	Subrace                string            `json:"subrace,omitempty" bson:"subrace,omitempty"`
	Class                  string            `json:"class" bson:"class"`
	Subclass               string            `json:"subclass,omitempty" bson:"subclass,omitempty"`
	Multiclass             []MulticlassEntry `json:"multiclass,omitempty" bson:"multiclass,omitempty"`
	Level                  int               `json:"level" bson:"level"`
	ExperiencePoints       int               `json:"experiencePoints,omitempty" bson:"experiencePoints,omitempty"`
	Background             string            `json:"background,omitempty" bson:"background,omitempty"`
	Alignment              string            `json:"alignment,omitempty" bson:"alignment,omitempty"`
	AbilityScores          AbilityScores     `json:"abilityScores" bson:"abilityScores"`
	SavingThrows           *SavingThrows     `json:"savingThrows,omitempty" bson:"savingThrows,omitempty"`
	Skills                 Skills            `json:"skills" bson:"skills"`
	Proficiencies          *Proficiencies    `json:"proficiencies,omitempty" bson:"proficiencies,omitempty"`
	HitPoints              HitPoints         `json:"hitPoints" bson:"hitPoints"`
	ArmorClass             int               `json:"armorClass" bson:"armorClass"`
	Initiative             int               `json:"initiative" bson:"initiative"`
	Speed                  Speed             `json:"speed" bson:"speed"`
	Inspiration            bool              `json:"inspiration" bson:"inspiration"`
	ProficiencyBonus       int               `json:"proficiencyBonus" bson:"proficiencyBonus"`
	PassivePerception      int               `json:"passivePerception" bson:"passivePerception"`
	DeathSaves             *DeathSaves       `json:"deathSaves,omitempty" bson:"deathSaves,omitempty"`
	Attacks                []Attack          `json:"attacks,omitempty" bson:"attacks,omitempty"`
	Inventory              *Inventory        `json:"inventory,omitempty" bson:"inventory,omitempty"`
	Spellcasting           *Spellcasting     `json:"spellcasting,omitempty" bson:"spellcasting,omitempty"`
	Features               []Feature         `json:"features,omitempty" bson:"features,omitempty"`
	PersonalityTraits      []string          `json:"personalityTraits,omitempty" bson:"personalityTraits,omitempty"`
	Ideals                 string            `json:"ideals,omitempty" bson:"ideals,omitempty"`
	Bonds                  string            `json:"bonds,omitempty" bson:"bonds,omitempty"`
	Flaws                  string            `json:"flaws,omitempty" bson:"flaws,omitempty"`
	Appearance             *Appearance       `json:"appearance,omitempty" bson:"appearance,omitempty"`
	Backstory              string            `json:"backstory,omitempty" bson:"backstory,omitempty"`
	AlliesAndOrganizations string            `json:"alliesAndOrganizations,omitempty" bson:"alliesAndOrganizations,omitempty"`
	Treasure               string            `json:"treasure,omitempty" bson:"treasure,omitempty"`
	AdditionalNotes        string            `json:"additionalNotes,omitempty" bson:"additionalNotes,omitempty"`
	CreatedAt              time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// MulticlassEntry is an additional class taken by the character
type MulticlassEntry struct {
	Class    string `json:"class" bson:"class"`
	Subclass string `json:"subclass,omitempty" bson:"subclass,omitempty"`
	Level    int    `json:"level" bson:"level"`
}

// AbilityScore holds a raw score and its derived modifier
type AbilityScore struct {
	Score    int `json:"score" bson:"score"`
	Modifier int `json:"modifier" bson:"modifier"`
}

// AbilityScores holds the six ability scores
type AbilityScores struct {
	Strength     AbilityScore `json:"strength" bson:"strength"`
	Dexterity    AbilityScore `json:"dexterity" bson:"dexterity"`
	Constitution AbilityScore `json:"constitution" bson:"constitution"`
	Intelligence AbilityScore `json:"intelligence" bson:"intelligence"`
	Wisdom       AbilityScore `json:"wisdom" bson:"wisdom"`
	Charisma     AbilityScore `json:"charisma" bson:"charisma"`
}

// Get returns the entry for ability, or nil for an unknown ability name
func (a *AbilityScores) Get(ability string) *AbilityScore {
	switch ability {
	case AbilityStrength:
		return &a.Strength
	case AbilityDexterity:
		return &a.Dexterity
	case AbilityConstitution:
		return &a.Constitution
	case AbilityIntelligence:
		return &a.Intelligence
	case AbilityWisdom:
		return &a.Wisdom
	case AbilityCharisma:
		return &a.Charisma
	default:
		return nil
	}
}

// SavingThrows records saving throw proficiency per ability
type SavingThrows struct {
	Strength     bool `json:"strength" bson:"strength"`
	Dexterity    bool `json:"dexterity" bson:"dexterity"`
	Constitution bool `json:"constitution" bson:"constitution"`
	Intelligence bool `json:"intelligence" bson:"intelligence"`
	Wisdom       bool `json:"wisdom" bson:"wisdom"`
	Charisma     bool `json:"charisma" bson:"charisma"`
}

// Skill holds proficiency state and the derived modifier
type Skill struct {
	Proficient bool `json:"proficient" bson:"proficient"`
	Expertise  bool `json:"expertise" bson:"expertise"`
	Modifier   int  `json:"modifier" bson:"modifier"`
}

// Skills holds all 18 skills
type Skills struct {
	Acrobatics     Skill `json:"acrobatics" bson:"acrobatics"`
	AnimalHandling Skill `json:"animalHandling" bson:"animalHandling"`
	Arcana         Skill `json:"arcana" bson:"arcana"`
	Athletics      Skill `json:"athletics" bson:"athletics"`
	Deception      Skill `json:"deception" bson:"deception"`
	History        Skill `json:"history" bson:"history"`
	Insight        Skill `json:"insight" bson:"insight"`
	Intimidation   Skill `json:"intimidation" bson:"intimidation"`
	Investigation  Skill `json:"investigation" bson:"investigation"`
	Medicine       Skill `json:"medicine" bson:"medicine"`
	Nature         Skill `json:"nature" bson:"nature"`
	Perception     Skill `json:"perception" bson:"perception"`
	Performance    Skill `json:"performance" bson:"performance"`
	Persuasion     Skill `json:"persuasion" bson:"persuasion"`
	Religion       Skill `json:"religion" bson:"religion"`
	SleightOfHand  Skill `json:"sleightOfHand" bson:"sleightOfHand"`
	Stealth        Skill `json:"stealth" bson:"stealth"`
	Survival       Skill `json:"survival" bson:"survival"`
}

// Get returns the entry for skill, or nil for an unknown skill name
func (s *Skills) Get(skill string) *Skill {
	switch skill {
	case SkillAcrobatics:
		return &s.Acrobatics
	case SkillAnimalHandling:
		return &s.AnimalHandling
	case SkillArcana:
		return &s.Arcana
	case SkillAthletics:
		return &s.Athletics
	case SkillDeception:
		return &s.Deception
	case SkillHistory:
		return &s.History
	case SkillInsight:
		return &s.Insight
	case SkillIntimidation:
		return &s.Intimidation
	case SkillInvestigation:
		return &s.Investigation
	case SkillMedicine:
		return &s.Medicine
	case SkillNature:
		return &s.Nature
	case SkillPerception:
		return &s.Perception
	case SkillPerformance:
		return &s.Performance
	case SkillPersuasion:
		return &s.Persuasion
	case SkillReligion:
		return &s.Religion
	case SkillSleightOfHand:
		return &s.SleightOfHand
	case SkillStealth:
		return &s.Stealth
	case SkillSurvival:
		return &s.Survival
	default:
		return nil
	}
}

// Proficiencies lists non-skill proficiencies
type Proficiencies struct {
	Armor     []string `json:"armor,omitempty" bson:"armor,omitempty"`
	Weapons   []string `json:"weapons,omitempty" bson:"weapons,omitempty"`
	Tools     []string `json:"tools,omitempty" bson:"tools,omitempty"`
	Languages []string `json:"languages,omitempty" bson:"languages,omitempty"`
}

// HitPoints tracks maximum, current and temporary hit points
type HitPoints struct {
	Maximum   int `json:"maximum" bson:"maximum"`
	Current   int `json:"current" bson:"current"`
	Temporary int `json:"temporary" bson:"temporary"`
}

// Speed holds movement speeds in feet
type Speed struct {
	Walk   int `json:"walk" bson:"walk"`
	Fly    int `json:"fly,omitempty" bson:"fly,omitempty"`
	Swim   int `json:"swim,omitempty" bson:"swim,omitempty"`
	Climb  int `json:"climb,omitempty" bson:"climb,omitempty"`
	Burrow int `json:"burrow,omitempty" bson:"burrow,omitempty"`
}

// DeathSaves counts death saving throws
type DeathSaves struct {
	Successes int `json:"successes" bson:"successes"`
	Failures  int `json:"failures" bson:"failures"`
}

// Attack is a prepared attack entry
type Attack struct {
	Name        string `json:"name" bson:"name"`
	AttackBonus int    `json:"attackBonus" bson:"attackBonus"`
	Damage      string `json:"damage" bson:"damage"`
	DamageType  string `json:"damageType" bson:"damageType"`
	Notes       string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Inventory groups currency and carried items
type Inventory struct {
	Currency         *Currency       `json:"currency,omitempty" bson:"currency,omitempty"`
	Weapons          []Weapon        `json:"weapons,omitempty" bson:"weapons,omitempty"`
	Armor            []ArmorItem     `json:"armor,omitempty" bson:"armor,omitempty"`
	Equipment        []EquipmentItem `json:"equipment,omitempty" bson:"equipment,omitempty"`
	CarryingCapacity int             `json:"carryingCapacity,omitempty" bson:"carryingCapacity,omitempty"`
}

// Currency holds coin counts
type Currency struct {
	Copper   int `json:"copper" bson:"copper"`
	Silver   int `json:"silver" bson:"silver"`
	Electrum int `json:"electrum" bson:"electrum"`
	Gold     int `json:"gold" bson:"gold"`
	Platinum int `json:"platinum" bson:"platinum"`
}

// Weapon is an inventory weapon
type Weapon struct {
	Name       string   `json:"name" bson:"name"`
	Type       string   `json:"type" bson:"type"`
	Damage     string   `json:"damage" bson:"damage"`
	DamageType string   `json:"damageType" bson:"damageType"`
	Properties []string `json:"properties,omitempty" bson:"properties,omitempty"`
	Equipped   bool     `json:"equipped" bson:"equipped"`
	Quantity   int      `json:"quantity" bson:"quantity"`
}

// ArmorItem is an inventory armor piece
type ArmorItem struct {
	Name                string `json:"name" bson:"name"`
	Type                string `json:"type" bson:"type"`
	ArmorClass          int    `json:"armorClass" bson:"armorClass"`
	Equipped            bool   `json:"equipped" bson:"equipped"`
	StealthDisadvantage bool   `json:"stealthDisadvantage" bson:"stealthDisadvantage"`
}

// EquipmentItem is any other inventory item
type EquipmentItem struct {
	Name        string  `json:"name" bson:"name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Weight      float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// Spellcasting holds the spellcasting block. SpellSaveDC and SpellAttackBonus
// are derived from SpellcastingAbility when it names an ability.
type Spellcasting struct {
	SpellcastingAbility string      `json:"spellcastingAbility,omitempty" bson:"spellcastingAbility,omitempty"`
	SpellSaveDC         int         `json:"spellSaveDC,omitempty" bson:"spellSaveDC,omitempty"`
	SpellAttackBonus    int         `json:"spellAttackBonus,omitempty" bson:"spellAttackBonus,omitempty"`
	SpellSlots          *SpellSlots `json:"spellSlots,omitempty" bson:"spellSlots,omitempty"`
	CantripsKnown       []string    `json:"cantripsKnown,omitempty" bson:"cantripsKnown,omitempty"`
	SpellsKnown         []string    `json:"spellsKnown,omitempty" bson:"spellsKnown,omitempty"`
	PreparedSpells      []string    `json:"preparedSpells,omitempty" bson:"preparedSpells,omitempty"`
}

// SpellSlots holds slots for spell levels 1 through 9
type SpellSlots struct {
	Level1 SpellSlotLevel `json:"level1" bson:"level1"`
	Level2 SpellSlotLevel `json:"level2" bson:"level2"`
	Level3 SpellSlotLevel `json:"level3" bson:"level3"`
	Level4 SpellSlotLevel `json:"level4" bson:"level4"`
	Level5 SpellSlotLevel `json:"level5" bson:"level5"`
	Level6 SpellSlotLevel `json:"level6" bson:"level6"`
	Level7 SpellSlotLevel `json:"level7" bson:"level7"`
	Level8 SpellSlotLevel `json:"level8" bson:"level8"`
	Level9 SpellSlotLevel `json:"level9" bson:"level9"`
}

// SpellSlotLevel counts total and used slots
type SpellSlotLevel struct {
	Total int `json:"total" bson:"total"`
	Used  int `json:"used" bson:"used"`
}

// Feature is a class, race or feat feature
type Feature struct {
	Name        string `json:"name" bson:"name"`
	Source      string `json:"source" bson:"source"`
	Description string `json:"description" bson:"description"`
}

// Appearance describes the character physically
type Appearance struct {
	Age      int    `json:"age,omitempty" bson:"age,omitempty"`
	Height   string `json:"height,omitempty" bson:"height,omitempty"`
	Weight   string `json:"weight,omitempty" bson:"weight,omitempty"`
	Eyes     string `json:"eyes,omitempty" bson:"eyes,omitempty"`
	Skin     string `json:"skin,omitempty" bson:"skin,omitempty"`
	Hair     string `json:"hair,omitempty" bson:"hair,omitempty"`
	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
