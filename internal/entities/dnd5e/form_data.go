package dnd5e

// CharacterFormData is the subset of a Character edited through the wizard.
// Level and scores are pointers so an absent value is distinct from zero.
type CharacterFormData struct {
	CharacterName string            `json:"characterName"`
	PlayerName    string            `json:"playerName,omitempty"`
	Race          string            `json:"race"`
	Subrace       string            `json:"subrace,omitempty"`
	Class         string            `json:"class"`
	Subclass      string            `json:"subclass,omitempty"`
	Level         *int              `json:"level,omitempty"`
	Background    string            `json:"background,omitempty"`
	Alignment     string            `json:"alignment,omitempty"`
	AbilityScores FormAbilityScores `json:"abilityScores"`
}

// FormAbilityScores holds the raw scores entered in the form
type FormAbilityScores struct {
	Strength     *int `json:"strength,omitempty"`
	Dexterity    *int `json:"dexterity,omitempty"`
	Constitution *int `json:"constitution,omitempty"`
	Intelligence *int `json:"intelligence,omitempty"`
	Wisdom       *int `json:"wisdom,omitempty"`
	Charisma     *int `json:"charisma,omitempty"`
}

// Score returns the score for ability, or nil when absent or unknown
func (f *FormAbilityScores) Score(ability string) *int {
	if p := f.slot(ability); p != nil {
		return *p
	}
	return nil
}

// SetScore sets the score for ability. Returns false for an unknown ability.
func (f *FormAbilityScores) SetScore(ability string, score *int) bool {
	p := f.slot(ability)
	if p == nil {
		return false
	}
	*p = score
	return true
}

func (f *FormAbilityScores) slot(ability string) **int {
	switch ability {
	case AbilityStrength:
		return &f.Strength
	case AbilityDexterity:
		return &f.Dexterity
	case AbilityConstitution:
		return &f.Constitution
	case AbilityIntelligence:
		return &f.Intelligence
	case AbilityWisdom:
		return &f.Wisdom
	case AbilityCharisma:
		return &f.Charisma
	default:
		return nil
	}
}

// Clone returns a deep copy of the form data
func (f *CharacterFormData) Clone() *CharacterFormData {
	if f == nil {
		return nil
	}
	out := *f
	out.Level = cloneInt(f.Level)
	for _, ability := range Abilities {
		out.AbilityScores.SetScore(ability, cloneInt(f.AbilityScores.Score(ability)))
	}
	return &out
}

// DefaultFormData returns the starting form for a new character:
// level 1 and every score at 10.
func DefaultFormData() *CharacterFormData {
	form := &CharacterFormData{Level: IntPtr(MinLevel)}
	for _, ability := range Abilities {
		form.AbilityScores.SetScore(ability, IntPtr(DefaultAbilityScore))
	}
	return form
}

// FormDataFromCharacter seeds form data from a stored character
func FormDataFromCharacter(c *Character) *CharacterFormData {
	form := &CharacterFormData{
		CharacterName: c.CharacterName,
		PlayerName:    c.PlayerName,
		Race:          c.Race,
		Subrace:       c.Subrace,
		Class:         c.Class,
		Subclass:      c.Subclass,
		Level:         IntPtr(c.Level),
		Background:    c.Background,
		Alignment:     c.Alignment,
	}
	for _, ability := range Abilities {
		form.AbilityScores.SetScore(ability, IntPtr(c.AbilityScores.Get(ability).Score))
	}
	return form
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return IntPtr(*p)
}
