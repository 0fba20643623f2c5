package characterapi

import "github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"

// ListCharactersInput filters and orders the list
type ListCharactersInput struct {
	Search string
	Class  string
	Race   string
	Sort   string
	Order  string
}

// ListCharactersOutput contains the matching characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// GetCharacterInput identifies the character to fetch
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput contains the fetched character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// CreateCharacterInput contains the character to create
type CreateCharacterInput struct {
	Character *dnd5e.Character
}

// CreateCharacterOutput contains the stored character
type CreateCharacterOutput struct {
	Character *dnd5e.Character
}

// UpdateCharacterInput contains the character to update
type UpdateCharacterInput struct {
	ID        string
	Character *dnd5e.Character
}

// UpdateCharacterOutput contains the stored character
type UpdateCharacterOutput struct {
	Character *dnd5e.Character
}

// DeleteCharacterInput identifies the character to delete
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput is empty
type DeleteCharacterOutput struct{}
