// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-charsheet/internal/services/character Service

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
)

// Service defines the interface for character operations
type Service interface {
	// ListCharacters returns the characters matching the filter
	// Returns errors.InvalidArgument for an unknown sort field or order
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// GetCharacter returns one character
	// Returns errors.NotFound if the character doesn't exist
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// CreateCharacter validates, derives and stores a new character
	// Returns errors.InvalidArgument with details when validation fails
	// Returns errors.AlreadyExists when the character name is taken
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// UpdateCharacter merges a partial document over the stored character
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.InvalidArgument with details when validation fails
	// Returns errors.AlreadyExists when the new name belongs to another character
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// DeleteCharacter removes a character
	// Returns errors.NotFound if the character doesn't exist
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// ListCharactersInput filters and orders the listing
type ListCharactersInput struct {
	Search string
	Class  string
	Race   string
	Sort   string
	Order  string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// CreateCharacterInput defines the request for creating a character.
// ID and timestamps on the character are ignored.
type CreateCharacterInput struct {
	Character *dnd5e.Character
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *dnd5e.Character
}

// UpdateCharacterInput defines the request for updating a character.
// Patch is a JSON character document; fields it omits keep their stored value.
type UpdateCharacterInput struct {
	ID    string
	Patch json.RawMessage
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *dnd5e.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}
