// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-charsheet/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
)

// Repository defines the interface for character persistence.
// Implementations are safe for concurrent use and enforce characterName
// uniqueness (exact match).
type Repository interface {
	// Create stores a new character. The ID must already be assigned.
	// Returns errors.InvalidArgument for a nil character or empty ID
	// Returns errors.AlreadyExists if the ID or the character name is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for a nil character or empty ID
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.AlreadyExists if another character has the name
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the characters matching the filter, sorted
	// Returns errors.InvalidArgument for an unknown sort field or order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ExistsByName reports whether a character other than ExcludeID has the name
	// Returns errors.Internal for storage failures
	ExistsByName(ctx context.Context, input ExistsByNameInput) (*ExistsByNameOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *dnd5e.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput filters and orders a listing. Zero values mean no filter,
// sort by character name ascending.
type ListInput struct {
	// Search is a case-insensitive substring of the character name
	Search string
	// Class and Race match exactly
	Class string
	Race  string
	Sort  string
	Order string
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*dnd5e.Character
}

// ExistsByNameInput defines the input for a name check
type ExistsByNameInput struct {
	Name      string
	ExcludeID string
}

// ExistsByNameOutput defines the output for a name check
type ExistsByNameOutput struct {
	Exists bool
}
