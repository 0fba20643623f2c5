package character

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
)

var _ Repository = (*InMemory)(nil)

// InMemory is a mutex-guarded map store used for local runs and tests
type InMemory struct {
	mu         sync.RWMutex
	characters map[string]*dnd5e.Character
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemory {
	return &InMemory{characters: make(map[string]*dnd5e.Character)}
}

// Reset removes every stored character
func (r *InMemory) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters = make(map[string]*dnd5e.Character)
}

func (r *InMemory) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	stored, err := clone(input.Character)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[stored.ID]; ok {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", stored.ID)
	}
	if r.nameTaken(stored.CharacterName, "") {
		return nil, errors.AlreadyExists(errNameConflict)
	}

	r.characters[stored.ID] = stored
	return &CreateOutput{Character: input.Character}, nil
}

func (r *InMemory) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	stored, ok := r.characters[input.ID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	out, err := clone(stored)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: out}, nil
}

func (r *InMemory) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	stored, err := clone(input.Character)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[stored.ID]; !ok {
		return nil, errors.NotFoundf("character with ID %s not found", stored.ID)
	}
	if r.nameTaken(stored.CharacterName, stored.ID) {
		return nil, errors.AlreadyExists(errNameConflict)
	}

	r.characters[stored.ID] = stored
	return &UpdateOutput{Character: input.Character}, nil
}

func (r *InMemory) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[input.ID]; !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	delete(r.characters, input.ID)
	return &DeleteOutput{}, nil
}

func (r *InMemory) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]*dnd5e.Character, 0, len(r.characters))
	for _, c := range r.characters {
		out, err := clone(c)
		if err != nil {
			r.mu.RUnlock()
			return nil, err
		}
		all = append(all, out)
	}
	r.mu.RUnlock()

	return &ListOutput{Characters: filterAndSort(all, &input)}, nil
}

func (r *InMemory) ExistsByName(_ context.Context, input ExistsByNameInput) (*ExistsByNameOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &ExistsByNameOutput{Exists: r.nameTaken(input.Name, input.ExcludeID)}, nil
}

// nameTaken reports whether a character other than excludeID has name.
// Callers hold r.mu.
func (r *InMemory) nameTaken(name, excludeID string) bool {
	for id, c := range r.characters {
		if id != excludeID && c.CharacterName == name {
			return true
		}
	}
	return false
}

// clone copies a character through its JSON form so stored records never
// share nested blocks with callers
func clone(c *dnd5e.Character) (*dnd5e.Character, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character data")
	}
	var out dnd5e.Character
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal character data")
	}
	return &out, nil
}
