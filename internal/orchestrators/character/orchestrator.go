// Package character implements the character orchestrator
package character

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-charsheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-charsheet/internal/services/character"
	"github.com/KirkDiggler/rpg-charsheet/internal/validation"
)

// Messages returned to API callers
const (
	MessageValidationFailed = "validation failed"
	MessageNameConflict     = "character name already exists"
	MessageNotFound         = "character not found"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	Repository characterrepo.Repository
	Engine     engine.Engine
	// IDGenerator (optional, defaults to UUIDs)
	IDGenerator idgen.Generator
	// Clock (optional, defaults to the system clock)
	Clock clock.Clock
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided and sets defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	repo   characterrepo.Repository
	engine engine.Engine
	idGen  idgen.Generator
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		repo:   cfg.Repository,
		engine: cfg.Engine,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
		logger: cfg.Logger.Sugar(),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// ListCharacters returns the characters matching the filter
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		input = &character.ListCharactersInput{}
	}

	listInput := characterrepo.ListInput{
		Search: input.Search,
		Class:  input.Class,
		Race:   input.Race,
		Sort:   input.Sort,
		Order:  input.Order,
	}
	if err := listInput.Normalize(); err != nil {
		return nil, err
	}

	out, err := o.repo.List(ctx, listInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	characters := out.Characters
	if characters == nil {
		characters = []*dnd5e.Character{}
	}
	o.logger.Debugw("listed characters", "count", len(characters), "sort", listInput.Sort)
	return &character.ListCharactersOutput{Characters: characters}, nil
}

// GetCharacter returns one character
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.repo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, o.repoError(err, "failed to get character")
	}

	return &character.GetCharacterOutput{Character: out.Character}, nil
}

// CreateCharacter validates, derives and stores a new character
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	if err := validate(input.Character); err != nil {
		o.logger.Infow("character rejected", "character_name", input.Character.CharacterName, "error", err)
		return nil, err
	}

	if err := o.ensureNameFree(ctx, input.Character.CharacterName, ""); err != nil {
		return nil, err
	}

	stats, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{
		Character: input.Character,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate character stats")
	}

	now := o.clock.Now()
	created := stats.Character
	created.ID = o.idGen.Generate()
	created.CreatedAt = now
	created.UpdatedAt = now

	out, err := o.repo.Create(ctx, characterrepo.CreateInput{Character: created})
	if err != nil {
		return nil, o.repoError(err, "failed to create character")
	}

	o.logger.Infow("character created",
		"character_id", out.Character.ID,
		"character_name", out.Character.CharacterName)
	return &character.CreateCharacterOutput{Character: out.Character}, nil
}

// UpdateCharacter merges the patch over the stored character, then
// validates and recomputes it. The creation time is never changed.
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *character.UpdateCharacterInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if len(input.Patch) == 0 {
		return nil, errors.InvalidArgument("character is required")
	}

	existing, err := o.repo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, o.repoError(err, "failed to get character")
	}

	merged := existing.Character
	previousName := merged.CharacterName
	createdAt := merged.CreatedAt

	if err := json.Unmarshal(input.Patch, merged); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character document")
	}
	merged.ID = input.ID
	merged.CreatedAt = createdAt

	if err := validate(merged); err != nil {
		o.logger.Infow("character update rejected", "character_id", input.ID, "error", err)
		return nil, err
	}

	if merged.CharacterName != previousName {
		if err := o.ensureNameFree(ctx, merged.CharacterName, input.ID); err != nil {
			return nil, err
		}
	}

	stats, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{Character: merged})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate character stats")
	}
	updated := stats.Character
	updated.UpdatedAt = o.clock.Now()

	out, err := o.repo.Update(ctx, characterrepo.UpdateInput{Character: updated})
	if err != nil {
		return nil, o.repoError(err, "failed to update character")
	}

	o.logger.Infow("character updated",
		"character_id", out.Character.ID,
		"character_name", out.Character.CharacterName,
		"renamed", out.Character.CharacterName != previousName)
	return &character.UpdateCharacterOutput{Character: out.Character}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.repo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, o.repoError(err, "failed to delete character")
	}

	o.logger.Infow("character deleted", "character_id", input.ID)
	return &character.DeleteCharacterOutput{}, nil
}

func (o *Orchestrator) ensureNameFree(ctx context.Context, name, excludeID string) error {
	out, err := o.repo.ExistsByName(ctx, characterrepo.ExistsByNameInput{
		Name:      name,
		ExcludeID: excludeID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to check character name")
	}
	if out.Exists {
		o.logger.Infow("character name taken", "character_name", name)
		return errors.AlreadyExists(MessageNameConflict)
	}
	return nil
}

// repoError maps storage errors to the messages API callers see.
// A name conflict can still surface here when two writes race past
// ensureNameFree; the store reports it with MessageNameConflict.
func (o *Orchestrator) repoError(err error, message string) error {
	switch {
	case errors.IsNotFound(err):
		return errors.WrapWithCode(err, errors.CodeNotFound, MessageNotFound)
	case errors.IsAlreadyExists(err):
		return err
	default:
		o.logger.Errorw(message, "error", err)
		return errors.Wrap(err, message)
	}
}

func validate(c *dnd5e.Character) error {
	if details := validation.ValidateCharacter(c); len(details) > 0 {
		return errors.InvalidArgument(MessageValidationFailed).WithDetails(details)
	}
	return nil
}
