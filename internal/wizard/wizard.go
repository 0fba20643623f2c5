// Package wizard implements the multi-step character form. It holds the
// in-progress form data, advances only when the form validates and submits
// the derived character through a Gateway.
package wizard

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/validation"
)

// Messages shown in SubmitError
const (
	MessageNotFound     = "Character not found"
	MessageSubmitFailed = "Failed to save character. Please try again."
)

// Config contains the collaborators of a wizard
type Config struct {
	Gateway Gateway
	Engine  engine.Engine
	// Steps (optional, defaults to DefaultSteps)
	Steps []Step
	// Logger (optional, defaults to a no-op logger)
	Logger *zap.Logger
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Gateway == nil {
		vb.RequiredField("Gateway")
	}
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if len(cfg.Steps) == 0 {
		cfg.Steps = DefaultSteps()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

// State is a snapshot of the wizard
type State struct {
	CurrentStep int
	FormData    *dnd5e.CharacterFormData
	FieldErrors errors.FieldErrors
	Submitting  bool
	SubmitError string
}

// Preview holds derived values for the current form
type Preview struct {
	// Modifiers has an entry for each ability with a score present
	Modifiers map[string]int
	// ProficiencyBonus is nil while the level is missing or out of range
	ProficiencyBonus *int
}

// Wizard is the form state machine. One logical actor drives it; the mutex
// only guards against a second Submit while one is in flight.
type Wizard struct {
	gateway Gateway
	engine  engine.Engine
	steps   []Step
	logger  *zap.SugaredLogger

	mu          sync.Mutex
	characterID string
	currentStep int
	formData    *dnd5e.CharacterFormData
	fieldErrors errors.FieldErrors
	submitting  bool
	submitError string
	closed      bool
}

// NewWizard creates a wizard for a new character with the default form
func NewWizard(cfg *Config) (*Wizard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Wizard{
		gateway:     cfg.Gateway,
		engine:      cfg.Engine,
		steps:       cfg.Steps,
		logger:      cfg.Logger.Sugar(),
		formData:    dnd5e.DefaultFormData(),
		fieldErrors: errors.NewFieldErrors(),
	}, nil
}

// NewEditWizard creates a wizard seeded from a stored character. Submit
// updates that character.
func NewEditWizard(cfg *Config, character *dnd5e.Character) (*Wizard, error) {
	if character == nil || character.ID == "" {
		return nil, errors.InvalidArgument("character with an ID is required")
	}

	w, err := NewWizard(cfg)
	if err != nil {
		return nil, err
	}
	w.characterID = character.ID
	w.formData = dnd5e.FormDataFromCharacter(character)
	return w, nil
}

// State returns a copy of the current state
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return State{
		CurrentStep: w.currentStep,
		FormData:    w.formData.Clone(),
		FieldErrors: w.fieldErrors.Clone(),
		Submitting:  w.submitting,
		SubmitError: w.submitError,
	}
}

// Steps returns the step descriptors in order
func (w *Wizard) Steps() []Step {
	out := make([]Step, len(w.steps))
	copy(out, w.steps)
	return out
}

// CurrentStep returns the descriptor of the active step
func (w *Wizard) CurrentStep() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps[w.currentStep]
}

// IsLastStep reports whether the active step is the final one
func (w *Wizard) IsLastStep() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentStep == len(w.steps)-1
}

// CharacterID returns the identity of the edited or last saved character
func (w *Wizard) CharacterID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.characterID
}

// ChangeField sets one form field and clears only that field's error.
// String fields take a string; level and ability scores take an int, *int or nil.
func (w *Wizard) ChangeField(field string, value interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errors.FailedPrecondition("wizard is closed")
	}

	if ability, ok := validation.AbilityFromField(field); ok {
		score, err := intValue(field, value)
		if err != nil {
			return err
		}
		w.formData.AbilityScores.SetScore(ability, score)
		w.fieldErrors.Remove(field)
		return nil
	}

	if field == validation.FieldLevel {
		level, err := intValue(field, value)
		if err != nil {
			return err
		}
		w.formData.Level = level
		w.fieldErrors.Remove(field)
		return nil
	}

	target := stringField(w.formData, field)
	if target == nil {
		return errors.InvalidArgumentf("unknown field: %s", field)
	}
	s, ok := value.(string)
	if !ok {
		return errors.InvalidArgumentf("field %s expects a string, got %T", field, value)
	}
	*target = s
	w.fieldErrors.Remove(field)
	return nil
}

// Advance validates the entire form and moves to the next step when it
// is valid. Returns false and records the field errors otherwise.
func (w *Wizard) Advance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	fe := w.validate()
	if len(fe) > 0 {
		w.fieldErrors = fe
		return false
	}

	w.fieldErrors = errors.NewFieldErrors()
	if w.currentStep < len(w.steps)-1 {
		w.currentStep++
	}
	return true
}

// Retreat moves to the previous step without validating
func (w *Wizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentStep > 0 {
		w.currentStep--
	}
}

// Submit validates the form, derives the full character and saves it
// through the gateway. Create is used until the wizard knows an ID.
func (w *Wizard) Submit(ctx context.Context) (*dnd5e.Character, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, errors.FailedPrecondition("wizard is closed")
	}
	if w.submitting {
		w.mu.Unlock()
		return nil, errors.FailedPrecondition("submit already in progress")
	}

	if fe := w.validate(); len(fe) > 0 {
		w.fieldErrors = fe
		w.mu.Unlock()
		return nil, fe.ToError()
	}

	derived, err := w.engine.DeriveCharacter(ctx, &engine.DeriveCharacterInput{FormData: w.formData.Clone()})
	if err != nil {
		w.submitError = MessageSubmitFailed
		w.logger.Warnw("character derivation failed",
			"character_id", w.characterID,
			"error", err)
		w.mu.Unlock()
		return nil, errors.Wrap(err, "failed to derive character")
	}

	id := w.characterID
	w.fieldErrors = errors.NewFieldErrors()
	w.submitting = true
	w.submitError = ""
	w.mu.Unlock()

	saved, err := w.save(ctx, id, derived.Character)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.logger.Debugw("ignoring submit result after close", "character_id", id)
		return saved, err
	}

	w.submitting = false
	if err != nil {
		w.submitError = submitErrorMessage(err)
		w.logger.Warnw("character submit failed",
			"character_id", id,
			"code", errors.GetCode(err),
			"error", err)
		return nil, err
	}

	w.characterID = saved.ID
	w.logger.Infow("character saved",
		"character_id", saved.ID,
		"character_name", saved.CharacterName,
		"updated", id != "")
	return saved, nil
}

func (w *Wizard) save(ctx context.Context, id string, character *dnd5e.Character) (*dnd5e.Character, error) {
	if id == "" {
		out, err := w.gateway.CreateCharacter(ctx, &characterapi.CreateCharacterInput{Character: character})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}

	character.ID = id
	out, err := w.gateway.UpdateCharacter(ctx, &characterapi.UpdateCharacterInput{ID: id, Character: character})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// Preview returns derived values for the current form without validating it
func (w *Wizard) Preview() Preview {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := Preview{Modifiers: make(map[string]int, len(dnd5e.Abilities))}
	for _, ability := range dnd5e.Abilities {
		if score := w.formData.AbilityScores.Score(ability); score != nil {
			p.Modifiers[ability] = engine.AbilityModifier(*score)
		}
	}
	if w.formData.Level != nil {
		if pb, err := engine.ProficiencyBonus(*w.formData.Level); err == nil {
			p.ProficiencyBonus = &pb
		}
	}
	return p
}

// RollAbilityScores fills the six scores from the engine's roller
func (w *Wizard) RollAbilityScores(ctx context.Context, method string) (*engine.RollAbilityScoresOutput, error) {
	out, err := w.engine.RollAbilityScores(ctx, &engine.RollAbilityScoresInput{Method: method})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return out, nil
	}
	for _, roll := range out.Rolls {
		w.formData.AbilityScores.SetScore(roll.Ability, dnd5e.IntPtr(roll.Total))
		w.fieldErrors.Remove(validation.AbilityScoreField(roll.Ability))
	}
	return out, nil
}

// Close stops the wizard. Results of calls still in flight are not applied.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// validate runs the full form validator plus any step validators.
// Callers hold w.mu.
func (w *Wizard) validate() errors.FieldErrors {
	fe := validation.ValidateForm(w.formData)
	for _, step := range w.steps {
		if step.Validate != nil {
			fe.Merge(step.Validate(w.formData))
		}
	}
	return fe
}

func submitErrorMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.CodeAlreadyExists:
		return errors.GetMessage(err)
	case errors.CodeNotFound:
		return MessageNotFound
	case errors.CodeInvalidArgument:
		msg := errors.GetMessage(err)
		if details := errors.GetDetails(err); len(details) > 0 {
			msg += ": " + strings.Join(details, "; ")
		}
		return msg
	default:
		return MessageSubmitFailed
	}
}

func stringField(form *dnd5e.CharacterFormData, field string) *string {
	switch field {
	case validation.FieldCharacterName:
		return &form.CharacterName
	case validation.FieldPlayerName:
		return &form.PlayerName
	case validation.FieldRace:
		return &form.Race
	case validation.FieldSubrace:
		return &form.Subrace
	case validation.FieldClass:
		return &form.Class
	case validation.FieldSubclass:
		return &form.Subclass
	case validation.FieldBackground:
		return &form.Background
	case validation.FieldAlignment:
		return &form.Alignment
	default:
		return nil
	}
}

func intValue(field string, value interface{}) (*int, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case int:
		return dnd5e.IntPtr(v), nil
	case *int:
		if v == nil {
			return nil, nil
		}
		return dnd5e.IntPtr(*v), nil
	default:
		return nil, errors.InvalidArgumentf("field %s expects an integer, got %T", field, value)
	}
}
