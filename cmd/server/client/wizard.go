package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/validation"
	"github.com/KirkDiggler/rpg-charsheet/internal/wizard"
)

// stringFlags maps flag names to wizard form fields
var stringFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"name", validation.FieldCharacterName, "Character name"},
	{"player", validation.FieldPlayerName, "Player name"},
	{"race", validation.FieldRace, "Race"},
	{"subrace", validation.FieldSubrace, "Subrace"},
	{"class", validation.FieldClass, "Class"},
	{"subclass", validation.FieldSubclass, "Subclass"},
	{"background", validation.FieldBackground, "Background"},
	{"alignment", validation.FieldAlignment, "Alignment"},
}

// abilityFlags maps short flag names to abilities
var abilityFlags = []struct {
	flag    string
	ability string
}{
	{"str", dnd5e.AbilityStrength},
	{"dex", dnd5e.AbilityDexterity},
	{"con", dnd5e.AbilityConstitution},
	{"int", dnd5e.AbilityIntelligence},
	{"wis", dnd5e.AbilityWisdom},
	{"cha", dnd5e.AbilityCharisma},
}

// formInput is the set of fields given on the command line
type formInput struct {
	Strings map[string]string
	Ints    map[string]int
	// Roll fills the ability scores from the dice before explicit scores apply
	Roll       bool
	RollMethod string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character through the wizard",
	Long: `Fill the character wizard from flags, advance through each step and submit.

  Example: create --name Conan --race Human --class Fighter --level 10 --str 18 --con 16
  Example: create --name Tasha --race Human --class Wizard --roll`,
	RunE: runCreate,
}

var updateCmd = &cobra.Command{
	Use:   "update [character-id]",
	Short: "Edit a character through the wizard",
	Long: `Load a character into the wizard, apply the given flags and submit.
Only flags that are set change the character.

  Example: update 6f1c2b9e-... --level 11`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	addFormFlags(createCmd)
	addFormFlags(updateCmd)
}

func addFormFlags(c *cobra.Command) {
	for _, f := range stringFlags {
		c.Flags().String(f.flag, "", f.usage)
	}
	c.Flags().Int("level", dnd5e.MinLevel, "Level (1-20)")
	for _, f := range abilityFlags {
		c.Flags().Int(f.flag, dnd5e.DefaultAbilityScore, dnd5e.AbilityLabels[f.ability]+" score")
	}
	c.Flags().Bool("roll", false, "Roll ability scores with the dice roller")
	c.Flags().String("roll-method", engine.MethodStandard, "Rolling method: 4d6_drop_lowest or 3d6")
}

// collectForm reads the flags the user actually set
func collectForm(cmd *cobra.Command) (*formInput, error) {
	flags := cmd.Flags()
	in := &formInput{
		Strings: make(map[string]string),
		Ints:    make(map[string]int),
	}

	for _, f := range stringFlags {
		if !flags.Changed(f.flag) {
			continue
		}
		v, err := flags.GetString(f.flag)
		if err != nil {
			return nil, err
		}
		in.Strings[f.field] = v
	}

	if flags.Changed("level") {
		v, err := flags.GetInt("level")
		if err != nil {
			return nil, err
		}
		in.Ints[validation.FieldLevel] = v
	}
	for _, f := range abilityFlags {
		if !flags.Changed(f.flag) {
			continue
		}
		v, err := flags.GetInt(f.flag)
		if err != nil {
			return nil, err
		}
		in.Ints[validation.AbilityScoreField(f.ability)] = v
	}

	roll, err := flags.GetBool("roll")
	if err != nil {
		return nil, err
	}
	method, err := flags.GetString("roll-method")
	if err != nil {
		return nil, err
	}
	in.Roll = roll
	in.RollMethod = method
	return in, nil
}

func runCreate(cmd *cobra.Command, _ []string) error {
	in, err := collectForm(cmd)
	if err != nil {
		return err
	}

	api, err := createCharacterClient()
	if err != nil {
		return err
	}
	cfg, err := createWizardConfig(api)
	if err != nil {
		return err
	}
	w, err := wizard.NewWizard(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	saved, err := driveWizard(ctx, w, in, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\n✅ Created character %s\n\n", saved.ID)
	printCharacter(os.Stdout, saved)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	in, err := collectForm(cmd)
	if err != nil {
		return err
	}

	api, err := createCharacterClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	existing, err := api.GetCharacter(ctx, &characterapi.GetCharacterInput{ID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	cfg, err := createWizardConfig(api)
	if err != nil {
		return err
	}
	w, err := wizard.NewEditWizard(cfg, existing.Character)
	if err != nil {
		return err
	}
	defer w.Close()

	saved, err := driveWizard(ctx, w, in, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\n✅ Updated character %s\n\n", saved.ID)
	printCharacter(os.Stdout, saved)
	return nil
}

// driveWizard walks the wizard like a user would: each step receives the
// fields it owns before advancing, then the form is submitted. Field errors
// are printed under the step that owns them.
func driveWizard(ctx context.Context, w *wizard.Wizard, in *formInput, out io.Writer) (*dnd5e.Character, error) {
	if in.Roll {
		rolls, err := w.RollAbilityScores(ctx, in.RollMethod)
		if err != nil {
			return nil, err
		}
		printRolls(out, rolls)
	}

	pending := make(map[string]interface{}, len(in.Strings)+len(in.Ints))
	for field, v := range in.Strings {
		pending[field] = v
	}
	for field, v := range in.Ints {
		pending[field] = v
	}

	steps := w.Steps()
	for {
		if err := applyOwnedFields(w, w.CurrentStep(), pending); err != nil {
			return nil, err
		}
		if w.IsLastStep() {
			break
		}
		if !w.Advance() {
			printStepErrors(out, steps, w.State().FieldErrors)
			return nil, errors.InvalidArgument("character form is invalid")
		}
	}

	// fields no step owns still reach the form
	for field, v := range pending {
		if err := w.ChangeField(field, v); err != nil {
			return nil, err
		}
	}

	saved, err := w.Submit(ctx)
	if err != nil {
		state := w.State()
		switch {
		case len(state.FieldErrors) > 0:
			printStepErrors(out, steps, state.FieldErrors)
		case state.SubmitError != "":
			fmt.Fprintf(out, "❌ %s\n", state.SubmitError)
		}
		return nil, err
	}
	return saved, nil
}

// applyOwnedFields sets the pending fields owned by step and removes them from pending
func applyOwnedFields(w *wizard.Wizard, step wizard.Step, pending map[string]interface{}) error {
	for field, v := range pending {
		if !step.Owns(field) {
			continue
		}
		if err := w.ChangeField(field, v); err != nil {
			return err
		}
		delete(pending, field)
	}
	return nil
}
