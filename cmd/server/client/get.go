package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
)

var getCmd = &cobra.Command{
	Use:     "get [character-id]",
	Aliases: []string{"show"},
	Short:   "Show a character sheet",
	Long: `Fetch a character and print its full sheet.

  Example: get 6f1c2b9e-...`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(_ *cobra.Command, args []string) error {
	client, err := createCharacterClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &characterapi.GetCharacterInput{ID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	printCharacter(os.Stdout, resp.Character)
	return nil
}
