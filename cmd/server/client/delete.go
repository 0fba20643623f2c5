package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(_ *cobra.Command, args []string) error {
	client, err := createCharacterClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteCharacter(ctx, &characterapi.DeleteCharacterInput{ID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	fmt.Printf("🗑️  Deleted character %s\n", args[0])
	return nil
}
