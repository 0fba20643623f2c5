package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
)

var (
	listSearch string
	listClass  string
	listRace   string
	listSort   string
	listOrder  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters",
	Long: `List stored characters, optionally filtered and sorted.

  Example: list --search con --class Fighter --sort level --order desc`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Case-insensitive substring of the character name")
	listCmd.Flags().StringVar(&listClass, "class", "", "Exact class filter")
	listCmd.Flags().StringVar(&listRace, "race", "", "Exact race filter")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort field: characterName, class, race, level, createdAt or updatedAt")
	listCmd.Flags().StringVar(&listOrder, "order", "", "Sort order: asc or desc")
}

func runList(_ *cobra.Command, _ []string) error {
	client, err := createCharacterClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &characterapi.ListCharactersInput{
		Search: listSearch,
		Class:  listClass,
		Race:   listRace,
		Sort:   listSort,
		Order:  listOrder,
	})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	fmt.Printf("Found %d characters:\n\n", len(resp.Characters))
	for _, c := range resp.Characters {
		printSummary(os.Stdout, c)
	}
	return nil
}
