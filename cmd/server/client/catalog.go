package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/external"
)

var racesCmd = &cobra.Command{
	Use:   "races",
	Short: "List the races offered by the wizard",
	Long:  `List races from the D&D 5e API, or the built-in list when offline or the API is unreachable.`,
	RunE:  runRaces,
}

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the classes offered by the wizard",
	Long:  `List classes from the D&D 5e API, or the built-in list when offline or the API is unreachable.`,
	RunE:  runClasses,
}

func runRaces(_ *cobra.Command, _ []string) error {
	catalog, err := createCatalogClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return listRaces(ctx, catalog, os.Stdout)
}

func runClasses(_ *cobra.Command, _ []string) error {
	catalog, err := createCatalogClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return listClasses(ctx, catalog, os.Stdout)
}

func listRaces(ctx context.Context, catalog external.Client, out io.Writer) error {
	races, err := catalog.ListRaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list races: %w", err)
	}
	printRaces(out, races)
	return nil
}

func listClasses(ctx context.Context, catalog external.Client, out io.Writer) error {
	classes, err := catalog.ListClasses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list classes: %w", err)
	}
	printClasses(out, classes)
	return nil
}
