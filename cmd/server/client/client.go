// Package client provides commands that drive the character API over HTTP
package client

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/clients/characterapi"
	"github.com/KirkDiggler/rpg-charsheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-charsheet/internal/engine"
	"github.com/KirkDiggler/rpg-charsheet/internal/wizard"
)

const defaultServerURL = "http://localhost:8080"

var (
	// Connection flags
	serverURL string
	timeout   time.Duration

	// Catalog flags
	catalogURL string
	offline    bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character API",
	Long:  `Client commands manage characters by making real HTTP requests against a running charsheet server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("CHARSHEET_API_URL", defaultServerURL), "Character API base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&catalogURL, "catalog-url", os.Getenv("DND5E_API_URL"), "D&D 5e API base URL for races and classes")
	ClientCmd.PersistentFlags().BoolVar(&offline, "offline", os.Getenv("DND5E_OFFLINE") == "true", "Use the built-in race and class catalog")

	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(updateCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(racesCmd)
	ClientCmd.AddCommand(classesCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// createCharacterClient creates an API client for the configured server
func createCharacterClient() (characterapi.Client, error) {
	return characterapi.New(&characterapi.Config{BaseURL: serverURL})
}

// createCatalogClient creates the race and class catalog
func createCatalogClient() (external.Client, error) {
	return external.New(&external.Config{
		BaseURL: catalogURL,
		Offline: offline,
	})
}

// createWizardConfig wires a wizard to the API client and the rules engine
func createWizardConfig(api characterapi.Client) (*wizard.Config, error) {
	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, err
	}
	return &wizard.Config{Gateway: api, Engine: eng}, nil
}
