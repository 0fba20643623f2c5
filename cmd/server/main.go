// Package main is the entry point for the character sheet server and client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "charsheet",
	Short: "D&D 5e character sheet manager",
	Long:  `charsheet serves the character REST API and provides client commands that drive the character wizard against it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
