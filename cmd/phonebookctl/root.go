package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phonebookctl",
	Short: "Manage the PhoneBook API server",
	Long: `phonebookctl manages the PhoneBook API server.

It runs the HTTP server, applies database migrations, and inspects the
server configuration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
