package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"phonebook-api/pkg/audit"
	"phonebook-api/pkg/config"
	"phonebook-api/pkg/credentials"
	"phonebook-api/pkg/db"
	"phonebook-api/pkg/server"
	"phonebook-api/pkg/server/endpoints"
)

func defaultBindAddress() string {
	return config.Get().BindAddress
}

func defaultPort() string {
	return strconv.Itoa(config.Get().Port)
}

func defaultPortInt() int {
	return config.Get().Port
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the PhoneBook API server",
	Long: `Run the PhoneBook API server

To run the server requires the DATABASE_URL environment variable, plus an
API key binding from either an API keys file or PHONEBOOK_API_KEYS.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		keysFile, _ := cmd.Flags().GetString("api-keys-file")
		if keysFile == "" {
			keysFile = cfg.APIKeysFile
		}

		keyring, err := credentials.NewKeyring(keysFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load API keys:", err)
			os.Exit(1)
		}
		if keyring.Path() != "" {
			// Key rotation without restart: reload the binding whenever the
			// file changes.
			go func() {
				if err := keyring.Watch(context.Background()); err != nil {
					log.Printf("API keys watcher stopped: %v", err)
				}
			}()
		}

		gormDB, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		var auditStore *audit.Store
		if cfg.AuditEnabled {
			sqlDB, err := gormDB.DB()
			if err != nil {
				fmt.Fprintln(os.Stderr, "Unable to get DB connection for audit store:", err)
				os.Exit(1)
			}
			auditStore = audit.NewStoreWithDB(sqlDB)
		} else {
			log.Println("Audit trail is disabled")
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(gormDB, keyring, auditStore, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().String("api-keys-file", "", "path to the API keys file")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
