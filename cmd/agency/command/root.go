// Package command provides the root and sub-commands for the agency
// backend binary. Commands are organized using the cobra library.
// The root command starts the API server itself; the "migrate" sub-command
// applies or rolls back the database schema.
//
//	./agency            # start the API server
//	./agency migrate up
//	./agency migrate down
package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agency",
	Short: "API server for the agency marketing site and admin dashboard",
	Long: `API server backing the agency marketing site and its admin
dashboard: tour catalog with filtering and recommendations, bookings with
WhatsApp confirmation links and CSV export, contact messages, moderated
testimonials, blog posts, experiences, and the editable home page content.
All state lives in Postgres behind a key-value adapter; collections are
seeded on first start. Configuration comes from environment variables
(DATABASE_URL is required).`,
	RunE: runServe,
}

// Execute runs the root command, which parses CLI arguments and runs the
// most specific sub-command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
