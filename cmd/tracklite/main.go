package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tracklite/tracklite/internal/interfaces/cli/migrate"
	"github.com/tracklite/tracklite/internal/interfaces/cli/seed"
	"github.com/tracklite/tracklite/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracklite",
		Short: "Tracklite - a lightweight ticket tracker",
		Long:  `Tracklite is a server-rendered ticket tracker with a GraphQL API, migration tools, and a data seeder.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
