package cmd

import (
	"fmt"
	"time"

	"github.com/athoscouto/codename"
	"github.com/sofadb/sofa-cli/internal"
	"github.com/sofadb/sofa-cli/internal/prompt"
	"github.com/spf13/cobra"
)

func init() {
	dbCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:               "create [database-name]",
	Short:             "Create a database.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		name, err := getDatabaseName(args)
		if err != nil {
			return err
		}

		client, err := couchClient()
		if err != nil {
			return err
		}

		start := time.Now()
		spinner := prompt.Spinner(fmt.Sprintf("Creating database %s...", internal.Emph(name)))
		defer spinner.Stop()

		created, err := client.Database(name).Create()
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("could not create database %s: %w", name, err)
		}

		if !created {
			fmt.Printf("Database %s already exists, nothing to do.\n", internal.Emph(name))
			return nil
		}

		elapsed := time.Since(start)
		fmt.Printf("Created database %s in %s.\n\n", internal.Emph(name), elapsed.Round(time.Millisecond).String())
		fmt.Printf("Insert a document with:\n\n")
		fmt.Printf("   %s\n\n", internal.Emph("sofa doc insert "+name))
		invalidateDatabasesCache()
		return nil
	},
}

func getDatabaseName(args []string) (string, error) {
	if len(args) > 0 && len(args[0]) > 0 {
		return args[0], nil
	}

	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return codename.Generate(rng, 0), nil
}
