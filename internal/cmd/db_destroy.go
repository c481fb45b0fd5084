package cmd

import (
	"fmt"
	"time"

	"github.com/sofadb/sofa-cli/internal"
	"github.com/sofadb/sofa-cli/internal/flags"
	"github.com/sofadb/sofa-cli/internal/prompt"
	"github.com/spf13/cobra"
)

func init() {
	dbCmd.AddCommand(destroyCmd)
	flags.AddYes(destroyCmd, "Confirms the destruction of the database and all of its documents.")
}

var destroyCmd = &cobra.Command{
	Use:               "destroy database-name",
	Short:             "Destroy a database.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: dbNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		name := args[0]

		if !flags.Yes() {
			fmt.Printf("Database %s and all of its documents will be destroyed.\n", internal.Emph(name))
			ok, err := promptConfirmation("Are you sure you want to do this?")
			if err != nil {
				return fmt.Errorf("could not get prompt confirmed by user: %w", err)
			}
			if !ok {
				fmt.Println("Database destruction avoided.")
				return nil
			}
		}

		client, err := couchClient()
		if err != nil {
			return err
		}

		start := time.Now()
		spinner := prompt.Spinner(fmt.Sprintf("Destroying database %s... ", internal.Emph(name)))
		defer spinner.Stop()

		if err := client.Database(name).Delete(); err != nil {
			return err
		}
		spinner.Stop()

		elapsed := time.Since(start)
		fmt.Printf("Destroyed database %s in %d seconds.\n", internal.Emph(name), int(elapsed.Seconds()))
		invalidateDatabasesCache()
		return nil
	},
}
