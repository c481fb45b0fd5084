package cmd

import (
	"fmt"

	"github.com/sofadb/sofa-cli/internal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pingCmd)
}

var pingCmd = &cobra.Command{
	Use:               "ping",
	Short:             "Check that the configured server is reachable.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		client, err := couchClient()
		if err != nil {
			return err
		}
		info, err := client.Ping()
		if err != nil {
			return err
		}
		fmt.Printf("Server at %s is up, running CouchDB %s.\n", internal.Emph(client.URL()), internal.Emph(info.Version))
		return nil
	},
}
