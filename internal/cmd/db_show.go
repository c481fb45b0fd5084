package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sofadb/sofa-cli/internal"
	"github.com/spf13/cobra"
)

func init() {
	dbCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:               "show database-name",
	Short:             "Show information about a database.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: dbNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		name := args[0]

		client, err := couchClient()
		if err != nil {
			return err
		}

		db := client.Database(name)
		exists, err := db.Exists()
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("database %s does not exist. List known databases using %s", internal.Emph(name), internal.Emph("sofa db list"))
		}

		info, err := db.Info()
		if err != nil {
			return err
		}

		fmt.Println("Name:          ", info.DBName)
		fmt.Println("Documents:     ", info.DocCount)
		fmt.Println("Deleted:       ", info.DocDelCount)
		fmt.Println("Size on disk:  ", humanize.Bytes(uint64(info.Sizes.File)))
		fmt.Println("Active data:   ", humanize.Bytes(uint64(info.Sizes.Active)))
		return nil
	},
}
