package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sofadb/sofa-cli/internal"
	"github.com/sofadb/sofa-cli/internal/couch"
	"github.com/sofadb/sofa-cli/internal/prompt"
	"github.com/spf13/cobra"
)

func init() {
	docCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:               "import database-name file",
	Short:             "Bulk-insert a JSON array of documents.",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: dbNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		name, file := args[0], args[1]

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", file, err)
		}
		var docs []couch.Document
		if err := json.Unmarshal(data, &docs); err != nil {
			return fmt.Errorf("%s is not a JSON array of objects: %w", file, err)
		}

		client, err := couchClient()
		if err != nil {
			return err
		}

		spinner := prompt.Spinner(fmt.Sprintf("Importing %d documents into %s...", len(docs), internal.Emph(name)))
		defer spinner.Stop()

		results, err := client.Database(name).InsertMany(docs)
		spinner.Stop()
		if err != nil {
			return err
		}

		// Per-document rejections ride in a 2xx response; report them
		// without failing the whole import.
		failed := 0
		rows := make([][]string, 0, len(results))
		for _, result := range results {
			status := "ok"
			if result.Failed() {
				failed++
				status = result.Error
				if result.Reason != "" {
					status += ": " + result.Reason
				}
			}
			rows = append(rows, []string{result.ID, result.Rev, status})
		}
		printTable([]string{"ID", "Rev", "Status"}, rows)

		fmt.Printf("\nImported %d documents into %s.\n", len(results)-failed, internal.Emph(name))
		if failed > 0 {
			fmt.Println(internal.Warn(fmt.Sprintf("%d documents were rejected.", failed)))
		}
		return nil
	},
}
