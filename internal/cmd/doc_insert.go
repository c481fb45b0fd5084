package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sofadb/sofa-cli/internal"
	"github.com/sofadb/sofa-cli/internal/couch"
	"github.com/spf13/cobra"
)

var genIDFlag bool

func init() {
	docCmd.AddCommand(insertCmd)
	insertCmd.Flags().BoolVar(&genIDFlag, "gen-id", false, "Assign a client-side UUID as _id instead of letting the server pick one.")
}

var insertCmd = &cobra.Command{
	Use:               "insert database-name [file]",
	Short:             "Insert a single document, read from a file or stdin.",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: dbNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		doc, err := readDocument(args)
		if err != nil {
			return err
		}
		if genIDFlag {
			if _, hasID := doc["_id"]; !hasID {
				doc["_id"] = uuid.NewString()
			}
		}

		client, err := couchClient()
		if err != nil {
			return err
		}

		result, err := client.Database(args[0]).InsertOne(doc)
		if err != nil {
			return err
		}

		fmt.Printf("Inserted document %s at revision %s.\n", internal.Emph(result.ID), internal.Emph(result.Rev))
		return nil
	},
}

func readDocument(args []string) (couch.Document, error) {
	data, err := readInput(args)
	if err != nil {
		return nil, err
	}
	var doc couch.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	return doc, nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", args[1], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("could not read stdin: %w", err)
	}
	return data, nil
}
