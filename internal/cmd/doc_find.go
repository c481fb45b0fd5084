package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sofadb/sofa-cli/internal/couch"
	"github.com/sofadb/sofa-cli/internal/flags"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var selectorFlag string
var fieldFlag []string
var sortFlag string
var descendingFlag bool
var limitFlag int

func init() {
	docCmd.AddCommand(findCmd)
	findCmd.Flags().StringVarP(&selectorFlag, "selector", "s", "", "Mango selector as a JSON object. Defaults to matching all documents.")
	findCmd.Flags().StringArrayVarP(&fieldFlag, "field", "f", nil, "Field to project into the result. Repeat for multiple fields.")
	findCmd.Flags().StringVar(&sortFlag, "sort", "", "Field to sort by.")
	findCmd.Flags().BoolVar(&descendingFlag, "desc", false, "Sort in descending order. Only meaningful together with --sort.")
	findCmd.Flags().IntVarP(&limitFlag, "limit", "l", 0, "Maximum number of documents to return.")
	flags.AddOutput(findCmd)
}

var findCmd = &cobra.Command{
	Use:               "find database-name",
	Short:             "Query documents with a Mango selector.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: dbNameArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		output, err := flags.Output()
		if err != nil {
			return err
		}

		query, err := buildFindQuery(selectorFlag, fieldFlag, sortFlag, descendingFlag, limitFlag)
		if err != nil {
			return err
		}

		client, err := couchClient()
		if err != nil {
			return err
		}

		docs, err := client.Database(args[0]).Find(query)
		if err != nil {
			return err
		}

		if output == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(docs)
		}

		printDocsTable(docs, fieldFlag)
		return nil
	},
}

func buildFindQuery(selectorJSON string, fields []string, sortField string, descending bool, limit int) (couch.Query, error) {
	query := couch.Query{
		Fields: fields,
		Limit:  limit,
	}
	if selectorJSON != "" {
		if err := json.Unmarshal([]byte(selectorJSON), &query.Selector); err != nil {
			return couch.Query{}, fmt.Errorf("invalid selector: %w", err)
		}
	}
	if sortField != "" {
		query.Sort = []couch.SortField{couch.SortBy(sortField, descending)}
	}
	return query, nil
}

func printDocsTable(docs []couch.Document, fields []string) {
	if len(docs) == 0 {
		fmt.Println("No documents matched.")
		return
	}

	columns := fields
	if len(columns) == 0 {
		seen := map[string]bool{}
		for _, doc := range docs {
			for key := range doc {
				seen[key] = true
			}
		}
		columns = maps.Keys(seen)
		slices.Sort(columns)
	}

	data := make([][]string, 0, len(docs))
	for _, doc := range docs {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, formatValue(doc[column]))
		}
		data = append(data, row)
	}
	printTable(columns, data)
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(d)
	}
}
