package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sofadb/sofa-cli/internal/flags"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func init() {
	dbCmd.AddCommand(listCmd)
	flags.AddVerbose(listCmd, "Also fetch document counts and sizes for each database.")
}

var listCmd = &cobra.Command{
	Use:               "list",
	Short:             "List databases.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		client, err := couchClient()
		if err != nil {
			return err
		}

		names, err := client.RefreshDatabases()
		if err != nil {
			return err
		}
		names = slices.Clone(names)
		slices.Sort(names)

		if !flags.Verbose() {
			data := make([][]string, 0, len(names))
			for _, name := range names {
				data = append(data, []string{name})
			}
			printTable([]string{"Name"}, data)
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		g, ctx := errgroup.WithContext(ctx)
		rows := make(chan []string, len(names))

		for _, name := range names {
			name := name
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				info, err := client.Database(name).Info()
				if err != nil {
					return err
				}
				rows <- []string{
					name,
					fmt.Sprint(info.DocCount),
					fmt.Sprint(info.DocDelCount),
					humanize.Bytes(uint64(info.Sizes.File)),
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		var data [][]string
		for range names {
			data = append(data, <-rows)
		}
		slices.SortFunc(data, func(a, b []string) bool {
			return a[0] < b[0]
		})
		printTable([]string{"Name", "Docs", "Deleted", "Size"}, data)
		return nil
	},
}
