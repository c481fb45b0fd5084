package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

var outputFlag string

func AddOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "table", "Output format. Possible values are 'table' and 'json'.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func Output() (string, error) {
	switch outputFlag {
	case "table", "json":
		return outputFlag, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be 'table' or 'json'", outputFlag)
	}
}
