package flags

import "github.com/spf13/cobra"

var yesFlag bool

func AddYes(cmd *cobra.Command, usage string) {
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, usage)
}

func Yes() bool {
	return yesFlag
}
