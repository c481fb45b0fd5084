package flags

import "github.com/spf13/cobra"

var verboseFlag bool

func AddVerbose(cmd *cobra.Command, usage string) {
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, usage)
}

func Verbose() bool {
	return verboseFlag
}
