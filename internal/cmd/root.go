package cmd

import (
	"os"

	"github.com/sofadb/sofa-cli/internal/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "sofa",
	Version: version,
	Long:    "CouchDB from the command line",
}

func init() {
	rootCmd.PersistentFlags().String("config-path", "", "Path to the directory with config file")
	viper.BindPFlag("config-path", rootCmd.PersistentFlags().Lookup("config-path"))
	flags.AddDebug(rootCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
