package cmd

import (
	"fmt"
	"syscall"

	"github.com/sofadb/sofa-cli/internal"
	"github.com/sofadb/sofa-cli/internal/settings"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var passwordFlag string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)

	configSetCmd.Flags().StringVarP(&passwordFlag, "password", "p", "", "Password value, to avoid the interactive prompt.")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the stored server configuration",
}

var configKeys = []string{"url", "username", "password", "ca-cert"}

var configSetCmd = &cobra.Command{
	Use:   "set key [value]",
	Short: "Set a configuration value. Keys: url, username, password, ca-cert.",
	Args:  cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return configKeys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveDefault
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return err
		}

		key := args[0]
		var value string
		if len(args) == 2 {
			value = args[1]
		}

		switch key {
		case "url":
			return config.SetURL(value)
		case "username":
			return config.SetUsername(value)
		case "ca-cert":
			return config.SetCACert(value)
		case "password":
			password := passwordFlag
			if password == "" && value != "" {
				password = value
			}
			if password == "" {
				fmt.Print("Enter password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("unable to read the password: %s", err)
				}
				password = string(bytePassword)
			}
			return config.SetPassword(password)
		default:
			return fmt.Errorf("unknown key %s. Valid keys are: url, username, password, ca-cert", internal.Emph(key))
		}
	},
}

var configShowCmd = &cobra.Command{
	Use:               "show",
	Short:             "Show the stored configuration. The password is masked.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		config, err := settings.ReadSettings()
		if err != nil {
			return err
		}

		password := "<not set>"
		if config.GetPassword() != "" {
			password = "********"
		}
		printTable([]string{"Key", "Value"}, [][]string{
			{"url", orUnset(config.GetURL())},
			{"username", orUnset(config.GetUsername())},
			{"password", password},
			{"ca-cert", orUnset(config.GetCACert())},
		})
		return nil
	},
}

func orUnset(v string) string {
	if v == "" {
		return "<not set>"
	}
	return v
}
