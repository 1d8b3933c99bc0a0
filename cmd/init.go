package cmd

import (
	"fmt"
	"os"

	"admin-dashboard/internal/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long:  "Create the config directory and write config.yaml with the built-in defaults",
	// the config being written need not load
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func initConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	out := cmd.OutOrStdout()

	// Check if the config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config %s already exists. Do you want to overwrite it? (y/N): ", path)
		var response string
		fmt.Fscanln(cmd.InOrStdin(), &response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Config initialization cancelled.")
			return nil
		}
	}

	if err := config.Write(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Config %s initialized successfully!\n", path)
	return nil
}
