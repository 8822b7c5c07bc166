package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mintsh/mintsh/core/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml to the config path.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Write(cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", filepath.Join(cfgPath, config.ConfigurationName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
