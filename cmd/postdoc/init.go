package main

import (
	"os"

	"github.com/blackcoderx/postdoc/pkg/config"
	"github.com/blackcoderx/postdoc/pkg/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName + " in the current directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.WriteDefault(config.FileName); err != nil {
			ui.Error(os.Stderr, err)
			os.Exit(1)
		}
		ui.Success(cmd.OutOrStdout(), "Created %s", config.FileName)
	},
}
